package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
)

type clientRepository struct {
	client *firestore.Client
}

type addressDoc struct {
	CEP          string `firestore:"cep"`
	Street       string `firestore:"street"`
	Number       string `firestore:"number"`
	Complement   string `firestore:"complement"`
	Neighborhood string `firestore:"neighborhood"`
	City         string `firestore:"city"`
	State        string `firestore:"state"`
}

type clientDoc struct {
	Type        string     `firestore:"type"`
	Name        string     `firestore:"name"`
	CPF         string     `firestore:"cpf"`
	BirthDate   string     `firestore:"birthDate"`
	CNPJ        string     `firestore:"cnpj"`
	LegalName   string     `firestore:"legalName"`
	ContactName string     `firestore:"contactName"`
	Phone       string     `firestore:"phone"`
	Email       string     `firestore:"email"`
	Address     addressDoc `firestore:"address"`
	HowFound    string     `firestore:"howFound"`
	Notes       string     `firestore:"notes"`
}

func clientToDoc(c *domain.Client) clientDoc {
	return clientDoc{
		Type:        string(c.Type),
		Name:        c.Name,
		CPF:         c.CPF,
		BirthDate:   c.BirthDate,
		CNPJ:        c.CNPJ,
		LegalName:   c.LegalName,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address: addressDoc{
			CEP:          c.Address.CEP,
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Complement:   c.Address.Complement,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
		},
		HowFound: c.HowFound,
		Notes:    c.Notes,
	}
}

func docToClient(id string, doc clientDoc) domain.Client {
	clientType := domain.ClientType(doc.Type)
	if clientType == "" {
		clientType = domain.ClientTypeIndividual
	}
	return domain.Client{
		ID:          id,
		Type:        clientType,
		Name:        doc.Name,
		CPF:         doc.CPF,
		BirthDate:   doc.BirthDate,
		CNPJ:        doc.CNPJ,
		LegalName:   doc.LegalName,
		ContactName: doc.ContactName,
		Phone:       doc.Phone,
		Email:       doc.Email,
		Address: domain.Address{
			CEP:          doc.Address.CEP,
			Street:       doc.Address.Street,
			Number:       doc.Address.Number,
			Complement:   doc.Address.Complement,
			Neighborhood: doc.Address.Neighborhood,
			City:         doc.Address.City,
			State:        doc.Address.State,
		},
		HowFound: doc.HowFound,
		Notes:    doc.Notes,
	}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	ref := r.client.Collection(collClients).NewDoc()
	if _, err := ref.Set(ctx, clientToDoc(c)); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	c.ID = ref.ID
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	snap, err := r.client.Collection(collClients).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var doc clientDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode client %s: %w", id, err)
	}
	c := docToClient(snap.Ref.ID, doc)
	return &c, nil
}

func (r *clientRepository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	iter := r.client.Collection(collClients).Where("phone", "==", phone).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query client by phone: %w", err)
	}
	var doc clientDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode client %s: %w", snap.Ref.ID, err)
	}
	c := docToClient(snap.Ref.ID, doc)
	return &c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	iter := r.client.Collection(collClients).Documents(ctx)
	defer iter.Stop()

	var clients []domain.Client
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list clients: %w", err)
		}
		var doc clientDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode client %s: %w", snap.Ref.ID, err)
		}
		clients = append(clients, docToClient(snap.Ref.ID, doc))
	}
	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	_, err := r.client.Collection(collClients).Doc(c.ID).Set(ctx, clientToDoc(c))
	return mapErr(err)
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collClients).Doc(id).Delete(ctx)
	return mapErr(err)
}
