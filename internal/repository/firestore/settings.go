package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"festaloc-backend/internal/domain"
)

type settingsRepository struct {
	client *firestore.Client
}

type paymentInfoDoc struct {
	PixKey   string `firestore:"pixKey"`
	BankName string `firestore:"bankName"`
	Agency   string `firestore:"agency"`
	Account  string `firestore:"account"`
}

type settingsDoc struct {
	CompanyName   string         `firestore:"companyName"`
	CNPJ          string         `firestore:"cnpj"`
	Address       string         `firestore:"address"`
	LogoURL       string         `firestore:"logoUrl"`
	PaymentInfo   paymentInfoDoc `firestore:"paymentInfo"`
	ContractTerms string         `firestore:"contractTerms"`
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.CompanySettings, error) {
	snap, err := r.client.Collection(collSettings).Doc(domain.SettingsID).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var doc settingsDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode company settings: %w", err)
	}
	return &domain.CompanySettings{
		ID:          domain.SettingsID,
		CompanyName: doc.CompanyName,
		CNPJ:        doc.CNPJ,
		Address:     doc.Address,
		LogoURL:     doc.LogoURL,
		PaymentInfo: domain.PaymentInfo{
			PixKey:   doc.PaymentInfo.PixKey,
			BankName: doc.PaymentInfo.BankName,
			Agency:   doc.PaymentInfo.Agency,
			Account:  doc.PaymentInfo.Account,
		},
		ContractTerms: doc.ContractTerms,
	}, nil
}

func (r *settingsRepository) Save(ctx context.Context, s *domain.CompanySettings) error {
	doc := settingsDoc{
		CompanyName: s.CompanyName,
		CNPJ:        s.CNPJ,
		Address:     s.Address,
		LogoURL:     s.LogoURL,
		PaymentInfo: paymentInfoDoc{
			PixKey:   s.PaymentInfo.PixKey,
			BankName: s.PaymentInfo.BankName,
			Agency:   s.PaymentInfo.Agency,
			Account:  s.PaymentInfo.Account,
		},
		ContractTerms: s.ContractTerms,
	}
	_, err := r.client.Collection(collSettings).Doc(domain.SettingsID).Set(ctx, doc)
	return mapErr(err)
}
