package service

import (
	"context"
	"fmt"
	"strings"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func validateClient(client *domain.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	switch client.Type {
	case domain.ClientTypeIndividual, domain.ClientTypeOrganization:
	case "":
		client.Type = domain.ClientTypeIndividual
	default:
		return fmt.Errorf("%w: unknown client type %q", ErrInvalidInput, client.Type)
	}
	return nil
}

func (s *clientService) AddClient(ctx context.Context, client *domain.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	return s.clientRepo.Update(ctx, client)
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	// Rentals keep a name snapshot of their client, so history survives.
	return s.clientRepo.Delete(ctx, id)
}
