package service

import (
	"context"
	"errors"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/repository"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// Get returns the singleton company record, or an empty one before the first
// save. Callers never see not-found here.
func (s *settingsService) Get(ctx context.Context) (*domain.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.CompanySettings{ID: domain.SettingsID}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Save(ctx context.Context, settings *domain.CompanySettings) error {
	settings.ID = domain.SettingsID
	return s.settingsRepo.Save(ctx, settings)
}
