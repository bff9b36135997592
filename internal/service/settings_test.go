package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festaloc-backend/internal/domain"
)

func TestSettingsGetBeforeFirstSave(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SettingsID, got.ID)
	assert.Empty(t, got.CompanyName)
}

func TestSettingsSaveForcesSingletonID(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	in := &domain.CompanySettings{
		ID:          "whatever-the-client-sent",
		CompanyName: "FestaLoc Eventos",
		CNPJ:        "12.345.678/0001-90",
		PaymentInfo: domain.PaymentInfo{PixKey: "contato@festaloc.com.br"},
	}
	require.NoError(t, svc.Save(ctx, in))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SettingsID, got.ID)
	assert.Equal(t, "FestaLoc Eventos", got.CompanyName)
	assert.Equal(t, "contato@festaloc.com.br", got.PaymentInfo.PixKey)
}
