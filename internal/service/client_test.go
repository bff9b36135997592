package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festaloc-backend/internal/domain"
)

func TestAddClientValidation(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())
	ctx := context.Background()

	t.Run("defaults to pf", func(t *testing.T) {
		client := &domain.Client{Name: "Ana", Phone: "11999990000"}
		require.NoError(t, svc.AddClient(ctx, client))
		assert.Equal(t, domain.ClientTypeIndividual, client.Type)
	})
	t.Run("accepts pj", func(t *testing.T) {
		client := &domain.Client{Type: domain.ClientTypeOrganization, Name: "Buffet Alegria", CNPJ: "12.345.678/0001-90"}
		require.NoError(t, svc.AddClient(ctx, client))
	})
	t.Run("blank name", func(t *testing.T) {
		err := svc.AddClient(ctx, &domain.Client{Name: "  "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
	t.Run("unknown type", func(t *testing.T) {
		err := svc.AddClient(ctx, &domain.Client{Type: "llc", Name: "Ana"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
