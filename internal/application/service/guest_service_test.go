package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	infraRepo "github.com/prasert/baanpak-api/internal/infrastructure/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
	"github.com/prasert/baanpak-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestDeactivateIsSoftDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(infraRepo.NewGuestRepository(db))
	ctx := context.Background()

	guest, err := svc.CreateGuest(ctx, &CreateGuestInput{FullName: "Somchai"})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateGuest(ctx, guest.ID))

	// The record survives for booking history
	got, err := svc.GetGuest(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.RecordStatusInactive, got.Status)

	// Default listing hides inactive guests
	result, err := svc.ListGuests(ctx, &repository.RegistryFilterParams{
		Pagination: pagination.DefaultPagination(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Items)

	result, err = svc.ListGuests(ctx, &repository.RegistryFilterParams{
		Pagination:      pagination.DefaultPagination(),
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestGuestSearchByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(infraRepo.NewGuestRepository(db))
	ctx := context.Background()

	_, err := svc.CreateGuest(ctx, &CreateGuestInput{FullName: "Somchai Jaidee"})
	require.NoError(t, err)
	_, err = svc.CreateGuest(ctx, &CreateGuestInput{FullName: "Malee Srisuk"})
	require.NoError(t, err)

	result, err := svc.ListGuests(ctx, &repository.RegistryFilterParams{
		Pagination: pagination.DefaultPagination(),
		Search:     "Somchai",
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Somchai Jaidee", result.Items[0].FullName)
}

func TestGetGuestNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGuestService(infraRepo.NewGuestRepository(db))
	ctx := context.Background()

	_, err := svc.GetGuest(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
