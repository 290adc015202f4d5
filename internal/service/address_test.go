package service

import (
	"context"
	"testing"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAddressID = mustUUID("12121212-1212-4121-8121-121212121212")

func validAddressParams() AddressParams {
	return AddressParams{
		FullName:   "Mabel Kjeldsen",
		Line1:      "12 Main St",
		City:       "Tacoma",
		State:      "WA",
		PostalCode: "98402",
		Country:    "US",
	}
}

func TestCreateAddress_DefaultClearsPreviousDefault(t *testing.T) {
	unsetCalled := false
	repo := &mockQuerier{
		UnsetDefaultAddressesFunc: func(ctx context.Context, userID pgtype.UUID) error {
			unsetCalled = true
			return nil
		},
		CreateAddressFunc: func(ctx context.Context, arg repository.CreateAddressParams) (repository.Address, error) {
			return repository.Address{
				ID:        testAddressID,
				UserID:    arg.UserID,
				FullName:  arg.FullName,
				Line1:     arg.Line1,
				IsDefault: arg.IsDefault,
			}, nil
		},
	}
	svc := NewAddressService(repo, &mockStore{q: repo})

	params := validAddressParams()
	params.IsDefault = true
	address, err := svc.CreateAddress(context.Background(), testUserID, params)
	require.NoError(t, err)
	assert.True(t, unsetCalled)
	assert.True(t, address.IsDefault)
}

func TestCreateAddress_NonDefaultSkipsClear(t *testing.T) {
	repo := &mockQuerier{
		CreateAddressFunc: func(ctx context.Context, arg repository.CreateAddressParams) (repository.Address, error) {
			return repository.Address{ID: testAddressID, IsDefault: arg.IsDefault}, nil
		},
	}
	svc := NewAddressService(repo, &mockStore{q: repo})

	address, err := svc.CreateAddress(context.Background(), testUserID, validAddressParams())
	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestCreateAddress_MissingFields(t *testing.T) {
	svc := NewAddressService(&mockQuerier{}, &mockStore{q: &mockQuerier{}})

	params := validAddressParams()
	params.City = ""
	_, err := svc.CreateAddress(context.Background(), testUserID, params)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestSetDefault_SwapsInOneTransaction(t *testing.T) {
	order := make([]string, 0, 2)
	repo := &mockQuerier{
		UnsetDefaultAddressesFunc: func(ctx context.Context, userID pgtype.UUID) error {
			order = append(order, "unset")
			return nil
		},
		SetDefaultAddressFunc: func(ctx context.Context, arg repository.SetDefaultAddressParams) (int64, error) {
			order = append(order, "set")
			return 1, nil
		},
	}
	svc := NewAddressService(repo, &mockStore{q: repo})

	err := svc.SetDefault(context.Background(), testUserID, testAddressID)
	require.NoError(t, err)
	assert.Equal(t, []string{"unset", "set"}, order)
}

func TestSetDefault_UnknownAddress(t *testing.T) {
	repo := &mockQuerier{
		UnsetDefaultAddressesFunc: func(ctx context.Context, userID pgtype.UUID) error {
			return nil
		},
		SetDefaultAddressFunc: func(ctx context.Context, arg repository.SetDefaultAddressParams) (int64, error) {
			return 0, nil
		},
	}
	svc := NewAddressService(repo, &mockStore{q: repo})

	err := svc.SetDefault(context.Background(), testUserID, testAddressID)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestDeleteAddress_ScopedToOwner(t *testing.T) {
	var deletedWith repository.DeleteAddressParams
	repo := &mockQuerier{
		DeleteAddressFunc: func(ctx context.Context, arg repository.DeleteAddressParams) (int64, error) {
			deletedWith = arg
			return 0, nil
		},
	}
	svc := NewAddressService(repo, &mockStore{q: repo})

	err := svc.DeleteAddress(context.Background(), testUserID, testAddressID)
	assert.ErrorIs(t, err, ErrAddressNotFound)
	assert.Equal(t, testUserID, deletedWith.UserID)
}
