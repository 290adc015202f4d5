package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// AddressService provides business logic for shipping address books
type AddressService interface {
	CreateAddress(ctx context.Context, userID pgtype.UUID, params AddressParams) (*Address, error)
	GetAddress(ctx context.Context, userID, addressID pgtype.UUID) (*Address, error)
	ListAddresses(ctx context.Context, userID pgtype.UUID) ([]Address, error)
	UpdateAddress(ctx context.Context, userID, addressID pgtype.UUID, params AddressParams) (*Address, error)
	DeleteAddress(ctx context.Context, userID, addressID pgtype.UUID) error
	SetDefault(ctx context.Context, userID, addressID pgtype.UUID) error
}

// Address represents a saved shipping address
type Address struct {
	ID         pgtype.UUID
	FullName   string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
	CreatedAt  pgtype.Timestamptz
}

// AddressParams carries the editable address fields
type AddressParams struct {
	FullName   string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
}

func newAddress(a repository.Address) Address {
	return Address{
		ID:         a.ID,
		FullName:   a.FullName,
		Line1:      a.Line1,
		Line2:      a.Line2.String,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone.String,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
	}
}

func (p AddressParams) validate(op string) error {
	if p.FullName == "" || p.Line1 == "" || p.City == "" || p.PostalCode == "" || p.Country == "" {
		return domain.Errorf(domain.EINVALID, op, "Name, street, city, postal code and country are required")
	}
	return nil
}

type addressService struct {
	repo repository.Querier
	tx   repository.TxStarter
}

// NewAddressService creates a new AddressService instance
func NewAddressService(repo repository.Querier, tx repository.TxStarter) AddressService {
	return &addressService{
		repo: repo,
		tx:   tx,
	}
}

// CreateAddress saves a new address. If it is marked default, any previous
// default is cleared in the same transaction.
func (s *addressService) CreateAddress(ctx context.Context, userID pgtype.UUID, params AddressParams) (*Address, error) {
	if err := params.validate("service.CreateAddress"); err != nil {
		return nil, err
	}

	var created repository.Address
	err := s.tx.ExecTx(ctx, func(q repository.Querier) error {
		if params.IsDefault {
			if err := q.UnsetDefaultAddresses(ctx, userID); err != nil {
				return fmt.Errorf("failed to clear default address: %w", err)
			}
		}
		var err error
		created, err = q.CreateAddress(ctx, repository.CreateAddressParams{
			UserID:     userID,
			FullName:   params.FullName,
			Line1:      params.Line1,
			Line2:      optionalText(params.Line2),
			City:       params.City,
			State:      params.State,
			PostalCode: params.PostalCode,
			Country:    params.Country,
			Phone:      optionalText(params.Phone),
			IsDefault:  params.IsDefault,
		})
		if err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	address := newAddress(created)
	return &address, nil
}

// GetAddress loads one of the user's addresses.
func (s *addressService) GetAddress(ctx context.Context, userID, addressID pgtype.UUID) (*Address, error) {
	record, err := s.repo.GetAddress(ctx, repository.GetAddressParams{
		ID:     addressID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	address := newAddress(record)
	return &address, nil
}

// ListAddresses returns the user's address book, default first.
func (s *addressService) ListAddresses(ctx context.Context, userID pgtype.UUID) ([]Address, error) {
	rows, err := s.repo.ListAddressesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	addresses := make([]Address, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, newAddress(row))
	}
	return addresses, nil
}

// UpdateAddress replaces an address's fields.
func (s *addressService) UpdateAddress(ctx context.Context, userID, addressID pgtype.UUID, params AddressParams) (*Address, error) {
	if err := params.validate("service.UpdateAddress"); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateAddress(ctx, repository.UpdateAddressParams{
		ID:         addressID,
		UserID:     userID,
		FullName:   params.FullName,
		Line1:      params.Line1,
		Line2:      optionalText(params.Line2),
		City:       params.City,
		State:      params.State,
		PostalCode: params.PostalCode,
		Country:    params.Country,
		Phone:      optionalText(params.Phone),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	if params.IsDefault && !updated.IsDefault {
		if err := s.SetDefault(ctx, userID, addressID); err != nil {
			return nil, err
		}
		updated.IsDefault = true
	}

	address := newAddress(updated)
	return &address, nil
}

// DeleteAddress removes an address from the user's book.
func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID pgtype.UUID) error {
	rows, err := s.repo.DeleteAddress(ctx, repository.DeleteAddressParams{
		ID:     addressID,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if rows == 0 {
		return ErrAddressNotFound
	}
	return nil
}

// SetDefault marks one address as the default. The previous default is
// cleared in the same transaction so at most one row carries the flag.
func (s *addressService) SetDefault(ctx context.Context, userID, addressID pgtype.UUID) error {
	return s.tx.ExecTx(ctx, func(q repository.Querier) error {
		if err := q.UnsetDefaultAddresses(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear default address: %w", err)
		}
		rows, err := q.SetDefaultAddress(ctx, repository.SetDefaultAddressParams{
			ID:     addressID,
			UserID: userID,
		})
		if err != nil {
			return fmt.Errorf("failed to set default address: %w", err)
		}
		if rows == 0 {
			return ErrAddressNotFound
		}
		return nil
	})
}
