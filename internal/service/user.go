package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dukerupert/vanir/internal/auth"
	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserService provides business logic for accounts and authentication
type UserService interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, username, password string) (string, *User, error)
	GetUser(ctx context.Context, userID pgtype.UUID) (*User, error)
	UpdateProfile(ctx context.Context, userID pgtype.UUID, params ProfileParams) (*User, error)
	ChangePassword(ctx context.Context, userID pgtype.UUID, current, next string) error
	ListUsers(ctx context.Context, filter UserFilter) ([]User, error)
	SetRole(ctx context.Context, userID pgtype.UUID, role string) (*User, error)
	Deactivate(ctx context.Context, actorID, userID pgtype.UUID) error
}

// User represents an account view model with the password hash stripped
type User struct {
	ID        pgtype.UUID
	Username  string
	Email     string
	Role      domain.UserRole
	IsActive  bool
	FirstName string
	LastName  string
	Phone     string
	Address   string
	CreatedAt pgtype.Timestamptz
}

// RegisterParams carries the fields needed to create an account
type RegisterParams struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// ProfileParams carries the editable profile fields
type ProfileParams struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// UserFilter narrows admin user listings
type UserFilter struct {
	Search string
	Role   string
	Limit  int32
	Offset int32
}

func newUser(u repository.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      domain.UserRole(u.Role),
		IsActive:  u.IsActive,
		FirstName: u.FirstName.String,
		LastName:  u.LastName.String,
		Phone:     u.Phone.String,
		Address:   u.Address.String,
		CreatedAt: u.CreatedAt,
	}
}

func optionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

type userService struct {
	repo   repository.Querier
	tokens *auth.TokenManager
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.Querier, tokens *auth.TokenManager) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates an account with the customer role.
func (s *userService) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if params.Username == "" || params.Email == "" {
		return nil, domain.Errorf(domain.EINVALID, "service.Register", "Username and email are required")
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, domain.Errorf(domain.EINVALID, "service.Register", "Password must be at least %d characters", auth.MinPasswordLength)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.CreateUser(ctx, repository.CreateUserParams{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         string(domain.RoleUser),
		FirstName:    optionalText(params.FirstName),
		LastName:     optionalText(params.LastName),
		Phone:        optionalText(params.Phone),
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := newUser(created)
	return &user, nil
}

// Login verifies credentials and issues an access token. A missing account
// and a wrong password produce the same error so usernames cannot be enumerated.
func (s *userService) Login(ctx context.Context, username, password string) (string, *User, error) {
	record, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := auth.VerifyPassword(password, record.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}

	if !record.IsActive {
		return "", nil, ErrAccountDeactivated
	}

	token, err := s.tokens.Generate(record.ID, record.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	user := newUser(record)
	return token, &user, nil
}

// GetUser loads a single account.
func (s *userService) GetUser(ctx context.Context, userID pgtype.UUID) (*User, error) {
	record, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user := newUser(record)
	return &user, nil
}

// UpdateProfile updates the user's contact fields. Username, role and
// password are not editable here.
func (s *userService) UpdateProfile(ctx context.Context, userID pgtype.UUID, params ProfileParams) (*User, error) {
	record, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	email := record.Email
	if params.Email != "" {
		email = params.Email
	}

	updated, err := s.repo.UpdateUser(ctx, repository.UpdateUserParams{
		ID:           userID,
		Username:     record.Username,
		Email:        email,
		PasswordHash: record.PasswordHash,
		Role:         record.Role,
		FirstName:    optionalText(params.FirstName),
		LastName:     optionalText(params.LastName),
		Phone:        optionalText(params.Phone),
		Address:      optionalText(params.Address),
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user := newUser(updated)
	return &user, nil
}

// ChangePassword replaces the user's password after verifying the current one.
func (s *userService) ChangePassword(ctx context.Context, userID pgtype.UUID, current, next string) error {
	record, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := auth.VerifyPassword(current, record.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to verify password: %w", err)
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return domain.Errorf(domain.EINVALID, "service.ChangePassword", "Password must be at least %d characters", auth.MinPasswordLength)
		}
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.repo.UpdateUser(ctx, repository.UpdateUserParams{
		ID:           userID,
		Username:     record.Username,
		Email:        record.Email,
		PasswordHash: hash,
		Role:         record.Role,
		FirstName:    record.FirstName,
		LastName:     record.LastName,
		Phone:        record.Phone,
		Address:      record.Address,
	})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ListUsers returns accounts for the admin panel with optional filters.
func (s *userService) ListUsers(ctx context.Context, filter UserFilter) ([]User, error) {
	params := repository.ListUsersParams{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 50
	}
	if filter.Search != "" {
		params.Search = pgtype.Text{String: filter.Search, Valid: true}
	}
	if filter.Role != "" {
		if !domain.ValidUserRole(filter.Role) {
			return nil, ErrInvalidRole
		}
		params.Role = pgtype.Text{String: filter.Role, Valid: true}
	}

	rows, err := s.repo.ListUsers(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, newUser(row))
	}
	return users, nil
}

// SetRole changes an account's role.
func (s *userService) SetRole(ctx context.Context, userID pgtype.UUID, role string) (*User, error) {
	if !domain.ValidUserRole(role) {
		return nil, ErrInvalidRole
	}

	record, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	updated, err := s.repo.UpdateUser(ctx, repository.UpdateUserParams{
		ID:           userID,
		Username:     record.Username,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		Role:         role,
		FirstName:    record.FirstName,
		LastName:     record.LastName,
		Phone:        record.Phone,
		Address:      record.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	user := newUser(updated)
	return &user, nil
}

// Deactivate soft deletes an account. Admins cannot deactivate themselves,
// which guarantees at least one working admin account survives.
func (s *userService) Deactivate(ctx context.Context, actorID, userID pgtype.UUID) error {
	if actorID == userID {
		return ErrSelfDeactivation
	}

	rows, err := s.repo.DeactivateUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
