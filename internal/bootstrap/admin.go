// Package bootstrap handles one-time initialization tasks for the application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dukerupert/vanir/internal"
	"github.com/dukerupert/vanir/internal/auth"
	"github.com/dukerupert/vanir/internal/domain"
	"github.com/dukerupert/vanir/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func validateAdminConfig(cfg *internal.AdminConfig) error {
	if cfg.Username == "" {
		return errors.New("admin username is required")
	}
	if cfg.Email == "" {
		return errors.New("admin email is required")
	}
	if cfg.Password == "" {
		return errors.New("admin password is required")
	}
	if len(cfg.Password) < 12 {
		return errors.New("admin password must be at least 12 characters")
	}
	return nil
}

// EnsureMasterAdmin creates the initial super admin account if it doesn't
// exist. Idempotent - safe to call on every startup.
//
// If AdminConfig has an empty Username or Password, it logs a warning and
// skips, which allows running without an admin in dev.
func EnsureMasterAdmin(ctx context.Context, repo repository.Querier, cfg *internal.AdminConfig, logger *slog.Logger) error {
	if cfg == nil || cfg.Username == "" || cfg.Password == "" {
		logger.Warn("bootstrap: skipping admin creation - VANIR_ADMIN_USERNAME or VANIR_ADMIN_PASSWORD not set",
			"hint", "Set these environment variables to create an admin user on first startup",
		)
		return nil
	}

	if err := validateAdminConfig(cfg); err != nil {
		return fmt.Errorf("invalid admin configuration: %w", err)
	}

	existing, err := repo.GetUserByUsername(ctx, cfg.Username)
	if err == nil && existing.ID.Valid {
		logger.Info("bootstrap: admin user already exists",
			"username", cfg.Username,
		)
		return nil
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	passwordHash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	firstName := cfg.FirstName
	if firstName == "" {
		firstName = "Admin"
	}
	lastName := cfg.LastName
	if lastName == "" {
		lastName = "User"
	}

	user, err := repo.CreateUser(ctx, repository.CreateUserParams{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: passwordHash,
		Role:         string(domain.RoleSuperAdmin),
		FirstName:    pgtype.Text{String: firstName, Valid: true},
		LastName:     pgtype.Text{String: lastName, Valid: true},
	})
	if err != nil {
		// Concurrent startup of another replica may have won the insert
		if repository.IsUniqueViolation(err) {
			logger.Info("bootstrap: admin user already exists (concurrent creation)",
				"username", cfg.Username,
			)
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("bootstrap: admin user created successfully",
		"username", cfg.Username,
		"user_id", user.ID.Bytes,
	)

	return nil
}
