package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
)

type credentialStore struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewCredentialStore(userRepository store.UserRepository, logger *logger.Logger) CredentialStore {
	return &credentialStore{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser normalises user, stores the bcrypt hash of password and
// returns the persisted record.
//
// Errors:
//   - store.ErrUserAlreadyExists if the username or email is taken.
//   - a wrapped hashing or storage error otherwise.
func (c *credentialStore) CreateUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = normalize(user.Username)
	user.Email = normalize(user.Email)
	user.FullName = strings.TrimSpace(user.FullName)

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*credentialStore.CreateUser").Msg("password hashing failed")
		return models.User{}, err
	}
	user.PasswordHash = hash

	created, err := c.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (c *credentialStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := c.userRepository.FindUserByEmail(ctx, normalize(email))
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

func (c *credentialStore) FindByID(ctx context.Context, userID string) (models.User, error) {
	user, err := c.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (c *credentialStore) VerifyPassword(user models.User, candidate string) (bool, error) {
	return utils.ComparePassword(user.PasswordHash, candidate)
}

func (c *credentialStore) SetPassword(ctx context.Context, userID, newPassword string) error {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Str("func", "*credentialStore.SetPassword").Msg("password hashing failed")
		return err
	}

	if err = c.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		log.Err(err).Str("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

func (c *credentialStore) SetRefreshToken(ctx context.Context, userID, token string) error {
	if err := c.userRepository.SetRefreshToken(ctx, userID, token); err != nil {
		return fmt.Errorf("refresh token update failed: %w", err)
	}

	return nil
}

// normalize trims and lower-cases a username or email.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
