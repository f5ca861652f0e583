// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/store"
	"github.com/medtrack/medtrack/internal/validators"
	"github.com/medtrack/medtrack/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the bcrypt work factor; zero selects bcrypt.DefaultCost.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The checks run in a fixed order and the first failure wins:
//  1. email already registered        → ErrEmailTaken
//  2. username already taken          → ErrUsernameTaken
//  3. phone already registered        → ErrPhoneTaken
//  4. phone not exactly 10 digits     → ErrInvalidPhone
//  5. password fails the policy       → ErrInvalidPassword
//
// On success the password is bcrypt-hashed and the persisted user (with a
// server-assigned UserID) is returned.
func (a *authService) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if err := a.checkDuplicate(ctx, req); err != nil {
		return models.User{}, err
	}

	if err := validators.Phone(req.Phone); err != nil {
		return models.User{}, ErrInvalidPhone
	}

	if err := validators.Password(req.Password); err != nil {
		return models.User{}, ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// checkDuplicate runs the three uniqueness lookups in the order the
// registration form reports them.
func (a *authService) checkDuplicate(ctx context.Context, req RegisterRequest) error {
	if _, err := a.userRepository.FindUserByEmail(ctx, req.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, req.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("user search by username failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByPhone(ctx, req.Phone); err == nil {
		return ErrPhoneTaken
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("user search by phone failed: %w", err)
	}

	return nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the supplied password against
// the stored bcrypt hash. bcrypt.CompareHashAndPassword performs a
// constant-time comparison internally.
//
// Returns the authenticated user record or ErrInvalidCredentials for both an
// unknown email and a wrong password.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// same failure as a wrong password: do not reveal which is which
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Debug().
			Int64("id", foundUser.UserID).
			Str("email", email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
