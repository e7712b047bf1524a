// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/titanic-identity/internal/crypto"
	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/models"
)

// memoryCredentialStore is the in-memory implementation of
// [CredentialStore]. A single RWMutex guards both user indices, the id
// sequence and the refresh token set, so a reader never observes a user
// that is present in one index and missing from the other.
type memoryCredentialStore struct {
	mu sync.RWMutex

	usersByID  map[int64]models.User
	idByName   map[string]int64
	nextUserID int64

	refreshTokens map[string]struct{}

	hasher crypto.PasswordHasher
	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryCredentialStore constructs an empty [CredentialStore]. Passwords
// are hashed with hasher before they reach the store.
func NewMemoryCredentialStore(hasher crypto.PasswordHasher, logger *logger.Logger) CredentialStore {
	logger.Debug().Msg("creating in-memory credential store")
	return &memoryCredentialStore{
		usersByID:     make(map[int64]models.User),
		idByName:      make(map[string]int64),
		nextUserID:    1,
		refreshTokens: make(map[string]struct{}),
		hasher:        hasher,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *memoryCredentialStore) CreateUser(ctx context.Context, registration models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	username := normalizeUsername(registration.Username)

	// bcrypt is slow; hash before taking the lock
	passwordHash, err := s.hasher.Hash(registration.Password)
	if err != nil {
		log.Err(err).Str("func", "*memoryCredentialStore.CreateUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.idByName[username]; taken {
		log.Debug().Str("func", "*memoryCredentialStore.CreateUser").Str("username", username).Msg("username already taken")
		return models.User{}, ErrUsernameAlreadyExists
	}

	role := models.RoleUser
	if len(s.usersByID) == 0 {
		role = models.RoleAdmin
	}

	user := models.User{
		UserID:       s.nextUserID,
		Username:     username,
		Email:        copyEmail(registration.Email),
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    s.now().UTC(),
	}
	s.nextUserID++

	s.usersByID[user.UserID] = user
	s.idByName[username] = user.UserID

	log.Info().
		Str("func", "*memoryCredentialStore.CreateUser").
		Int64("user_id", user.UserID).
		Str("username", username).
		Str("role", role.String()).
		Msg("user created")

	return cloneUser(user), nil
}

func (s *memoryCredentialStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.idByName[normalizeUsername(username)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return cloneUser(s.usersByID[userID]), nil
}

func (s *memoryCredentialStore) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (s *memoryCredentialStore) UpdateEmail(ctx context.Context, userID int64, email *string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	if email != nil {
		user.Email = copyEmail(email)
		s.usersByID[userID] = user
		logger.FromContext(ctx).Info().
			Str("func", "*memoryCredentialStore.UpdateEmail").
			Int64("user_id", userID).
			Msg("email updated")
	}

	return cloneUser(user), nil
}

func (s *memoryCredentialStore) RecordRefreshToken(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshTokens[token] = struct{}{}
}

func (s *memoryCredentialStore) RevokeRefreshToken(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.refreshTokens, token)
}

func (s *memoryCredentialStore) IsRefreshTokenValid(ctx context.Context, token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.refreshTokens[token]
	return ok
}

func (s *memoryCredentialStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.usersByID)
}

func (s *memoryCredentialStore) RefreshTokenCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.refreshTokens)
}

func normalizeUsername(username string) string {
	return strings.ToLower(username)
}

// copyEmail detaches a stored email from the caller's pointer.
func copyEmail(email *string) *string {
	if email == nil {
		return nil
	}
	v := *email
	return &v
}

func cloneUser(user models.User) models.User {
	user.Email = copyEmail(user.Email)
	return user
}
