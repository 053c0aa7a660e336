// Package auth isolates credential checking from the routing layer so the
// comparison strategy can change without touching handlers.
package auth

import (
	"context"
	"errors"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/models"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/store"
)

// ErrInvalidCredentials covers both unknown users and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks a username/password pair.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (*models.User, error)
}

type userStore interface {
	FindUser(ctx context.Context, username string) (*models.User, error)
}

// StoreVerifier compares against the password stored in the user collection.
// The stored values are plaintext; swapping this type for a hashed-credential
// implementation is the intended upgrade path.
type StoreVerifier struct {
	Users userStore
}

func (v *StoreVerifier) Verify(ctx context.Context, username, password string) (*models.User, error) {
	user, err := v.Users.FindUser(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
