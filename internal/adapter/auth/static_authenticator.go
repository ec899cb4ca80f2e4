package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"repair_tracker/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var ErrAuthenticatorNotConfigured = errors.New("authenticator not configured")

// StaticAuthenticator checks a single staff account whose password is stored
// as a bcrypt hash in the environment.
type StaticAuthenticator struct {
	username string
	hash     []byte
}

var _ interfaces.IAuthenticator = (*StaticAuthenticator)(nil)

func NewStaticAuthenticator(username, bcryptHash string) (*StaticAuthenticator, error) {
	username = strings.TrimSpace(username)
	bcryptHash = strings.TrimSpace(bcryptHash)
	if username == "" || bcryptHash == "" {
		return nil, ErrAuthenticatorNotConfigured
	}
	if _, err := bcrypt.Cost([]byte(bcryptHash)); err != nil {
		return nil, err
	}
	return &StaticAuthenticator{username: username, hash: []byte(bcryptHash)}, nil
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, username, password string) (interfaces.Identity, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.hash, []byte(password))
	if !userOK || passErr != nil {
		return interfaces.Identity{}, interfaces.ErrInvalidCredentials
	}
	return interfaces.Identity{Username: a.username}, nil
}
