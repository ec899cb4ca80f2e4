package interfaces

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the staff member behind a logged-in session.
type Identity struct {
	Username string
}

// IAuthenticator is the identity-provider boundary used by the login screen.
//
//go:generate mockgen -source=authenticator_interface.go -destination=mocks/mock_authenticator.go -package=mock_interfaces

type IAuthenticator interface {
	Authenticate(ctx context.Context, username, password string) (Identity, error)
}
