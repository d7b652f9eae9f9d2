package session

import (
	"fmt"

	"github.com/hupe1980/modelbridge/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Credentials = (*UserPassword)(nil)
	_ core.Credentials = (*BearerToken)(nil)
)

// UserPassword authenticates with a username / password pair against a named
// endpoint. This is the only scheme the reference platforms require; it is
// one strategy among others on purpose.
type UserPassword struct {
	Username string
	Password string
}

// Scheme implements core.Credentials.
func (UserPassword) Scheme() string { return "basic" }

// Payload implements core.Credentials.
func (c UserPassword) Payload() (map[string]string, error) {
	if c.Username == "" {
		return nil, fmt.Errorf("username must not be empty")
	}
	return map[string]string{"username": c.Username, "password": c.Password}, nil
}

// BearerToken authenticates with a pre-issued token, e.g. obtained from a
// federated identity provider. The token is exchanged for a platform session
// token at login.
type BearerToken struct {
	Token string
}

// Scheme implements core.Credentials.
func (BearerToken) Scheme() string { return "token" }

// Payload implements core.Credentials.
func (c BearerToken) Payload() (map[string]string, error) {
	if c.Token == "" {
		return nil, fmt.Errorf("token must not be empty")
	}
	return map[string]string{"token": c.Token}, nil
}
