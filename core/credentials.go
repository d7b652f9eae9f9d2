package core

// Credentials supplies the authentication material for one login exchange.
// Modeled as a strategy object so alternate schemes (federated identity,
// API tokens, device flows) can be added without changing Manager or
// Transport callers. Concrete strategies live in the session package.
type Credentials interface {
	// Scheme names the authentication style (e.g. "basic", "token").
	Scheme() string

	// Payload returns the scheme-specific login fields. Implementations may
	// defer acquisition (config file, secret store, prompt) until this call.
	Payload() (map[string]string, error)
}
