package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/modelbridge/core"
	"github.com/hupe1980/modelbridge/logging"
)

// Options configures the session Manager.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Manager establishes and holds one authenticated session against a remote
// serving endpoint. It is created once at startup and torn down at process
// exit or explicit Logout. The held Session is safe for concurrent read-only
// use by simultaneous invocations; only Login and Logout mutate it.
//
// Login fails fast: a rejected credential or unreachable endpoint surfaces as
// core.ErrAuthentication with no retry.
type Manager struct {
	endpoint  string
	transport core.Transport
	logger    logging.Logger
	session   *core.Session
}

// NewManager creates a Manager bound to one endpoint and transport. The
// managed session starts Unauthenticated.
func NewManager(endpoint string, transport core.Transport, optFns ...func(o *Options)) *Manager {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Manager{
		endpoint:  endpoint,
		transport: transport,
		logger:    opts.Logger,
		session:   core.NewSession(endpoint),
	}
}

// Session returns the managed session. Never nil; callers observe its state
// through the session itself.
func (m *Manager) Session() *core.Session { return m.session }

// Login exchanges the given credentials for a session token, transitioning
// the managed session to Authenticated. Persistent requests server-side
// session persistence. A prior token, if any, is replaced.
func (m *Manager) Login(ctx context.Context, creds core.Credentials, persistent bool) (*core.Session, error) {
	fields, err := creds.Payload()
	if err != nil {
		return nil, fmt.Errorf("credentials (%s): %w: %v", creds.Scheme(), core.ErrAuthentication, err)
	}

	resp, err := m.transport.Login(ctx, core.LoginRequest{
		Scheme:     creds.Scheme(),
		Fields:     fields,
		Persistent: persistent,
	})
	if err != nil {
		m.logger.Error("login failed", "endpoint", m.endpoint, "scheme", creds.Scheme(), "error", err)
		if !errors.Is(err, core.ErrAuthentication) {
			err = fmt.Errorf("login %s: %w: %v", m.endpoint, core.ErrAuthentication, err)
		}
		return nil, err
	}

	m.session.Authenticate(resp.Token, persistent)
	m.logger.Info("login succeeded", "endpoint", m.endpoint, "scheme", creds.Scheme(), "persistent", persistent)

	return m.session, nil
}

// Logout releases the remote session and invalidates the local one. Calling
// Logout on an unauthenticated session fails with core.ErrSessionInvalid
// without network I/O.
func (m *Manager) Logout(ctx context.Context) error {
	token, err := m.session.Token()
	if err != nil {
		return err
	}

	// Invalidate locally even when the remote release fails; the token is
	// unusable for this process either way.
	defer m.session.Invalidate()

	if err := m.transport.Logout(ctx, token); err != nil {
		m.logger.Warn("remote logout failed", "endpoint", m.endpoint, "error", err)
		return fmt.Errorf("logout %s: %w", m.endpoint, err)
	}

	m.logger.Info("logout succeeded", "endpoint", m.endpoint)

	return nil
}
