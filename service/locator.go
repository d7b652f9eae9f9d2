package service

import (
	"context"
	"fmt"

	"github.com/hupe1980/modelbridge/core"
	"github.com/hupe1980/modelbridge/logging"
)

// Options configures the Locator.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Locator resolves service descriptors to callable proxies via a synchronous
// remote metadata lookup. Resolution requires an authenticated session; the
// session check happens locally before any network I/O.
type Locator struct {
	session   *core.Session
	transport core.Transport
	logger    logging.Logger
}

// NewLocator creates a Locator bound to one session and transport.
func NewLocator(session *core.Session, transport core.Transport, optFns ...func(o *Options)) *Locator {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Locator{session: session, transport: transport, logger: opts.Logger}
}

// Resolve looks up the (name, version) service and returns a Proxy caching
// the remote schema for its lifetime. Re-resolve to observe remote schema
// changes; no cache invalidation exists.
//
// Fails with core.ErrSessionInvalid (no I/O) when the session is not
// authenticated and core.ErrServiceNotFound when no deployed service matches.
func (l *Locator) Resolve(ctx context.Context, name, version string) (*Proxy, error) {
	token, err := l.session.Token()
	if err != nil {
		return nil, err
	}

	desc := core.ServiceDescriptor{Name: name, Version: version}

	schema, err := l.transport.Describe(ctx, token, desc)
	if err != nil {
		l.logger.Error("service resolution failed", "service", desc.String(), "error", err)
		return nil, fmt.Errorf("resolve %s: %w", desc, err)
	}

	l.logger.Debug("service resolved", "service", desc.String(), "operations", len(schema.Operations))

	return newProxy(*schema, l.session, l.transport, l.logger), nil
}
