// Package modelbridge provides a high-level façade over the session, service
// and artifact abstractions for talking to a remote model-serving platform.
// Most applications interact with this package by:
//  1. Creating a Client via New() (optionally overriding the transport or stores)
//  2. Logging in with a credential strategy (username/password, bearer token)
//  3. Resolving deployed services by (name, version) and invoking them, or
//     using InvokeSync for the resolve-invoke-retain round trip in one call
//
// The façade delegates the wire exchanges to a core.Transport (HTTP by
// default) while keeping setup and usage ergonomics concise. All defaults are
// safe for local development and testing; production deployments typically
// supply a tuned transport and a structured logger.
package modelbridge

import (
	"context"
	"time"

	"github.com/hupe1980/modelbridge/artifact"
	"github.com/hupe1980/modelbridge/core"
	"github.com/hupe1980/modelbridge/logging"
	"github.com/hupe1980/modelbridge/service"
	"github.com/hupe1980/modelbridge/session"
	"github.com/hupe1980/modelbridge/transport"
)

// Options configures the Client instance.
type Options struct {
	// Transport carries the wire exchanges. Defaults to the HTTP transport
	// bound to the endpoint passed to New.
	Transport core.Transport

	// ArtifactStore retains decoded file artifacts per invocation so
	// presentation layers can re-render without re-invoking. Defaults to an
	// in-memory store.
	ArtifactStore core.ArtifactStore

	// Timeout applies per request on the default HTTP transport; ignored
	// when a custom Transport is supplied. Zero keeps the transport default.
	Timeout time.Duration

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Client is the high-level façade aggregating the session manager, service
// locator and artifact retention store. One Client holds one session against
// one endpoint; all operations besides Login require that session to be
// authenticated.
type Client struct {
	opts    Options
	manager *session.Manager
	locator *service.Locator
}

// New creates a Client bound to the given endpoint URL with optional
// overrides. Any unset service is initialized with a safe default.
func New(endpoint string, optFns ...func(o *Options)) *Client {
	opts := Options{
		ArtifactStore: artifact.NewInMemoryStore(),
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	if opts.Transport == nil {
		opts.Transport = transport.NewHTTP(endpoint, func(o *transport.Options) {
			o.Timeout = opts.Timeout
			o.Logger = opts.Logger
		})
	}

	mgr := session.NewManager(endpoint, opts.Transport, func(o *session.Options) {
		o.Logger = opts.Logger
	})
	loc := service.NewLocator(mgr.Session(), opts.Transport, func(o *service.Options) {
		o.Logger = opts.Logger
	})

	return &Client{opts: opts, manager: mgr, locator: loc}
}

// Session returns the client's session for state inspection. Never nil.
func (c *Client) Session() *core.Session { return c.manager.Session() }

// Artifacts returns the artifact retention store populated by InvokeSync.
func (c *Client) Artifacts() core.ArtifactStore { return c.opts.ArtifactStore }

// Login authenticates against the endpoint with the given credential
// strategy. Persistent requests server-side session persistence.
func (c *Client) Login(ctx context.Context, creds core.Credentials, persistent bool) error {
	_, err := c.manager.Login(ctx, creds, persistent)
	return err
}

// Logout releases the session. Subsequent Resolve / invoke calls fail with
// core.ErrSessionInvalid until the next Login.
func (c *Client) Logout(ctx context.Context) error {
	return c.manager.Logout(ctx)
}

// Resolve looks up a deployed service by (name, version) and returns a proxy
// holding the schema cached at resolution time.
func (c *Client) Resolve(ctx context.Context, name, version string) (*service.Proxy, error) {
	return c.locator.Resolve(ctx, name, version)
}

// InvokeSync is a synchronous helper that resolves the service, invokes its
// default operation with positional arguments and retains the decoded
// artifacts in the configured store keyed by invocation ID.
func (c *Client) InvokeSync(ctx context.Context, name, version string, args ...any) (*core.InvocationResult, error) {
	proxy, err := c.locator.Resolve(ctx, name, version)
	if err != nil {
		return nil, err
	}

	res, err := proxy.Invoke(ctx, args...)
	if err != nil {
		return nil, err
	}

	for _, filename := range res.Artifacts() {
		data, err := res.Artifact(filename)
		if err != nil {
			c.opts.Logger.Warn("skipping undecodable artifact", "invocation_id", res.ID(), "filename", filename, "error", err)
			continue
		}
		if err := c.opts.ArtifactStore.Save(res.ID(), filename, data); err != nil {
			c.opts.Logger.Warn("artifact retention failed", "invocation_id", res.ID(), "filename", filename, "error", err)
		}
	}

	return res, nil
}
