package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"resty.dev/v3"

	"github.com/hupe1980/modelbridge/core"
	"github.com/hupe1980/modelbridge/logging"
)

// Interface compliance (compile-time assertion)
var _ core.Transport = (*HTTP)(nil)

// Options configures the HTTP transport.
type Options struct {
	// Timeout applies per request; zero keeps the client default.
	Timeout time.Duration
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// HTTP is the wire-level client for one serving endpoint. It performs exactly
// one round-trip per call and never retries; retry policy, if desired,
// belongs to the caller.
type HTTP struct {
	client *resty.Client
	logger logging.Logger
}

// NewHTTP creates an HTTP transport bound to the endpoint base URL.
func NewHTTP(endpoint string, optFns ...func(o *Options)) *HTTP {
	opts := Options{Timeout: 30 * time.Second, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &HTTP{client: client, logger: opts.Logger}
}

// Close releases the underlying client resources.
func (t *HTTP) Close() error { return t.client.Close() }

// Login implements core.Transport. Any failure at login time — rejected
// credentials or an unreachable endpoint — surfaces as core.ErrAuthentication.
func (t *HTTP) Login(ctx context.Context, req core.LoginRequest) (*core.LoginResponse, error) {
	body, err := loginBody(req)
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	resp, err := t.client.R().SetContext(ctx).SetBody(body).Post("/api/login")
	if err != nil {
		return nil, fmt.Errorf("endpoint unreachable: %v: %w", err, core.ErrAuthentication)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("login rejected (%s): %w", resp.Status(), core.ErrAuthentication)
	}

	token := gjson.GetBytes(resp.Bytes(), "token").String()
	if token == "" {
		return nil, fmt.Errorf("login response carries no token: %w", core.ErrAuthentication)
	}

	return &core.LoginResponse{Token: token}, nil
}

// Logout implements core.Transport.
func (t *HTTP) Logout(ctx context.Context, token string) error {
	resp, err := t.client.R().SetContext(ctx).SetAuthToken(token).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout: %v: %w", err, core.ErrTransport)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return fmt.Errorf("logout rejected: %w", core.ErrSessionInvalid)
	}
	if resp.IsError() {
		return fmt.Errorf("logout failed (%s): %w", resp.Status(), core.ErrTransport)
	}
	return nil
}

// Describe implements core.Transport.
func (t *HTTP) Describe(ctx context.Context, token string, desc core.ServiceDescriptor) (*core.ServiceSchema, error) {
	resp, err := t.client.R().SetContext(ctx).SetAuthToken(token).Get(servicePath(desc))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %v: %w", desc, err, core.ErrTransport)
	}
	if err := statusError(resp, desc); err != nil {
		return nil, err
	}

	b := resp.Bytes()
	schema := &core.ServiceSchema{
		Descriptor: core.ServiceDescriptor{
			Name:    gjson.GetBytes(b, "name").String(),
			Version: gjson.GetBytes(b, "version").String(),
		},
	}
	ops := gjson.GetBytes(b, "operations")
	if !ops.Exists() {
		return nil, fmt.Errorf("describe %s: schema carries no operations: %w", desc, core.ErrTransport)
	}
	if err := json.Unmarshal([]byte(ops.Raw), &schema.Operations); err != nil {
		return nil, fmt.Errorf("describe %s: malformed schema: %v: %w", desc, err, core.ErrTransport)
	}

	return schema, nil
}

// Invoke implements core.Transport.
func (t *HTTP) Invoke(ctx context.Context, token string, desc core.ServiceDescriptor, req core.InvocationRequest) (*core.InvocationPayload, error) {
	body, err := invokeBody(req)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: encode request: %w", desc, err)
	}

	resp, err := t.client.R().SetContext(ctx).SetAuthToken(token).SetBody(body).Post(servicePath(desc) + "/invoke")
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %v: %w", desc, err, core.ErrTransport)
	}

	b := resp.Bytes()

	// A declared remote failure takes precedence over the status code: the
	// request was delivered and the service raised during execution.
	if remoteErr := gjson.GetBytes(b, "error"); remoteErr.Exists() {
		return nil, fmt.Errorf("invoke %s: %s: %w", desc, remoteErr.String(), core.ErrRemoteExecution)
	}
	if err := statusError(resp, desc); err != nil {
		return nil, err
	}

	payload := &core.InvocationPayload{
		ID:        gjson.GetBytes(b, "id").String(),
		Outputs:   map[string]json.RawMessage{},
		Artifacts: map[string]string{},
	}
	gjson.GetBytes(b, "outputs").ForEach(func(key, value gjson.Result) bool {
		payload.Outputs[key.String()] = json.RawMessage(value.Raw)
		return true
	})
	gjson.GetBytes(b, "artifacts").ForEach(func(key, value gjson.Result) bool {
		payload.Artifacts[key.String()] = value.String()
		return true
	})

	return payload, nil
}

// loginBody builds the login JSON without an intermediate struct.
func loginBody(req core.LoginRequest) (string, error) {
	body, err := sjson.Set("", "scheme", req.Scheme)
	if err != nil {
		return "", err
	}
	for k, v := range req.Fields {
		if body, err = sjson.Set(body, "fields."+k, v); err != nil {
			return "", err
		}
	}
	return sjson.Set(body, "persistent", req.Persistent)
}

// invokeBody builds the invocation JSON without an intermediate struct.
func invokeBody(req core.InvocationRequest) (string, error) {
	body, err := sjson.Set("", "operation", req.Operation)
	if err != nil {
		return "", err
	}
	for name, v := range req.Arguments {
		if body, err = sjson.Set(body, "arguments."+name, v); err != nil {
			return "", err
		}
	}
	return body, nil
}

func servicePath(desc core.ServiceDescriptor) string {
	return "/api/services/" + url.PathEscape(desc.Name) + "/" + url.PathEscape(desc.Version)
}

// statusError maps a non-2xx status onto the core error taxonomy.
func statusError(resp *resty.Response, desc core.ServiceDescriptor) error {
	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%s: token rejected: %w", desc, core.ErrSessionInvalid)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%s: %w", desc, core.ErrServiceNotFound)
	case resp.IsError():
		return fmt.Errorf("%s: unexpected status %s: %w", desc, resp.Status(), core.ErrTransport)
	}
	return nil
}
