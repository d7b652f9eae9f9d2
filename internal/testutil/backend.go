package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hupe1980/modelbridge/core"
)

// Interface compliance (compile-time assertion)
var _ core.Transport = (*FakeBackend)(nil)

// FakeService is one deployed service known to the FakeBackend: its schema
// plus the canned outputs / artifacts every invocation returns.
type FakeService struct {
	Schema    core.ServiceSchema
	Outputs   map[string]json.RawMessage
	Artifacts map[string]string // filename -> base64 text
}

// FakeBackend is an in-process core.Transport with a fixed set of deployed
// services and canned responses. Every wire-facing method counts its calls so
// tests can assert that local validation paths issue zero network I/O.
//
// Authentication accepts any credential payload unless RejectLogins is set.
type FakeBackend struct {
	mu       sync.Mutex
	services map[string]FakeService

	// RejectLogins makes Login fail with core.ErrAuthentication.
	RejectLogins bool
	// FailInvocations makes Invoke fail with core.ErrRemoteExecution.
	FailInvocations bool
	// DropConnections makes Invoke fail with core.ErrTransport.
	DropConnections bool

	LoginCalls    int
	LogoutCalls   int
	DescribeCalls int
	InvokeCalls   int

	// LastArguments records the argument map of the most recent invocation.
	LastArguments map[string]any
}

// NewFakeBackend returns an empty backend; add services with WithService.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{services: map[string]FakeService{}}
}

// WithService deploys a service under its schema descriptor (chainable).
func (b *FakeBackend) WithService(svc FakeService) *FakeBackend {
	b.services[svc.Schema.Descriptor.String()] = svc
	return b
}

// Login implements core.Transport.
func (b *FakeBackend) Login(_ context.Context, req core.LoginRequest) (*core.LoginResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.LoginCalls++
	if b.RejectLogins {
		return nil, fmt.Errorf("login rejected for scheme %q: %w", req.Scheme, core.ErrAuthentication)
	}
	return &core.LoginResponse{Token: "fake-token"}, nil
}

// Logout implements core.Transport.
func (b *FakeBackend) Logout(context.Context, string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.LogoutCalls++
	return nil
}

// Describe implements core.Transport.
func (b *FakeBackend) Describe(_ context.Context, _ string, desc core.ServiceDescriptor) (*core.ServiceSchema, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.DescribeCalls++
	svc, ok := b.services[desc.String()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", desc, core.ErrServiceNotFound)
	}
	schema := svc.Schema
	return &schema, nil
}

// Invoke implements core.Transport.
func (b *FakeBackend) Invoke(_ context.Context, _ string, desc core.ServiceDescriptor, req core.InvocationRequest) (*core.InvocationPayload, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.InvokeCalls++
	b.LastArguments = req.Arguments
	if b.DropConnections {
		return nil, fmt.Errorf("%s: connection reset: %w", desc, core.ErrTransport)
	}
	if b.FailInvocations {
		return nil, fmt.Errorf("%s: service raised: %w", desc, core.ErrRemoteExecution)
	}
	svc, ok := b.services[desc.String()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", desc, core.ErrServiceNotFound)
	}
	return &core.InvocationPayload{
		ID:        fmt.Sprintf("inv-%d", b.InvokeCalls),
		Outputs:   svc.Outputs,
		Artifacts: svc.Artifacts,
	}, nil
}

// CarService is the canonical test fixture: a car-service v1.0.0 predict
// operation taking (hp: number, wt: number) and returning a one-row table
// output "answer" ({am: 1}) plus an "image.png" artifact holding the PNG
// magic bytes.
func CarService() FakeService {
	return FakeService{
		Schema: core.ServiceSchema{
			Descriptor: core.ServiceDescriptor{Name: "car-service", Version: "v1.0.0"},
			Operations: []core.Operation{{
				Name: "predict",
				Parameters: []core.Parameter{
					{Name: "hp", Kind: core.KindNumber},
					{Name: "wt", Kind: core.KindNumber},
				},
				Outputs: []core.Output{
					{Name: "answer", Kind: core.KindTable},
				},
			}},
		},
		Outputs: map[string]json.RawMessage{
			"answer": json.RawMessage(`{"columns":["am"],"rows":[[1]]}`),
		},
		Artifacts: map[string]string{
			"image.png": "iVBORw==", // base64 of 0x89 0x50 0x4E 0x47
		},
	}
}
