package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/modelbridge/core"
	"github.com/hupe1980/modelbridge/logging"
)

// Proxy is a local callable standing in for one deployed remote service. It
// is bound to the descriptor, schema, session and transport it was resolved
// with. Argument validation against the cached schema happens before any
// network I/O; a successful call performs exactly one synchronous round-trip.
//
// Proxies are safe for concurrent use; invocations share no mutable state
// beyond the read-only session.
type Proxy struct {
	schema    core.ServiceSchema
	session   *core.Session
	transport core.Transport
	logger    logging.Logger
}

func newProxy(schema core.ServiceSchema, session *core.Session, transport core.Transport, logger logging.Logger) *Proxy {
	return &Proxy{schema: schema, session: session, transport: transport, logger: logger}
}

// Descriptor returns the (name, version) pair the proxy is bound to.
func (p *Proxy) Descriptor() core.ServiceDescriptor { return p.schema.Descriptor }

// Schema returns a copy of the schema cached at resolution time.
func (p *Proxy) Schema() core.ServiceSchema { return p.schema }

// Operations returns the declared operation names in schema order.
func (p *Proxy) Operations() []string {
	names := make([]string, len(p.schema.Operations))
	for i, op := range p.schema.Operations {
		names[i] = op.Name
	}
	return names
}

// Invoke calls the default (first declared) operation with positional
// arguments matching the declared parameter order.
func (p *Proxy) Invoke(ctx context.Context, args ...any) (*core.InvocationResult, error) {
	op, ok := p.schema.DefaultOperation()
	if !ok {
		return nil, fmt.Errorf("%s declares no operations: %w", p.schema.Descriptor, core.ErrInvalidArgument)
	}
	return p.call(ctx, op, args, nil)
}

// InvokeNamed calls the default operation with arguments keyed by declared
// parameter name.
func (p *Proxy) InvokeNamed(ctx context.Context, named map[string]any) (*core.InvocationResult, error) {
	op, ok := p.schema.DefaultOperation()
	if !ok {
		return nil, fmt.Errorf("%s declares no operations: %w", p.schema.Descriptor, core.ErrInvalidArgument)
	}
	return p.call(ctx, op, nil, named)
}

// Call invokes a named operation with positional arguments; for services
// declaring more than one operation.
func (p *Proxy) Call(ctx context.Context, operation string, args ...any) (*core.InvocationResult, error) {
	op, ok := p.schema.Operation(operation)
	if !ok {
		return nil, fmt.Errorf("%s has no operation %q: %w", p.schema.Descriptor, operation, core.ErrInvalidArgument)
	}
	return p.call(ctx, op, args, nil)
}

// CallNamed invokes a named operation with named arguments.
func (p *Proxy) CallNamed(ctx context.Context, operation string, named map[string]any) (*core.InvocationResult, error) {
	op, ok := p.schema.Operation(operation)
	if !ok {
		return nil, fmt.Errorf("%s has no operation %q: %w", p.schema.Descriptor, operation, core.ErrInvalidArgument)
	}
	return p.call(ctx, op, nil, named)
}

// call validates the arguments locally, then performs the single round-trip.
// Exactly one of args / named is considered.
func (p *Proxy) call(ctx context.Context, op core.Operation, args []any, named map[string]any) (*core.InvocationResult, error) {
	var (
		bound map[string]any
		err   error
	)
	if named != nil {
		bound, err = bindNamed(op, named)
	} else {
		bound, err = bindPositional(op, args)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", p.schema.Descriptor, op.Name, err)
	}

	token, err := p.session.Token()
	if err != nil {
		return nil, err
	}

	start := time.Now()

	payload, err := p.transport.Invoke(ctx, token, p.schema.Descriptor, core.InvocationRequest{
		Operation: op.Name,
		Arguments: bound,
	})
	if err != nil {
		p.logger.Error("invocation failed",
			"service", p.schema.Descriptor.String(),
			"operation", op.Name,
			"duration", time.Since(start),
			"error", err,
		)
		return nil, fmt.Errorf("invoke %s %s: %w", p.schema.Descriptor, op.Name, err)
	}

	p.logger.Info("invocation completed",
		"service", p.schema.Descriptor.String(),
		"operation", op.Name,
		"duration", time.Since(start),
		"outputs", len(payload.Outputs),
		"artifacts", len(payload.Artifacts),
	)

	id := payload.ID
	if id == "" {
		id = uuid.NewString()
	}

	outputs := make(map[string]core.OutputValue, len(payload.Outputs))
	for name, raw := range payload.Outputs {
		kind := core.KindModel // undeclared outputs stay opaque
		if out, ok := op.Output(name); ok {
			kind = out.Kind
		}
		outputs[name] = core.OutputValue{Kind: kind, Raw: raw}
	}

	return core.NewInvocationResult(id, p.schema.Descriptor, op.Name, outputs, payload.Artifacts), nil
}

// bindPositional maps ordered arguments onto the declared parameter list.
func bindPositional(op core.Operation, args []any) (map[string]any, error) {
	if len(args) != len(op.Parameters) {
		return nil, fmt.Errorf("got %d arguments, want %d: %w", len(args), len(op.Parameters), core.ErrInvalidArgument)
	}
	bound := make(map[string]any, len(args))
	for i, param := range op.Parameters {
		if !param.Kind.Accepts(args[i]) {
			return nil, fmt.Errorf("argument %q: %T is not a valid %s: %w", param.Name, args[i], param.Kind, core.ErrInvalidArgument)
		}
		bound[param.Name] = args[i]
	}
	return bound, nil
}

// bindNamed maps keyword arguments onto the declared parameter list. Every
// declared parameter must be supplied; unknown names are rejected.
func bindNamed(op core.Operation, named map[string]any) (map[string]any, error) {
	if len(named) != len(op.Parameters) {
		return nil, fmt.Errorf("got %d arguments, want %d: %w", len(named), len(op.Parameters), core.ErrInvalidArgument)
	}
	bound := make(map[string]any, len(named))
	for _, param := range op.Parameters {
		v, ok := named[param.Name]
		if !ok {
			return nil, fmt.Errorf("missing argument %q: %w", param.Name, core.ErrInvalidArgument)
		}
		if !param.Kind.Accepts(v) {
			return nil, fmt.Errorf("argument %q: %T is not a valid %s: %w", param.Name, v, param.Kind, core.ErrInvalidArgument)
		}
		bound[param.Name] = v
	}
	return bound, nil
}
