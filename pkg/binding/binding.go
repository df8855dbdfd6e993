package binding

import (
	"context"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"go.uber.org/zap"
)

// Invoker performs a single remote call. *rest.Invoker implements it.
type Invoker interface {
	Get(ctx context.Context, service, operation string, params model.Params, a model.Addressing, shape model.Shape) (any, error)
	Post(ctx context.Context, service, operation string, params model.Params, a model.Addressing, shape model.Shape) (any, error)
}

// Namespace holds the bindings defined against one Invoker and one set of
// addressing defaults.
type Namespace struct {
	inv      Invoker
	defaults model.Addressing

	mu       sync.RWMutex
	bindings map[model.Key]*Binding
}

// NewNamespace returns an empty Namespace. defaults is copied and never
// modified afterwards.
func NewNamespace(inv Invoker, defaults model.Addressing) *Namespace {
	return &Namespace{
		inv:      inv,
		defaults: defaults,
		bindings: make(map[model.Key]*Binding),
	}
}

// Defaults returns the addressing every call starts from.
func (ns *Namespace) Defaults() model.Addressing {
	return ns.defaults
}

// Define creates or redefines the binding for (service, operation).
func (ns *Namespace) Define(service, operation string, paramNames []string, shape model.Shape) *Binding {
	return ns.DefineDescriptor(model.OperationDescriptor{
		ServiceName:   service,
		OperationName: operation,
		ParamNames:    paramNames,
		Shape:         shape,
	})
}

// DefineDescriptor creates the binding for d, or swaps the descriptor of the
// binding already stored under d.Key() and returns that same binding.
func (ns *Namespace) DefineDescriptor(d model.OperationDescriptor) *Binding {
	d = d.Clone()
	key := d.Key()

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if b, ok := ns.bindings[key]; ok {
		zap.L().Debug("redefining operation", zap.Stringer("operation", key), zap.Strings("params", d.ParamNames))
		b.desc.Store(&d)
		return b
	}
	b := &Binding{ns: ns}
	b.desc.Store(&d)
	ns.bindings[key] = b
	return b
}

// Lookup returns the binding for (service, operation).
func (ns *Namespace) Lookup(service, operation string) (*Binding, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	b, ok := ns.bindings[model.Key{Service: service, Operation: operation}]
	return b, ok
}

// Bindings returns every binding sorted by service, then operation.
func (ns *Namespace) Bindings() []*Binding {
	ns.mu.RLock()
	out := make([]*Binding, 0, len(ns.bindings))
	for _, b := range ns.bindings {
		out = append(out, b)
	}
	ns.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Binding) int {
		ka, kb := a.Descriptor().Key(), b.Descriptor().Key()
		if c := strings.Compare(ka.Service, kb.Service); c != 0 {
			return c
		}
		return strings.Compare(ka.Operation, kb.Operation)
	})
	return out
}

// Services returns the sorted, de-duplicated service names.
func (ns *Namespace) Services() []string {
	ns.mu.RLock()
	seen := make(map[string]struct{})
	for k := range ns.bindings {
		seen[k.Service] = struct{}{}
	}
	ns.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Binding is the callable form of one operation.
type Binding struct {
	ns   *Namespace
	desc atomic.Pointer[model.OperationDescriptor]
}

// Get calls the operation with a GET request. See the package documentation
// for how args are interpreted.
func (b *Binding) Get(ctx context.Context, args ...any) (any, error) {
	d := b.desc.Load()
	params, override := BindArgs(d.ParamNames, args)
	return b.ns.inv.Get(ctx, d.ServiceName, d.OperationName, params, b.ns.defaults.Merge(override), d.Shape)
}

// Post calls the operation with a form-encoded POST request.
func (b *Binding) Post(ctx context.Context, args ...any) (any, error) {
	d := b.desc.Load()
	params, override := BindArgs(d.ParamNames, args)
	return b.ns.inv.Post(ctx, d.ServiceName, d.OperationName, params, b.ns.defaults.Merge(override), d.Shape)
}

// ServiceName returns the service the operation belongs to.
func (b *Binding) ServiceName() string { return b.desc.Load().ServiceName }

// OperationName returns the remote operation name.
func (b *Binding) OperationName() string { return b.desc.Load().OperationName }

// ParamNames returns a copy of the declared parameter names.
func (b *Binding) ParamNames() []string { return slices.Clone(b.desc.Load().ParamNames) }

// Shape returns the response shape.
func (b *Binding) Shape() model.Shape { return b.desc.Load().Clone().Shape }

// Descriptor returns a copy of the current descriptor.
func (b *Binding) Descriptor() model.OperationDescriptor { return b.desc.Load().Clone() }
