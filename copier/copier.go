// Package copier implements a type-introspecting deep-copy-and-transform
// engine. DeepCopyAndApply walks an arbitrary value graph, classifies every
// node into a structural shape (leaf, optional, array, list, set, map or
// composite), builds a structurally independent copy and applies a
// caller-supplied transform at each node once its children are copied.
//
// The engine is pure and synchronous: it never mutates the input graph,
// holds no state across calls, and concurrent calls need no locking.
package copier

import (
	"fmt"
	"reflect"

	"graph-copier/telemetry"
)

// Field describes a named, readable and writable member of a composite. The
// transform receives the descriptor of the field containing the current node,
// or nil at the root. Inside plain collections the parent's descriptor is
// forwarded to the elements.
type Field struct {
	Name string
	Type reflect.Type // declared type, which may differ from the runtime type
}

// Transform maps a node's value to the value kept in the copy. It is invoked
// once per present node, children already copied. The result must be
// assignable to the node's runtime type. Absent values (nils) are passed
// through untouched and never offered to the transform.
type Transform func(field *Field, value any) (any, error)

// Identity keeps every node unchanged.
func Identity(_ *Field, value any) (any, error) { return value, nil }

// MaxDepth is the recursion ceiling. Exceeding it aborts the copy with
// ErrRecursionLimit, which turns cyclic or pathologically nested inputs into
// a deterministic failure instead of a stack overflow.
const MaxDepth = 100

type Option func(*context)

// WithTelemetry attaches an advisory sink to the call.
func WithTelemetry(emitter telemetry.Emitter) Option {
	return func(c *context) {
		if emitter != nil {
			c.emitter = emitter
		}
	}
}

// context threads the transform, the advisory sink and nothing else through
// one call. A fresh context is allocated per call and never shared.
type context struct {
	transform Transform
	emitter   telemetry.Emitter
}

// DeepCopyAndApply returns an independently owned deep copy of value with
// transform applied at every visited node. A nil value is returned as nil.
// On failure the whole call aborts with a typed error carrying the path of
// the offending node; no partial result is ever returned.
func DeepCopyAndApply(value any, transform Transform, opts ...Option) (any, error) {
	if transform == nil {
		return nil, fmt.Errorf("%w: got nil at %s", ErrNilTransform, Root)
	}

	ctx := &context{transform: transform, emitter: telemetry.Nop}
	for _, opt := range opts {
		opt(ctx)
	}

	if value == nil {
		return nil, nil
	}

	out, err := ctx.walk(reflect.ValueOf(value), nil, NodeRoot, Root, 0)
	if err != nil {
		return nil, err
	}
	if !out.IsValid() {
		return nil, nil
	}

	return out.Interface(), nil
}
