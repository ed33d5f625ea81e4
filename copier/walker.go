package copier

import (
	"fmt"
	"reflect"

	"graph-copier/shape"
	"graph-copier/telemetry"
)

// walk copies rv and applies the transform to the finished node.
func (c *context) walk(rv reflect.Value, field *Field, node NodeEnum, path Path, depth int) (reflect.Value, error) {
	pre, present, err := c.copyNode(rv, field, node, path, depth)
	if err != nil || !present {
		return pre, err
	}

	return c.apply(field, node, path, pre)
}

// copyNode copies rv with its children already transformed, leaving the node
// itself untransformed. The bool reports whether the node is present, i.e.
// whether it takes a transform at all: absent values and optional wrappers
// (whose inner value is transformed during unwrapping) do not.
func (c *context) copyNode(rv reflect.Value, field *Field, node NodeEnum, path Path, depth int) (reflect.Value, bool, error) {
	if !rv.IsValid() {
		return rv, false, nil
	}

	// An interface slot carries no usable static type; the copy is built from
	// the dynamic value. For container shapes that loses the declared
	// abstract-capability type, which is worth an advisory.
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv, false, nil
		}

		elem := rv.Elem()
		switch shape.Dispatch(elem.Type()) {
		case shape.ShapeArray, shape.ShapeList, shape.ShapeSet, shape.ShapeMap:
			c.emitter.Emit(telemetry.TypeFidelityLoss, map[string]string{
				"path":     path.String(),
				"declared": rv.Type().String(),
				"actual":   elem.Type().String(),
			})
		}

		return c.copyNode(elem, field, node, path, depth)
	}

	if depth > MaxDepth {
		return reflect.Value{}, false, fmt.Errorf("%w: depth %d exceeded at %s", ErrRecursionLimit, MaxDepth, path)
	}

	switch shape.Dispatch(rv.Type()) {
	case shape.ShapeLeaf:
		return rv, true, nil

	case shape.ShapeOptional:
		if rv.IsNil() {
			return rv, false, nil
		}
		out, err := c.copyOptional(rv, field, node, path, depth)
		return out, false, err

	case shape.ShapeArray:
		out, err := c.copyArray(rv, field, path, depth)
		return out, true, err

	case shape.ShapeList:
		if rv.IsNil() {
			return rv, false, nil
		}
		out, err := c.copyList(rv, field, path, depth)
		return out, true, err

	case shape.ShapeSet:
		if (rv.Kind() == reflect.Map || rv.Kind() == reflect.Ptr) && rv.IsNil() {
			return rv, false, nil
		}
		out, err := c.copySet(rv, field, path, depth)
		return out, true, err

	case shape.ShapeMap:
		if rv.IsNil() {
			return rv, false, nil
		}
		out, err := c.copyMap(rv, field, path, depth)
		return out, true, err

	case shape.ShapeComposite:
		out, err := c.copyComposite(rv, path, depth)
		return out, true, err

	default:
		return reflect.Value{}, false, fmt.Errorf("%w: %s of kind %s at %s",
			ErrNotSupportedKind, rv.Type(), rv.Type().Kind(), path)
	}
}

// copyOptional unwraps a pointer, copies and transforms the pointee, and
// re-wraps it in a freshly allocated pointer. The wrapper itself is not a
// transformable node.
func (c *context) copyOptional(rv reflect.Value, field *Field, node NodeEnum, path Path, depth int) (reflect.Value, error) {
	inner, err := c.walk(rv.Elem(), field, node, path, depth+1)
	if err != nil {
		return reflect.Value{}, err
	}

	out := reflect.New(rv.Type().Elem())
	if inner.IsValid() {
		if err := setSlot(out.Elem(), inner, path); err != nil {
			return reflect.Value{}, err
		}
	}

	return out, nil
}

// apply invokes the caller-supplied transform on a present node. Errors,
// panics and results that do not fit the node's runtime type all surface as
// a TransformError carrying the node's location.
func (c *context) apply(field *Field, node NodeEnum, path Path, value reflect.Value) (out reflect.Value, err error) {
	fieldName := ""
	if field != nil {
		fieldName = field.Name
	}

	defer func() {
		if r := recover(); r != nil {
			err = &TransformError{Path: path, Field: fieldName, Node: node, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	mapped, terr := c.transform(field, value.Interface())
	if terr != nil {
		return reflect.Value{}, &TransformError{Path: path, Field: fieldName, Node: node, Err: terr}
	}
	if mapped == nil {
		return reflect.Zero(value.Type()), nil
	}

	mv := reflect.ValueOf(mapped)
	if !mv.Type().AssignableTo(value.Type()) {
		return reflect.Value{}, &TransformError{
			Path: path, Field: fieldName, Node: node,
			Err: fmt.Errorf("result type %s is not assignable to %s", mv.Type(), value.Type()),
		}
	}

	return mv, nil
}

// setSlot assigns v into dst, turning an impossible assignment into a typed
// error instead of a reflect panic.
func setSlot(dst, v reflect.Value, path Path) error {
	if !v.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("%w: cannot place a %s into a %s slot at %s",
			ErrNotSupportedKind, v.Type(), dst.Type(), path)
	}

	dst.Set(v)

	return nil
}
