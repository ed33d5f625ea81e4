package copier

import (
	"fmt"
	"reflect"

	"github.com/juju/collections/set"

	"graph-copier/sets"
	"graph-copier/telemetry"
)

// copySet copies a unique-element container. Three containers are
// recognized: map[T]struct{}, the sets.Set capability, and the concrete
// string/int sets from juju/collections. Every transformed element passes
// the mutation-safety check before insertion, and a post-transform
// cardinality drop (duplicate collision) aborts the copy.
func (c *context) copySet(rv reflect.Value, field *Field, path Path, depth int) (reflect.Value, error) {
	switch src := rv.Interface().(type) {
	case set.Strings:
		return c.copyStringSet(src, field, path, depth)
	case set.Ints:
		return c.copyIntSet(src, field, path, depth)
	case sets.Set:
		return c.copyCapabilitySet(src, rv.Type(), field, path, depth)
	}

	return c.copyMapSet(rv, field, path, depth)
}

// copyMapSet handles the idiomatic Go set, map[T]struct{}. Elements are the
// map keys; the path uses a position counter in enumeration order since sets
// carry no index semantics.
func (c *context) copyMapSet(rv reflect.Value, field *Field, path Path, depth int) (reflect.Value, error) {
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	empty := reflect.Zero(rv.Type().Elem())

	i := 0
	iter := rv.MapRange()
	for iter.Next() {
		orig := iter.Key()
		elemPath := path.Index(i)
		i++

		post, err := c.copySetElement(orig, field, elemPath, depth)
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetMapIndex(post, empty)
	}

	if out.Len() != rv.Len() {
		return reflect.Value{}, fmt.Errorf("%w: transform collapsed %d elements into %d at %s",
			ErrUnsafeMutation, rv.Len(), out.Len(), path)
	}

	return out, nil
}

// copyCapabilitySet handles containers only known through the sets.Set
// capability. When the source can produce a fresh instance of itself the
// duplicate-detection strategy is preserved; otherwise the copy falls back
// to the default sets.Hash and says so via a ComparerFallback advisory.
func (c *context) copyCapabilitySet(src sets.Set, rtype reflect.Type, field *Field, path Path, depth int) (reflect.Value, error) {
	var out sets.Set
	if ne, ok := src.(sets.NewEmptier); ok {
		out = ne.NewEmpty()
	} else {
		out = sets.NewHash()
		c.emitter.Emit(telemetry.ComparerFallback, map[string]string{
			"path":     path.String(),
			"actual":   rtype.String(),
			"fallback": fmt.Sprintf("%T", out),
		})
	}

	for i, elem := range src.Values() {
		elemPath := path.Index(i)
		if elem == nil {
			out.Add(nil)
			continue
		}

		post, err := c.copySetElement(reflect.ValueOf(elem), field, elemPath, depth)
		if err != nil {
			return reflect.Value{}, err
		}
		if !post.Type().Comparable() {
			return reflect.Value{}, fmt.Errorf("%w: set element type %s is not comparable at %s",
				ErrNotSupportedKind, post.Type(), elemPath)
		}

		out.Add(post.Interface())
	}

	if out.Size() != src.Size() {
		return reflect.Value{}, fmt.Errorf("%w: transform collapsed %d elements into %d at %s",
			ErrUnsafeMutation, src.Size(), out.Size(), path)
	}

	return reflect.ValueOf(out), nil
}

// copySetElement copies one set element, applies the transform at the
// element level and runs the mutation-safety check. Nil elements pass
// through untouched.
func (c *context) copySetElement(orig reflect.Value, field *Field, elemPath Path, depth int) (reflect.Value, error) {
	if orig.Kind() == reflect.Interface {
		if orig.IsNil() {
			return orig, nil
		}

		return c.copySetElement(orig.Elem(), field, elemPath, depth)
	}

	if orig.Kind() == reflect.Ptr {
		if orig.IsNil() {
			return orig, nil
		}

		return c.copyPointerSetElement(orig, field, elemPath, depth)
	}

	pre, present, err := c.copyNode(orig, field, NodeSetElement, elemPath, depth+1)
	if err != nil {
		return reflect.Value{}, err
	}
	if !present {
		return pre, nil
	}

	post, err := c.apply(field, NodeSetElement, elemPath, pre)
	if err != nil {
		return reflect.Value{}, err
	}
	if err := validateSetElement(orig, pre, post, elemPath); err != nil {
		return reflect.Value{}, err
	}

	return post, nil
}

// copyPointerSetElement keeps reference semantics for pointer elements: the
// transform sees the copied pointer itself, not the pointee, so an in-place
// mutation of the element object is observable. The pointee's fields are
// copied and transformed as usual before the element-level transform runs.
func (c *context) copyPointerSetElement(orig reflect.Value, field *Field, elemPath Path, depth int) (reflect.Value, error) {
	inner, _, err := c.copyNode(orig.Elem(), field, NodeSetElement, elemPath, depth+1)
	if err != nil {
		return reflect.Value{}, err
	}

	pre := reflect.New(orig.Type().Elem())
	if inner.IsValid() {
		if err := setSlot(pre.Elem(), inner, elemPath); err != nil {
			return reflect.Value{}, err
		}
	}

	// fingerprint of the element before the transform; post aliases pre when
	// the transform returns the same pointer
	snapshot := reflect.New(orig.Type().Elem())
	snapshot.Elem().Set(pre.Elem())

	post, err := c.apply(field, NodeSetElement, elemPath, pre)
	if err != nil {
		return reflect.Value{}, err
	}

	if sameIdentity(pre, post) {
		if !reflect.DeepEqual(snapshot.Interface(), post.Interface()) {
			return reflect.Value{}, fmt.Errorf("%w: element of type %s was mutated in place at %s",
				ErrUnsafeMutation, post.Type(), elemPath)
		}

		return post, nil
	}

	if reflect.DeepEqual(pre.Interface(), post.Interface()) {
		return post, nil
	}

	return reflect.Value{}, fmt.Errorf("%w: transform changed the equality fingerprint of a %s element at %s",
		ErrUnsafeMutation, pre.Type(), elemPath)
}

// copyStringSet and copyIntSet rebuild the concrete juju/collections sets.
// Elements are leaf-typed, so the safety check reduces to the cardinality
// guard. SortedValues keeps diagnostic positions deterministic.

func (c *context) copyStringSet(src set.Strings, field *Field, path Path, depth int) (reflect.Value, error) {
	out := set.NewStrings()
	for i, elem := range src.SortedValues() {
		post, err := c.walk(reflect.ValueOf(elem), field, NodeSetElement, path.Index(i), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}

		out.Add(post.String())
	}

	if out.Size() != src.Size() {
		return reflect.Value{}, fmt.Errorf("%w: transform collapsed %d elements into %d at %s",
			ErrUnsafeMutation, src.Size(), out.Size(), path)
	}

	return reflect.ValueOf(out), nil
}

func (c *context) copyIntSet(src set.Ints, field *Field, path Path, depth int) (reflect.Value, error) {
	out := set.NewInts()
	for i, elem := range src.SortedValues() {
		post, err := c.walk(reflect.ValueOf(elem), field, NodeSetElement, path.Index(i), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}

		out.Add(int(post.Int()))
	}

	if out.Size() != src.Size() {
		return reflect.Value{}, fmt.Errorf("%w: transform collapsed %d elements into %d at %s",
			ErrUnsafeMutation, src.Size(), out.Size(), path)
	}

	return reflect.ValueOf(out), nil
}
