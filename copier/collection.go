package copier

import (
	"fmt"
	"reflect"

	"graph-copier/shape"
)

// copyArray copies a single-dimension array element by element. Multi
// dimensional arrays are rejected rather than flattened.
func (c *context) copyArray(rv reflect.Value, field *Field, path Path, depth int) (reflect.Value, error) {
	rtype := rv.Type()
	if rank := arrayRank(rtype); rank > 1 {
		return reflect.Value{}, fmt.Errorf("%w: multi-dimensional array %s of rank %d at %s",
			ErrNotSupportedKind, rtype, rank, path)
	}

	out := reflect.New(rtype).Elem()
	for i := 0; i < rv.Len(); i++ {
		elemPath := path.Index(i)

		elem, err := c.walk(rv.Index(i), field, NodeArrayElement, elemPath, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		if !elem.IsValid() {
			continue
		}
		if err := setSlot(out.Index(i), elem, elemPath); err != nil {
			return reflect.Value{}, err
		}
	}

	return out, nil
}

// arrayRank counts nested array dimensions, stopping at leaf element types:
// [3]uuid.UUID is rank 1 even though uuid.UUID is itself an array kind.
func arrayRank(rtype reflect.Type) int {
	rank := 0
	for rtype.Kind() == reflect.Array && shape.FromReflectType(rtype) == 0 {
		rank++
		rtype = rtype.Elem()
	}

	return rank
}

// copyList copies a slice into a new slice of the same concrete type.
func (c *context) copyList(rv reflect.Value, field *Field, path Path, depth int) (reflect.Value, error) {
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elemPath := path.Index(i)

		elem, err := c.walk(rv.Index(i), field, NodeListElement, elemPath, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		if !elem.IsValid() {
			continue
		}
		if err := setSlot(out.Index(i), elem, elemPath); err != nil {
			return reflect.Value{}, err
		}
	}

	return out, nil
}

// copyMap copies a key-value map. Keys must belong to the fingerprint-stable
// allow-list and are reused as-is, never transformed; only values are copied
// and transformed.
func (c *context) copyMap(rv reflect.Value, field *Field, path Path, depth int) (reflect.Value, error) {
	rtype := rv.Type()

	keyIsAbstract := rtype.Key().Kind() == reflect.Interface
	if !keyIsAbstract && !shape.FromReflectType(rtype.Key()).IsMapKey() {
		return reflect.Value{}, fmt.Errorf("%w: map key type %s at %s", ErrNotSupportedKind, rtype.Key(), path)
	}

	out := reflect.MakeMapWithSize(rtype, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		if keyIsAbstract {
			if key.IsNil() {
				return reflect.Value{}, fmt.Errorf("%w: nil map key at %s", ErrNotSupportedKind, path)
			}
			kt := key.Elem().Type()
			if !shape.FromReflectType(kt).IsMapKey() {
				return reflect.Value{}, fmt.Errorf("%w: map key type %s at %s", ErrNotSupportedKind, kt, path)
			}
		}

		valuePath := path.Key(keyText(key))

		value, err := c.walk(iter.Value(), field, NodeMapValue, valuePath, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		if !value.IsValid() {
			value = reflect.Zero(rtype.Elem())
		}

		out.SetMapIndex(key, value)
	}

	return out, nil
}

// keyText renders a map key for the breadcrumb, unwrapping abstract keys so
// the path shows the concrete value, e.g. root["name"] instead of root[name].
func keyText(key reflect.Value) any {
	if key.Kind() == reflect.Interface {
		key = key.Elem()
	}

	return key.Interface()
}
