package copier

import (
	"fmt"
	"reflect"

	"graph-copier/shape"
)

// validateSetElement guards the uniqueness invariant of a set against the
// transform. orig is the untouched source element, pre the freshly copied
// element handed to the transform, post the transform's result.
//
// Two outcomes are rejected: the transform mutated the element in place
// (same identity, fingerprint no longer matching the source), and the
// transform replaced a non-leaf element with a value of a different
// fingerprint. Arbitrary composites define their set identity through their
// fields, so rewriting them risks duplicate collisions or silent element
// loss. Leaf elements are immutable values whose rewrite is always safe, and
// identity-preserving transforms always pass.
func validateSetElement(orig, pre, post reflect.Value, path Path) error {
	if sameIdentity(pre, post) {
		if !reflect.DeepEqual(orig.Interface(), post.Interface()) {
			return fmt.Errorf("%w: element of type %s was mutated in place at %s",
				ErrUnsafeMutation, post.Type(), path)
		}

		return nil
	}

	if reflect.DeepEqual(pre.Interface(), post.Interface()) {
		return nil
	}

	if shape.FromReflectType(post.Type()) != 0 {
		return nil
	}

	return fmt.Errorf("%w: transform changed the equality fingerprint of a %s element at %s",
		ErrUnsafeMutation, pre.Type(), path)
}

// sameIdentity reports whether a and b are the same referenced object, not
// merely equal values. Only reference kinds have an identity.
func sameIdentity(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() || a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	default:
		return false
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	}
}
