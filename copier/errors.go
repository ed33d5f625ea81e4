package copier

import (
	"errors"
	"fmt"
)

var (
	ErrNotSupportedKind = errors.New("kind is not supported")
	ErrRecursionLimit   = errors.New("recursion limit exceeded")
	ErrUnsafeMutation   = errors.New("unsafe mutation of a unique-set element")
	ErrNilTransform     = errors.New("transform function is required")

	// ErrTransformer matches any TransformError via errors.Is.
	ErrTransformer = errors.New("transform failed")
)

// NodeEnum names the kind of slot a node occupies within its parent.
type NodeEnum int

const (
	NodeRoot NodeEnum = iota
	NodeField
	NodeArrayElement
	NodeListElement
	NodeSetElement
	NodeMapValue

	// NodeTotal is a constant that represents the total number of node kinds defined
	NodeTotal = int(iota)
)

func (n NodeEnum) String() string {
	switch n {
	case NodeRoot:
		return "root value"
	case NodeField:
		return "composite field"
	case NodeArrayElement:
		return "array element"
	case NodeListElement:
		return "list element"
	case NodeSetElement:
		return "set element"
	case NodeMapValue:
		return "map value"
	default:
		return "unknown node"
	}
}

// TransformError reports a caller-supplied transform that returned an error,
// panicked, or produced a value that does not fit its slot. The original
// cause is available through Unwrap.
type TransformError struct {
	Path  Path
	Field string
	Node  NodeEnum
	Err   error
}

func (e *TransformError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("transform failed at %s (%s): %v", e.Path, e.Node, e.Err)
	}

	return fmt.Sprintf("transform failed at %s (%s %q): %v", e.Path, e.Node, e.Field, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

func (e *TransformError) Is(target error) bool { return target == ErrTransformer }
