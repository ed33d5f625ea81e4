package copier

import (
	"fmt"
	"strconv"
)

// Path is an immutable breadcrumb locating a node within the copied graph.
// Deriving a child path never modifies the receiver.
type Path string

// Root is the path of the value passed to DeepCopyAndApply.
const Root Path = "root"

// Field returns the path of a named composite field, e.g. root.Name.
func (p Path) Field(name string) Path {
	return p + "." + Path(name)
}

// Index returns the path of a positional element, e.g. root[2].
func (p Path) Index(i int) Path {
	return p + "[" + Path(strconv.Itoa(i)) + "]"
}

// Key returns the path of a map value, e.g. root["key"] or root[2].
func (p Path) Key(key any) Path {
	if s, ok := key.(string); ok {
		return Path(fmt.Sprintf("%s[%q]", string(p), s))
	}

	return Path(fmt.Sprintf("%s[%v]", string(p), key))
}

func (p Path) String() string { return string(p) }
