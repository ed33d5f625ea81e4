package shape

import (
	"reflect"

	"github.com/juju/collections/set"

	"graph-copier/sets"
)

type ShapeEnum int

const (
	ShapeUnknown ShapeEnum = iota
	ShapeLeaf
	ShapeOptional
	ShapeArray
	ShapeList
	ShapeSet
	ShapeMap
	ShapeComposite

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

func (s ShapeEnum) String() string {
	switch s {
	case ShapeLeaf:
		return "leaf"
	case ShapeOptional:
		return "optional"
	case ShapeArray:
		return "array"
	case ShapeList:
		return "list"
	case ShapeSet:
		return "set"
	case ShapeMap:
		return "map"
	case ShapeComposite:
		return "composite"
	default:
		return "unknown"
	}
}

var (
	emptyStruct   = reflect.TypeOf(struct{}{})
	setCapability = reflect.TypeOf((*sets.Set)(nil)).Elem()
	jujuStrings   = reflect.TypeOf(set.Strings{})
	jujuInts      = reflect.TypeOf(set.Ints{})
)

// Dispatch classifies rtype into one of the structural shapes. Leaf detection
// runs first: uuid.UUID is an array kind and time.Time is a struct kind, so
// kind-based checks alone would misfile them. Set detection runs before the
// kind switch for the same reason: concrete set containers are structs (juju
// collections) or pointers (the sets.Set capability implementations).
func Dispatch(rtype reflect.Type) ShapeEnum {
	if rtype == nil {
		return ShapeUnknown
	}

	if FromReflectType(rtype) != 0 {
		return ShapeLeaf
	}

	if rtype == jujuStrings || rtype == jujuInts || rtype.Implements(setCapability) {
		return ShapeSet
	}

	switch rtype.Kind() {
	default:
		return ShapeUnknown
	case reflect.Ptr:
		return ShapeOptional
	case reflect.Array:
		return ShapeArray
	case reflect.Slice:
		return ShapeList
	case reflect.Map:
		if rtype.Elem() == emptyStruct {
			return ShapeSet
		}
		return ShapeMap
	case reflect.Struct:
		return ShapeComposite
	}
}
