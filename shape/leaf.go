package shape

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

type LeafEnum int

const (
	_ LeafEnum = iota // skip zero value, use it as a default (not a leaf) value for LeafEnum

	LeafInt
	LeafInt8
	LeafInt16
	LeafInt32
	LeafInt64
	LeafUint
	LeafUint8
	LeafUint16
	LeafUint32
	LeafUint64
	LeafFloat32
	LeafFloat64
	LeafBool
	LeafString
	LeafTime
	LeafDuration
	LeafUUID
	LeafNamedEnum // alias to any named integer or string type

	// LeafTotal is a constant that represents the total number of leaf kinds defined
	LeafTotal = int(iota)
)

func (k LeafEnum) String() string {
	switch k {
	case LeafInt:
		return "LeafInt"
	case LeafInt8:
		return "LeafInt8"
	case LeafInt16:
		return "LeafInt16"
	case LeafInt32:
		return "LeafInt32"
	case LeafInt64:
		return "LeafInt64"
	case LeafUint:
		return "LeafUint"
	case LeafUint8:
		return "LeafUint8"
	case LeafUint16:
		return "LeafUint16"
	case LeafUint32:
		return "LeafUint32"
	case LeafUint64:
		return "LeafUint64"
	case LeafFloat32:
		return "LeafFloat32"
	case LeafFloat64:
		return "LeafFloat64"
	case LeafBool:
		return "LeafBool"
	case LeafString:
		return "LeafString"
	case LeafTime:
		return "LeafTime"
	case LeafDuration:
		return "LeafDuration"
	case LeafUUID:
		return "LeafUUID"
	case LeafNamedEnum:
		return "LeafNamedEnum"
	default:
		return "LeafEnum(0)"
	}
}

func (k LeafEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case LeafInt, LeafInt8, LeafInt16, LeafInt32, LeafInt64,
		LeafUint, LeafUint8, LeafUint16, LeafUint32, LeafUint64,
		LeafFloat32, LeafFloat64:
		return true
	}
}

func (k LeafEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case LeafInt, LeafInt8, LeafInt16, LeafInt32, LeafInt64,
		LeafUint, LeafUint8, LeafUint16, LeafUint32, LeafUint64:
		return true
	}
}

// IsMapKey reports whether values of this leaf kind are allowed as key-value
// map keys. The allow-list is restricted to fingerprint-stable kinds: text,
// numbers, named enums and unique ids. Bool, time and duration keys are not
// on the list.
func (k LeafEnum) IsMapKey() bool {
	switch k {
	default:
		return false
	case LeafString, LeafUUID, LeafNamedEnum:
		return true
	case LeafInt, LeafInt8, LeafInt16, LeafInt32, LeafInt64,
		LeafUint, LeafUint8, LeafUint16, LeafUint32, LeafUint64,
		LeafFloat32, LeafFloat64:
		return true
	}
}

// FromReflectType classifies rtype as one of the immutable leaf kinds, or
// returns the zero LeafEnum when rtype is not a leaf.
func FromReflectType(rtype reflect.Type) LeafEnum {
	if rtype == nil {
		return 0
	}

	// check if true primitive or known immutable value type
	switch rtype {
	case reflect.TypeOf(int(0)):
		return LeafInt
	case reflect.TypeOf(int8(0)):
		return LeafInt8
	case reflect.TypeOf(int16(0)):
		return LeafInt16
	case reflect.TypeOf(int32(0)):
		return LeafInt32
	case reflect.TypeOf(int64(0)):
		return LeafInt64
	case reflect.TypeOf(uint(0)):
		return LeafUint
	case reflect.TypeOf(uint8(0)):
		return LeafUint8
	case reflect.TypeOf(uint16(0)):
		return LeafUint16
	case reflect.TypeOf(uint32(0)):
		return LeafUint32
	case reflect.TypeOf(uint64(0)):
		return LeafUint64
	case reflect.TypeOf(float32(0)):
		return LeafFloat32
	case reflect.TypeOf(float64(0)):
		return LeafFloat64
	case reflect.TypeOf(false):
		return LeafBool
	case reflect.TypeOf(""):
		return LeafString
	case reflect.TypeOf(time.Time{}):
		return LeafTime
	case reflect.TypeOf(time.Duration(0)):
		return LeafDuration
	case reflect.TypeOf(uuid.UUID{}):
		return LeafUUID
	}

	// check if it's a named enum or named scalar type
	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return LeafNamedEnum
	case reflect.Float32:
		return LeafFloat32
	case reflect.Float64:
		return LeafFloat64
	case reflect.Bool:
		return LeafBool
	}
}
