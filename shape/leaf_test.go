package shape_test

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"graph-copier/shape"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Celsius float64
	type Flag bool
	type Empty struct{}

	fmt.Println(shape.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf("")))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(Celsius(0))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(Flag(false))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(uuid.UUID{})))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// LeafInt
	// LeafString
	// LeafNamedEnum
	// LeafNamedEnum
	// LeafFloat64
	// LeafBool
	// LeafDuration
	// LeafTime
	// LeafUUID
	// LeafEnum(0)
}

func ExampleLeafEnum_IsMapKey() {
	fmt.Println(shape.FromReflectType(reflect.TypeOf("")).IsMapKey())
	fmt.Println(shape.FromReflectType(reflect.TypeOf(uuid.UUID{})).IsMapKey())
	fmt.Println(shape.FromReflectType(reflect.TypeOf(false)).IsMapKey())
	fmt.Println(shape.FromReflectType(reflect.TypeOf(time.Time{})).IsMapKey())
	fmt.Println(shape.FromReflectType(reflect.TypeOf(struct{}{})).IsMapKey())
	// Output:
	// true
	// true
	// false
	// false
	// false
}
