package helper

import (
	"fmt"
	"reflect"
)

// TypedValueOf asserts v to the expected type T.
// Returns false if v holds a different dynamic type (or nil).
func TypedValueOf[T any](v any) (res T, ok bool) {
	res, ok = v.(T)
	return
}

// MustTypedValueOf is the panic-on-failure variant of TypedValueOf.
func MustTypedValueOf[T any](v any) T {
	res, ok := TypedValueOf[T](v)
	if !ok {
		panic(fmt.Errorf("unexpected type: %T", v))
	}
	return res
}

// InstanceOf reports whether the dynamic type of v is typ, or implements typ
// when typ is an interface type.
func InstanceOf(v any, typ reflect.Type) bool {
	if v == nil || typ == nil {
		return false
	}
	dyn := reflect.TypeOf(v)
	if typ.Kind() == reflect.Interface {
		return dyn.Implements(typ)
	}
	return dyn == typ
}
