package helper

import "reflect"

// IsNil reports whether v is nil or a typed nil of a nillable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if !Nillable(rv.Type()) {
		return false
	}
	return rv.IsNil()
}

// Nillable reports whether values of typ can be nil.
func Nillable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
