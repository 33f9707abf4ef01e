package seqs

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	"github.com/on-the-ground/utilities_go/internal/helper"
)

var ErrNotAssignable = errors.New("type not assignable to element type")

// OfType keeps the elements whose dynamic type is T, or implements T when T is
// an interface.
func OfType[T, E any](seq iter.Seq[E]) iter.Seq[T] {
	seq = OrEmpty(seq)
	return func(yield func(T) bool) {
		for v := range seq {
			t, ok := helper.TypedValueOf[T](any(v))
			if ok && !yield(t) {
				return
			}
		}
	}
}

// OfTypes keeps the elements that are instances of any of types. Every type
// must be assignable to E.
func OfTypes[E any](seq iter.Seq[E], types ...reflect.Type) (iter.Seq[E], error) {
	elem := reflect.TypeFor[E]()
	for _, typ := range types {
		if typ == nil || !typ.AssignableTo(elem) {
			return nil, fmt.Errorf("%w: %v to %v", ErrNotAssignable, typ, elem)
		}
	}
	seq = OrEmpty(seq)
	return func(yield func(E) bool) {
		for v := range seq {
			for _, typ := range types {
				if helper.InstanceOf(v, typ) {
					if !yield(v) {
						return
					}
					break
				}
			}
		}
	}, nil
}
