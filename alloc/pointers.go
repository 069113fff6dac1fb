package alloc

import (
	"fmt"
	"reflect"
)

// requirePointerFree returns ErrPointerElem if values of T can hold Go
// pointers. Strategies that place elements outside the GC-scanned heap call
// it at construction.
func requirePointerFree[T any]() error {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		return fmt.Errorf("%w: %s", ErrPointerElem, t)
	}
	return nil
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
