package parse

import "reflect"

// NewInstance returns a new instance of T - if T is a pointer type, it points to a new zero value
func NewInstance[T any]() T {
	var target T
	if t := reflect.TypeOf(target); t != nil && t.Kind() == reflect.Ptr {
		return reflect.New(t.Elem()).Interface().(T)
	}
	return target
}
