// Package hamlet is a tiny "to be, or not to be" assertion helper for
// package tests. Specifications returns a positive and a negative
// expectation pair bound to the same test.
package hamlet

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type Hamlet struct {
	t        testing.TB
	positive bool
}

func Specifications(t testing.TB) (Hamlet, Hamlet) {
	return Hamlet{t: t, positive: true}, Hamlet{t: t, positive: false}
}

func (it Hamlet) verdict() string {
	if it.positive {
		return "must"
	}
	return "must not"
}

func (it Hamlet) check(outcome bool, form string, details ...interface{}) {
	it.t.Helper()
	if outcome != it.positive {
		it.t.Fatalf("Expectation ("+it.verdict()+") failed: "+form, details...)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}

func (it Hamlet) Nil(actual interface{}) {
	it.t.Helper()
	it.check(isNil(actual), "be nil, actual: %#v", actual)
}

func (it Hamlet) True(actual bool) {
	it.t.Helper()
	it.check(actual, "be true")
}

func (it Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	it.check(reflect.DeepEqual(expected, actual), "equal, expected: %#v, actual: %#v", expected, actual)
}

func (it Hamlet) Length(expected int, actual interface{}) {
	it.t.Helper()
	size := reflect.ValueOf(actual).Len()
	it.check(size == expected, "have length %d, actual: %d", expected, size)
}

func (it Hamlet) Contains(text, fragment string) {
	it.t.Helper()
	it.check(strings.Contains(text, fragment), "contain %q in:\n%s", fragment, text)
}

func (it Hamlet) ErrorIs(target, actual error) {
	it.t.Helper()
	it.check(errors.Is(actual, target), "be error %v, actual: %v", target, actual)
}

func (it Hamlet) Panic(todo func()) {
	it.t.Helper()
	panicked := func() (flag bool) {
		defer func() {
			flag = recover() != nil
		}()
		todo()
		return false
	}()
	it.check(panicked, "panic")
}
