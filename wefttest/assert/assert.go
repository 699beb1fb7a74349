// Package assert provides the few assertions used by weft tests. Each one
// stops the test on failure.
package assert

import (
	"reflect"
	"testing"

	"github.com/kittyverse/weft/errors"
)

// Tester is the subset of testing.TB used by the assertions.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of errors that carry one.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) (isnil bool) {
	if value == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			isnil = false
		}
	}()
	return reflect.ValueOf(value).IsNil()
}

// Equal fails the test if the values are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails the test if fn does not panic.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// IsErr fails the test unless got is of the same kind as want. A nil want
// expects no error.
func IsErr(t Tester, want *errors.Error, got error) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Fatalf("want no error, got %+v", got)
		}
		return
	}
	if !want.Is(got) {
		t.Fatalf("want %q error, got %+v", want, got)
	}
}

// FieldError fails the test unless err holds exactly one error for the
// field, of the kind want. A nil want expects no error for the field.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()
	errs := errors.FieldErrors(err, fieldName)
	if want == nil {
		if len(errs) != 0 {
			t.Fatalf("want no %q error, got %v", fieldName, errs)
		}
		return
	}
	switch len(errs) {
	case 0:
		t.Fatalf("no %q error found in %v", fieldName, err)
	case 1:
		if !want.Is(errs[0]) {
			t.Fatalf("unexpected %q error: %q", fieldName, errs[0])
		}
	default:
		t.Fatalf("want one %q error, got %d: %v", fieldName, len(errs), errs)
	}
}
