package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// The result is nil if no error was given, the error itself if exactly one
// was given, and a multi error otherwise. Appending to a multi error extends
// it instead of nesting.
func Append(errs ...error) error {
	var res []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(*multiErr); ok {
			res = append(res, m.errs...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return &multiErr{errs: res}
	}
}

type multiErr struct {
	errs []error
}

func (m *multiErr) Error() string {
	msgs := make([]string, len(m.errs))
	for i, e := range m.errs {
		msgs[i] = "* " + e.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m.errs), strings.Join(msgs, "\n\t"))
}

// ABCICode returns the code of the first error, consistent with fail fast
// validation.
func (m *multiErr) ABCICode() uint32 {
	return abciCode(m.errs[0])
}

// Unpack returns all errors contained in this multi error.
func (m *multiErr) Unpack() []error {
	return m.errs
}

type unpacker interface {
	Unpack() []error
}
