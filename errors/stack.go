package errors

import (
	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the innermost stack trace attached to the error chain,
// or nil if none was recorded.
func stackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	for {
		if s, ok := err.(stackTracer); ok {
			st = s.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return st
		}
		err = c.Cause()
	}
}
