package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is returned to the client when the transaction or
	// query was processed without a failure.
	SuccessABCICode = 0

	// Failures that do not carry an ABCI code are reported to the client
	// under a single code and a generic message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log that should be used for an ABCI response.
//
// Errors that do not provide an ABCI code are considered internal. Unless
// running in debug mode their message is replaced with a generic one, so that
// no implementation detail leaks to the client.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}

	code := abciCode(err)
	switch {
	case debug:
		// %+v includes the stack trace when one was recorded.
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode unwraps the error until a coder is found.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

// Redact replaces every error that is not rooted in a registered error, and
// every recovered panic, with a generic internal error.
//
// In debug mode the error is returned unchanged.
func Redact(err error, debug bool) error {
	if debug || err == nil {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}

// ABCIError rebuilds an error from the code and log of an ABCI response, so
// that clients can match it with Is. Unknown codes are reported as
// internal errors.
func ABCIError(code uint32, log string) error {
	if code == SuccessABCICode {
		return nil
	}
	if e, ok := usedCodes[code]; ok && e != nil {
		return Wrap(e, log)
	}
	return fmt.Errorf("code %d: %s", code, log)
}
