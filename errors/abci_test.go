package errors

import (
	stdlib "errors"
	"fmt"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"no error": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"registered error": {
			err:      Wrap(ErrUnauthorized, "kitty 2"),
			wantCode: ErrUnauthorized.ABCICode(),
			wantLog:  "kitty 2: unauthorized",
		},
		"stdlib error is redacted": {
			err:      stdlib.New("disk on fire"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"stdlib error in debug mode": {
			err:      stdlib.New("disk on fire"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "disk on fire",
		},
		"wrapped stdlib error": {
			err:      Wrap(fmt.Errorf("io"), "read"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want code %d, got %d", tc.wantCode, code)
			}
			if tc.debug {
				// Debug log may carry a stack trace.
				if len(log) < len(tc.wantLog) || log[:len(tc.wantLog)] != tc.wantLog {
					t.Errorf("want log prefix %q, got %q", tc.wantLog, log)
				}
				return
			}
			if log != tc.wantLog {
				t.Errorf("want log %q, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrNotFound, false); err != ErrNotFound {
		t.Fatalf("registered error must not be redacted: %v", err)
	}
	if err := Redact(Wrap(ErrPanic, "secret"), false); err.Error() != internalABCILog {
		t.Fatalf("panic must be redacted: %v", err)
	}
	if err := Redact(stdlib.New("secret"), true); err.Error() != "secret" {
		t.Fatalf("debug mode must not redact: %v", err)
	}
}

func TestABCIError(t *testing.T) {
	if err := ABCIError(SuccessABCICode, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ABCIError(ErrNotFound.ABCICode(), "kitty 7")
	if !ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %v", err)
	}
	code, log := ABCIInfo(err, false)
	if code != ErrNotFound.ABCICode() {
		t.Fatalf("want code %d, got %d", ErrNotFound.ABCICode(), code)
	}
	if log != "kitty 7: not found" {
		t.Fatalf("unexpected log %q", log)
	}
	if err := ABCIError(987654, "boom"); ErrNotFound.Is(err) || err == nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
