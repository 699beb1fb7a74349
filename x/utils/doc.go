// Package utils provides the decorators every handler stack uses: panic
// recovery, per transaction savepoints and logging.
package utils
