// Package wefttest provides fakes of the weft interfaces for tests:
// authenticators, transactions, handlers and stores.
package wefttest
