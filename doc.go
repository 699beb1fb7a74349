/*
Package weft defines the interfaces that tie together the application,
the middleware and the extensions of a kitty ledger node, along with the
few concrete types (addresses, conditions, results, events) every extension
shares.

Data is passed through context.Context between the app, decorators and
handlers. For every value T the context carries there is a pair of helpers:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (T, bool)

Block level values (header, height, chain id) can only be set once.
*/
package weft
