package weft

import (
	"fmt"
)

const (
	// KeyQueryMod returns the value stored under the exact key.
	KeyQueryMod = ""
	// PrefixQueryMod returns every value whose key starts with the data.
	PrefixQueryMod = "prefix"
)

// Model is a key value pair returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler serves ABCI queries for a single path.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister adds handlers to a router.
type QueryRegister func(QueryRouter)

// QueryRouter dispatches queries by path, like http.ServeMux.
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll registers a number of QueryRegister at once.
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register adds a handler for the path. It panics if the path is taken.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering query path: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the handler for the path or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
