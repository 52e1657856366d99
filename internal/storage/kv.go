// Package storage provides the durable key-value blob store backing the plan
// collection. The contract is deliberately tiny; get/set of one string value
// per key; so the plan store can serialize its whole sequence under a single
// key and any backend (memory, file, Postgres) can serve it.
package storage

import "context"

// KV is a durable string-blob store. Get reports ok=false when the key has
// never been set; that is not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
