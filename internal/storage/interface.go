// Package storage provides the key/value persistence adapters the habit store
// writes its serialized collections through.
package storage

import "context"

// Adapter is a string-keyed persistence capability. The habit store reads each
// key once at startup and writes full snapshots on mutation; values are opaque
// serialized bytes.
//
// Get returns (nil, nil) when the key has never been written. Set replaces the
// value wholesale.
type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
