/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ledger

import (
	"context"
)

// Gateway is the registry's view of the authoritative ledger: a durable
// key-value store with an append-only per-key history and a named
// confidential side-store. The registry consumes this interface; it
// never implements the underlying commit or transport machinery.
type Gateway interface {
	// GetState returns the current value for key, or "" when the key
	// has never been written.
	GetState(ctx context.Context, key string) (string, error)

	// PutState writes the current value for key. Every successful write
	// also appends an entry to the key's history; that append is a
	// property of the ledger, not of the caller.
	PutState(ctx context.Context, key, value string) error

	// GetHistory returns the append-only history for key, oldest first.
	// The returned slice is a single pass over the log.
	GetHistory(ctx context.Context, key string) ([]HistoryEntry, error)

	// GetPrivate reads a value from the named confidential collection,
	// or nil when absent.
	GetPrivate(ctx context.Context, collection, key string) ([]byte, error)

	// PutPrivate writes a value into the named confidential collection.
	PutPrivate(ctx context.Context, collection, key string, value []byte) error

	// CallerID identifies the organization behind the current
	// invocation. Access enforcement on confidential collections is the
	// gateway's concern; the registry only records the identity.
	CallerID(ctx context.Context) (string, error)
}
