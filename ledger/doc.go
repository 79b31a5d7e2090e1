/*
Package ledger defines the interfaces for the registry's authoritative
storage layer.

The main interface is Gateway, which the registry consumes for every
durable read and write:

	type Gateway interface {
	    GetState(ctx context.Context, key string) (string, error)
	    PutState(ctx context.Context, key, value string) error
	    GetHistory(ctx context.Context, key string) ([]HistoryEntry, error)
	    GetPrivate(ctx context.Context, collection, key string) ([]byte, error)
	    PutPrivate(ctx context.Context, collection, key string, value []byte) error
	    CallerID(ctx context.Context) (string, error)
	}

Implementations:
  - ddb: DynamoDB implementation using a single-table key scheme
  - mock: In-memory implementation for testing

Absence is reported in-band: GetState returns "" and GetPrivate returns
nil for keys that were never written. Errors are reserved for actual
gateway failures.
*/
package ledger
