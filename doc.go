/*
Package assetregistry provides a keyed registry of asset records backed
by an authoritative, append-only ledger, fronted by a bounded
write-through cache, with a confidential side-channel store for
per-asset private details.

The registry composes three pieces:
  - codec: the canonical textual encoding of an asset, with
    sanitization of untrusted string fields
  - cache: a bounded, FIFO-evicting, thread-safe cache of encoded
    records
  - ledger: the Gateway interface to the authoritative store, with
    DynamoDB and in-memory implementations

Basic Usage:

	// Construct a registry over a ledger gateway
	gw, _ := ddb.NewGateway(accessKey, secretKey, region, table, "Org1")
	reg := assetregistry.New(gw, assetregistry.WithCacheCapacity(1000))

	// Create and query assets
	err := reg.CreateAsset(ctx, "A1", "alice", "gold", "bar", 10.50)
	encoded, err := reg.QueryAsset(ctx, "A1")

	// Transfer ownership
	err = reg.TransferAsset(ctx, "A1", "carol")

	// Confidential details travel in the transient payload mapping
	err = reg.CreateConfidentialDetails(ctx, "A1", assetregistry.Transient{
	    assetregistry.TransientAssetProperties: []byte(`{"appraisal":12000}`),
	})
	details, err := reg.QueryConfidentialDetails(ctx, "A1")

Failures carry semantic types from the errors package
(errors.IsNotFound, errors.IsAlreadyExists, and so on), so callers can
branch on outcome without string matching.

For more information, see the documentation at https://github.com/suparena/assetregistry
*/
package assetregistry
