/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package assetregistry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/suparena/assetregistry/cache"
	"github.com/suparena/assetregistry/codec"
	"github.com/suparena/assetregistry/errors"
	"github.com/suparena/assetregistry/ledger"
)

const (
	// DefaultPrivateCollection names the confidential side-collection
	// that holds per-asset details off the main ledger keyspace.
	DefaultPrivateCollection = "assetPrivateDetails"

	// TransientAssetProperties is the transient payload entry carrying
	// confidential details into CreateConfidentialDetails.
	TransientAssetProperties = "asset_properties"

	assetKind = "Asset"
)

// Transient is the mapping of named byte payloads attached to a single
// invocation. Confidential details arrive through it rather than
// through operation arguments, so they never appear on the ledger.
type Transient map[string][]byte

// Registry orchestrates asset operations across the bounded cache, the
// record codec and the authoritative ledger gateway. Reads consult the
// cache first and fall back to the ledger; mutations write the ledger
// first and only then update the cache.
type Registry struct {
	gateway    ledger.Gateway
	cache      *cache.Cache
	collection string
	logger     *slog.Logger
}

// Option is a functional option that configures a Registry during
// construction.
type Option func(*Registry)

// WithCache supplies an externally owned cache instance.
func WithCache(c *cache.Cache) Option {
	return func(r *Registry) {
		r.cache = c
	}
}

// WithCacheCapacity bounds the registry's own cache to n entries.
// Ignored when WithCache supplies an instance.
func WithCacheCapacity(n int) Option {
	return func(r *Registry) {
		if r.cache == nil {
			r.cache = cache.New(n)
		}
	}
}

// WithCollection overrides the confidential collection name.
func WithCollection(name string) Option {
	return func(r *Registry) {
		if name != "" {
			r.collection = name
		}
	}
}

// WithLogger sets the logger used for operational and audit events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New constructs a Registry over the given ledger gateway.
func New(gw ledger.Gateway, opts ...Option) *Registry {
	r := &Registry{
		gateway:    gw,
		collection: DefaultPrivateCollection,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = cache.New(cache.DefaultCapacity)
	}
	return r
}

// InitLedger marks the registry ready. It writes no state.
func (r *Registry) InitLedger(ctx context.Context) error {
	r.logger.Info("registry initialized")
	return nil
}

// CreateAsset registers a new asset. The id must be unknown to both the
// cache and the ledger; id, owner and assetType must be non-blank. The
// description may be empty. A successful create writes the ledger and
// then populates the cache with the encoded record.
func (r *Registry) CreateAsset(ctx context.Context, id, owner, assetType, description string, value float64) error {
	if err := requireNonBlank("assetId", id); err != nil {
		return err
	}
	if err := requireNonBlank("owner", owner); err != nil {
		return err
	}
	if err := requireNonBlank("assetType", assetType); err != nil {
		return err
	}

	existing, err := r.readState(ctx, id)
	if err != nil {
		return errors.NewOperationError("existence check", id, err)
	}
	if existing != "" {
		return errors.NewAlreadyExistsError(assetKind, id)
	}

	asset := codec.Asset{
		ID:          id,
		Owner:       owner,
		AssetType:   assetType,
		Description: description,
		Value:       value,
	}
	encoded := codec.Encode(asset)

	if err := r.gateway.PutState(ctx, id, encoded); err != nil {
		return errors.NewOperationError("ledger write", id, err)
	}
	r.cache.Put(id, encoded)

	r.logger.Info("asset created", "assetId", id, "owner", asset.Owner)
	return nil
}

// QueryAsset returns the canonical encoded record for id.
func (r *Registry) QueryAsset(ctx context.Context, id string) (string, error) {
	if err := requireNonBlank("assetId", id); err != nil {
		return "", err
	}

	encoded, err := r.readState(ctx, id)
	if err != nil {
		return "", errors.NewOperationError("ledger read", id, err)
	}
	if encoded == "" {
		return "", errors.NewNotFoundError(assetKind, id)
	}
	return encoded, nil
}

// TransferAsset moves the asset to a new owner. The new owner record is
// written to the ledger before the cache is updated, so a crash between
// the two leaves the cache stale but the ledger authoritative.
//
// The read-decode-write sequence is not atomic across the ledger: two
// concurrent transfers of the same id can both read the same prior
// state and one overwrite the other's update. Callers needing stronger
// guarantees must serialize transfers per id themselves.
func (r *Registry) TransferAsset(ctx context.Context, id, newOwner string) error {
	if err := requireNonBlank("assetId", id); err != nil {
		return err
	}
	if err := requireNonBlank("newOwner", newOwner); err != nil {
		return err
	}

	encoded, err := r.readState(ctx, id)
	if err != nil {
		return errors.NewOperationError("ledger read", id, err)
	}
	if encoded == "" {
		return errors.NewNotFoundError(assetKind, id)
	}

	asset, err := codec.Decode(encoded)
	if err != nil {
		return err
	}
	oldOwner := asset.Owner
	asset.Owner = newOwner

	updated := codec.Encode(asset)
	if err := r.gateway.PutState(ctx, id, updated); err != nil {
		return errors.NewOperationError("ledger write", id, err)
	}
	r.cache.Put(id, updated)

	// Best-effort invalidation of a per-owner derived key. The registry
	// only caches direct asset ids, so this is a no-op unless such a
	// key exists; the cost of always issuing it is negligible.
	r.cache.Invalidate(oldOwner + "_assets")

	r.logger.Info("asset transferred", "assetId", id, "from", oldOwner, "to", codec.Sanitize(newOwner))
	return nil
}

// CreateConfidentialDetails stores the confidential payload supplied in
// the invocation's transient mapping under the registry's private
// collection, keyed by asset id. Confidential details are never cached.
func (r *Registry) CreateConfidentialDetails(ctx context.Context, id string, transient Transient) error {
	if err := requireNonBlank("assetId", id); err != nil {
		return err
	}

	payload, ok := transient[TransientAssetProperties]
	if !ok || len(payload) == 0 {
		return errors.NewPrivateDataError("write", id,
			fmt.Errorf("transient payload %q missing or empty", TransientAssetProperties))
	}

	if err := r.gateway.PutPrivate(ctx, r.collection, id, payload); err != nil {
		return errors.NewPrivateDataError("write", id, err)
	}

	r.logger.Info("confidential details stored", "assetId", id)
	return nil
}

// QueryConfidentialDetails returns the confidential payload for id. The
// calling organization is resolved and logged for audit; enforcement of
// collection access policy is the gateway's concern.
func (r *Registry) QueryConfidentialDetails(ctx context.Context, id string) ([]byte, error) {
	if err := requireNonBlank("assetId", id); err != nil {
		return nil, err
	}

	org, err := r.gateway.CallerID(ctx)
	if err != nil {
		return nil, errors.NewPrivateDataError("read", id, err)
	}
	r.logger.Info("confidential details access", "assetId", id, "org", org)

	payload, err := r.gateway.GetPrivate(ctx, r.collection, id)
	if err != nil {
		return nil, errors.NewPrivateDataError("read", id, err)
	}
	if len(payload) == 0 {
		return nil, errors.NewNotFoundError("confidential details", id)
	}
	return payload, nil
}

// AssetHistory returns the ledger's append-only history for id as a
// JSON-array text, oldest entry first.
func (r *Registry) AssetHistory(ctx context.Context, id string) (string, error) {
	if err := requireNonBlank("assetId", id); err != nil {
		return "", err
	}

	entries, err := r.gateway.GetHistory(ctx, id)
	if err != nil {
		return "", errors.NewOperationError("history retrieval", id, err)
	}
	return ledger.FormatHistory(entries), nil
}

// readState is the shared read path: cache first, ledger on miss, with
// repopulation of the cache when the ledger has a value. "" means the
// key is unknown everywhere the registry can see.
func (r *Registry) readState(ctx context.Context, id string) (string, error) {
	if value, ok := r.cache.Get(id); ok {
		r.logger.Debug("cache hit", "key", id)
		return value, nil
	}
	r.logger.Debug("cache miss", "key", id)

	value, err := r.gateway.GetState(ctx, id)
	if err != nil {
		return "", err
	}
	if value != "" {
		r.cache.Put(id, value)
	}
	return value, nil
}

func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationError(field, "must not be blank")
	}
	return nil
}
