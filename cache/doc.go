/*
Package cache provides the bounded in-process cache that fronts the
registry's ledger reads.

The cache maps string keys to encoded record text, holds at most a
fixed number of entries, and evicts in insertion order (FIFO) rather
than access order. FIFO avoids per-read bookkeeping while still
bounding memory; the registry's dominant access pattern is
create-then-immediately-query-or-transfer, where insertion recency
already approximates use recency.

The cache is a pure performance layer. It is never persisted, holds no
authority, and is rebuilt lazily from the ledger after a restart.
*/
package cache
