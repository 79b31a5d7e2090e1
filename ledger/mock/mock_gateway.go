/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the ledger
// Gateway interface for testing
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/assetregistry/ledger"
)

// Gateway is a mock implementation of ledger.Gateway for testing
type Gateway struct {
	mu           sync.RWMutex
	state        map[string]string
	history      map[string][]ledger.HistoryEntry
	private      map[string][]byte // keyed by collection + "/" + key
	caller       string
	txSeq        int
	getError     error
	putError     error
	historyError error
	privateError error
	callerError  error
}

// New creates a new mock Gateway
func New() *Gateway {
	return &Gateway{
		state:   make(map[string]string),
		history: make(map[string][]ledger.HistoryEntry),
		private: make(map[string][]byte),
		caller:  "Org1",
	}
}

// WithCaller sets the organization identity reported by CallerID
func (m *Gateway) WithCaller(org string) *Gateway {
	m.caller = org
	return m
}

// WithGetError makes GetState operations return an error
func (m *Gateway) WithGetError(err error) *Gateway {
	m.getError = err
	return m
}

// WithPutError makes PutState operations return an error
func (m *Gateway) WithPutError(err error) *Gateway {
	m.putError = err
	return m
}

// WithHistoryError makes GetHistory operations return an error
func (m *Gateway) WithHistoryError(err error) *Gateway {
	m.historyError = err
	return m
}

// WithPrivateError makes GetPrivate and PutPrivate operations return an error
func (m *Gateway) WithPrivateError(err error) *Gateway {
	m.privateError = err
	return m
}

// WithCallerError makes CallerID return an error
func (m *Gateway) WithCallerError(err error) *Gateway {
	m.callerError = err
	return m
}

// GetState returns the current value for key, "" when absent
func (m *Gateway) GetState(ctx context.Context, key string) (string, error) {
	if m.getError != nil {
		return "", m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state[key], nil
}

// PutState writes the current value and appends a history entry,
// mirroring the append-on-write property of the real ledger
func (m *Gateway) PutState(ctx context.Context, key, value string) error {
	if m.putError != nil {
		return m.putError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state[key] = value
	m.txSeq++
	m.history[key] = append(m.history[key], ledger.HistoryEntry{
		TxID:      fmt.Sprintf("tx-%d", m.txSeq),
		Timestamp: strfmt.DateTime(time.Now().UTC()),
		Value:     value,
	})
	return nil
}

// GetHistory returns the appended history for key, oldest first
func (m *Gateway) GetHistory(ctx context.Context, key string) ([]ledger.HistoryEntry, error) {
	if m.historyError != nil {
		return nil, m.historyError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]ledger.HistoryEntry, len(m.history[key]))
	copy(entries, m.history[key])
	return entries, nil
}

// GetPrivate reads from the named confidential collection, nil when absent
func (m *Gateway) GetPrivate(ctx context.Context, collection, key string) ([]byte, error) {
	if m.privateError != nil {
		return nil, m.privateError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.private[collection+"/"+key]
	if !exists {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// PutPrivate writes into the named confidential collection
func (m *Gateway) PutPrivate(ctx context.Context, collection, key string, value []byte) error {
	if m.privateError != nil {
		return m.privateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.private[collection+"/"+key] = stored
	return nil
}

// CallerID returns the configured organization identity
func (m *Gateway) CallerID(ctx context.Context) (string, error) {
	if m.callerError != nil {
		return "", m.callerError
	}
	return m.caller, nil
}

// Helper methods for testing

// SetState directly sets a current value without appending history (for testing)
func (m *Gateway) SetState(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state[key] = value
}

// StateCount returns the number of stored current values
func (m *Gateway) StateCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.state)
}

// HistoryLen returns the number of history entries appended for key
func (m *Gateway) HistoryLen(key string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.history[key])
}

// Clear removes all state, history and private data
func (m *Gateway) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = make(map[string]string)
	m.history = make(map[string][]ledger.HistoryEntry)
	m.private = make(map[string][]byte)
}
