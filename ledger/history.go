/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ledger

import (
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
)

// HistoryEntry is one append-only record of a key's past values.
type HistoryEntry struct {
	// TxID identifies the write that produced this entry.
	TxID string `json:"txId"`

	// Timestamp is when the write was recorded.
	// Format: date-time
	Timestamp strfmt.DateTime `json:"timestamp"`

	// Value is the encoded record as written.
	Value string `json:"value"`
}

// String renders the entry in the registry's history text form.
func (h HistoryEntry) String() string {
	return fmt.Sprintf(`{"txId":"%s","timestamp":"%s","value":%s}`,
		h.TxID, h.Timestamp.String(), h.Value)
}

// FormatHistory renders a history stream as a JSON-array text, oldest
// entry first.
func FormatHistory(entries []HistoryEntry) string {
	if len(entries) == 0 {
		return "[]"
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}
