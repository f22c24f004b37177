// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound signals a missing upstream resource when the endpoint does
	// not pin down which one. Store paths narrow it where they can.
	ErrNotFound = errors.New("not found")
	// ErrTransactionNotFound signals a missing transaction in the upstream store.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAssigneeNotFound signals that the target user does not exist upstream.
	ErrAssigneeNotFound = errors.New("assignee not found")
	// ErrStoreUnavailable signals a transient failure talking to the upstream store.
	// Callers may retry; this layer never retries on its own.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries the upstream store's field-keyed rejection reasons
// verbatim. The reassignment role check lives upstream; its message must reach
// the caller untouched so it can be shown as-is.
type ValidationError struct {
	Fields map[string][]string
}

// Error renders fields in a stable order.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation rejected"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "validation rejected: " + strings.Join(parts, ", ")
}

// Field returns the messages recorded for one field, nil if absent.
func (e *ValidationError) Field(name string) []string {
	if e == nil {
		return nil
	}
	return e.Fields[name]
}
