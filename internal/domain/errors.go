package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	return "invalid data: " + strings.Join(parts, "; ")
}

// NotificationError wraps a failed attempt to relay a submission by email.
type NotificationError struct {
	SenderID int64
	Err      error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification for sender %d failed: %v", e.SenderID, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
