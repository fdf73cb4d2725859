package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks identifiers rejected before any lookup runs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable marks a metadata database that is missing or unreadable.
	ErrStoreUnavailable = errors.New("metadata store unavailable")
	// ErrStoreCorrupt marks a metadata database whose ancestor chain exceeded the depth bound.
	ErrStoreCorrupt = errors.New("metadata store corrupt")
	// ErrNotFound is used at the CLI boundary when both resolution strategies miss.
	ErrNotFound = errors.New("not found")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether an error only disables one lookup strategy and
// should trigger the traversal fallback instead of surfacing to the caller.
func Recoverable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrStoreCorrupt)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
