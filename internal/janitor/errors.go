// Package janitor holds the shared error markers used to classify failures
// across subcommands.
package janitor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRootNotFound marks an inaccessible scan root; the operation aborts
	// before any work is attempted.
	ErrRootNotFound = errors.New("root not accessible")
	// ErrValidation marks operator input that cannot be used.
	ErrValidation = errors.New("validation error")
	// ErrCollision marks a refused move because the destination exists.
	ErrCollision = errors.New("destination exists")
)

// Wrap builds an error message carrying operation context while tagging it
// with the provided marker for later classification via errors.Is.
func Wrap(marker error, op, detail string, err error) error {
	parts := make([]string, 0, 2)
	if op = strings.TrimSpace(op); op != "" {
		parts = append(parts, op)
	}
	if detail = strings.TrimSpace(detail); detail != "" {
		parts = append(parts, detail)
	}
	msg := strings.Join(parts, ": ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, msg, err)
	}
	return fmt.Errorf("%w: %s", marker, msg)
}
