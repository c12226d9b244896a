package associations

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoTargetSpecified is returned when an association request populates
	// none of its target slots.
	ErrNoTargetSpecified = errors.New("no association target specified")

	// ErrDuplicateAssociation is returned when the storage layer rejects a
	// write because of a uniqueness constraint. The in-memory checks are a
	// fast path only; under concurrent writers the constraint is the real
	// enforcement boundary, and its violations are translated into this
	// error at the repository seam.
	ErrDuplicateAssociation = errors.New("association already exists")

	// ErrPersistenceUnavailable wraps transport or storage failures. It is
	// the only error class a caller may retry, and only when it can tell the
	// previous attempt did not commit.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrAssociationNotFound is returned by the modify operations when the
	// association row itself does not exist.
	ErrAssociationNotFound = errors.New("association not found")
)

// AmbiguousTargetError is returned when two or more target slots are
// populated. It carries the names of every populated slot so callers and
// tests can see which references conflicted.
type AmbiguousTargetError struct {
	Slots []string
}

func (e *AmbiguousTargetError) Error() string {
	return fmt.Sprintf("ambiguous association target: %s", strings.Join(e.Slots, ", "))
}

// TargetNotFoundError is returned when the single populated slot references
// an entity that does not exist. A missing target is a client-input error,
// never retried.
type TargetNotFoundError struct {
	Slot string
	ID   uint
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Slot, e.ID)
}
