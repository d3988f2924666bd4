package repo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation names an item id that is not in
// the collection. No state changes.
var ErrNotFound = errors.New("item not found")

// ErrNotDurable is returned (wrapped) when an operation succeeded in memory
// but the persistence write failed. The collection still reflects the change
// and the app keeps working against it; the change may not survive a restart.
var ErrNotDurable = errors.New("change applied in memory but not persisted")

// ValidationError reports invalid input. The operation is rejected before
// any state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
