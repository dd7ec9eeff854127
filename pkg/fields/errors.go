package fields

import "errors"

// Sentinel errors reported by field mutation. Callers discriminate with
// errors.Is; every failing call leaves the field's state unchanged.
var (
	// ErrValueNotFound reports a candidate value that matches neither an
	// option value nor an option label.
	ErrValueNotFound = errors.New("fields: value matches no option or label")

	// ErrUnsupportedValue reports a file value that is neither a reader
	// nor a filesystem path.
	ErrUnsupportedValue = errors.New("fields: value must be an io.Reader or a file path")

	// ErrDuplicateSelection reports an Append of an already selected option.
	ErrDuplicateSelection = errors.New("fields: option already selected")

	// ErrNotSelected reports a Remove of an option that is not selected.
	ErrNotSelected = errors.New("fields: option not selected")
)
