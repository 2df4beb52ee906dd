package terminal

import "errors"

// Error classes surfaced by this package. All of them are unrecoverable at
// the point they are detected; callers propagate them to a single top-level
// handler that clears the screen, prints the diagnostic, and exits non-zero.
// Read timeouts are not errors and never appear here.
var (
	// ErrNotTerminal is returned when stdin is not attached to a tty.
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrAttrQuery is returned when the terminal attribute query fails.
	ErrAttrQuery = errors.New("terminal attribute query failed")

	// ErrAttrRestore is returned when reapplying the original attributes
	// fails. The terminal may be left unusable; callers report to stderr
	// and terminate.
	ErrAttrRestore = errors.New("terminal attribute restore failed")

	// ErrWinSize is returned when the window size ioctl fails or the
	// terminal reports zero columns.
	ErrWinSize = errors.New("window size query failed")

	// ErrRead is returned on a hard input read failure.
	ErrRead = errors.New("input read failed")
)
