package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New creates an error with a captured stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, preserving the original chain.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an equivalence mark on err. Marks are only
// visible to Is below, not to the standard library's errors.Is, so every
// sentinel check on a marked error must go through this package.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches target through wrapping or marks.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// ExtractStackLines renders err verbosely and returns at most maxLines
// lines of it, for log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
