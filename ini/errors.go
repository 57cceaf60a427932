// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
)

// IOError is returned when a file cannot be opened, read, created, or written.
type IOError struct {
	Op   string // "open", "read", "create", "write", or "close"
	Path string // empty when reading from or writing to a non-file stream
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError is returned when a line of input cannot be parsed.
type FormatError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// NotFoundError is returned by queries for a section or key that is not
// present.
type NotFoundError struct {
	Section string
	Key     string

	// MissingSection is true if the section itself does not exist.
	MissingSection bool
}

func (e *NotFoundError) Error() string {
	if e.MissingSection {
		return fmt.Sprintf("section not found: %q", e.Section)
	}
	return fmt.Sprintf("key not found: %q in section %q", e.Key, e.Section)
}

// IsNotFound reports whether any error in err's chain is a *NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsFormat reports whether any error in err's chain is a *FormatError.
func IsFormat(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}
