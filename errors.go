// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strglob

import (
	"errors"
	"strconv"
)

// ErrBadPattern indicates a pattern was malformed.
var ErrBadPattern = errors.New("syntax error in pattern")

// A PatternError describes a pattern that failed to compile.
type PatternError struct {
	Pattern string // the pattern that failed to compile
	Offset  int    // byte offset of the offending input
	Reason  string // description of the problem
}

func (e *PatternError) Error() string {
	return "strglob: " + e.Reason + " at offset " + strconv.Itoa(e.Offset) +
		" in pattern: " + strconv.Quote(e.Pattern)
}

// Unwrap returns ErrBadPattern.
func (e *PatternError) Unwrap() error { return ErrBadPattern }
