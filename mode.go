// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strglob

import "strconv"

// A Mode controls how the literal text of a pattern is compared to a
// candidate string.
type Mode uint8

const (
	// CaseSensitive compares literal text byte for byte.
	CaseSensitive Mode = iota
	// CaseInsensitive compares literal text using simple Unicode
	// case-folding.
	CaseInsensitive
)

func (m Mode) String() string {
	switch m {
	case CaseSensitive:
		return "CaseSensitive"
	case CaseInsensitive:
		return "CaseInsensitive"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

func (m Mode) fold() bool { return m == CaseInsensitive }
