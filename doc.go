// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package strglob implements wildcard pattern matching of strings.
//
// The only metacharacter is '*', which matches any sequence of characters,
// including the empty sequence. Every other character, including '?', '['
// and '\\', is matched literally. Consecutive '*' behave like a single '*'.
//
// Patterns may be compiled once and reused:
//
//	p := strglob.MustCompileFold("*.*.test.cs")
//	p.Match("startling.magic.TEST.cs") // true
//
// or compiled and matched in one step with [Match] (case-sensitive) or
// [MatchFold] (case-insensitive).
//
// Case-insensitive matching uses simple Unicode case-folding, the same
// equivalence used by [strings.EqualFold].
//
// A compiled [Pattern] is immutable and safe for concurrent use.
package strglob

// BUG(cvieth): There is no mechanism for full case folding, that is, for
// characters that involve multiple runes in the input or output
// (see: https://pkg.go.dev/unicode#pkg-note-BUG).
