// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytglob implements wildcard pattern matching of byte slices.
//
// It has the same API and semantics as package strglob with []byte in place
// of string.
package bytglob

import (
	"strconv"
	"strings"
	"unsafe"

	"github.com/charlievieth/strglob"
)

// A Mode controls how the literal text of a pattern is compared.
type Mode = strglob.Mode

const (
	CaseSensitive   = strglob.CaseSensitive
	CaseInsensitive = strglob.CaseInsensitive
)

// ErrBadPattern indicates a pattern was malformed.
var ErrBadPattern = strglob.ErrBadPattern

// A PatternError describes a pattern that failed to compile.
type PatternError = strglob.PatternError

// Pattern is a compiled wildcard pattern. A Pattern is immutable and safe
// for concurrent use by multiple goroutines.
type Pattern struct {
	p *strglob.Pattern
}

// unsafeString returns a string that shares memory with b. The string must
// not outlive the call it is passed to.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// cloneError detaches a *PatternError from the memory of the pattern it was
// created from.
func cloneError(err error) error {
	if pe, ok := err.(*PatternError); ok {
		e := *pe
		e.Pattern = strings.Clone(e.Pattern)
		return &e
	}
	return err
}

func compile(pattern []byte, mode strglob.Mode) (*Pattern, error) {
	// Copy: the compiled pattern retains its source text.
	p, err := strglob.CompileMode(string(pattern), mode)
	if err != nil {
		return nil, err
	}
	return &Pattern{p: p}, nil
}

// Compile parses a case-sensitive wildcard pattern.
func Compile(pattern []byte) (*Pattern, error) {
	return compile(pattern, strglob.CaseSensitive)
}

// CompileFold parses a wildcard pattern that matches ignoring case.
func CompileFold(pattern []byte) (*Pattern, error) {
	return compile(pattern, strglob.CaseInsensitive)
}

// CompileMode parses a wildcard pattern with the given Mode.
func CompileMode(pattern []byte, mode Mode) (*Pattern, error) {
	return compile(pattern, mode)
}

func quote(b []byte) string {
	s := string(b)
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern []byte) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(`bytglob: Compile(` + quote(pattern) + `): ` + err.Error())
	}
	return p
}

// MustCompileFold is like CompileFold but panics if the pattern cannot be
// parsed.
func MustCompileFold(pattern []byte) *Pattern {
	p, err := CompileFold(pattern)
	if err != nil {
		panic(`bytglob: CompileFold(` + quote(pattern) + `): ` + err.Error())
	}
	return p
}

// Match reports whether b matches the case-sensitive wildcard pattern.
func Match(pattern, b []byte) (bool, error) {
	ok, err := strglob.Match(unsafeString(pattern), unsafeString(b))
	if err != nil {
		return false, cloneError(err)
	}
	return ok, nil
}

// MatchFold reports whether b matches the wildcard pattern ignoring case.
func MatchFold(pattern, b []byte) (bool, error) {
	ok, err := strglob.MatchFold(unsafeString(pattern), unsafeString(b))
	if err != nil {
		return false, cloneError(err)
	}
	return ok, nil
}

// Match reports whether b matches p using the Mode p was compiled with.
func (p *Pattern) Match(b []byte) bool {
	return p.p.Match(unsafeString(b))
}

// MatchMode reports whether b matches p using mode.
func (p *Pattern) MatchMode(b []byte, mode Mode) bool {
	return p.p.MatchMode(unsafeString(b), mode)
}

// Mode returns the Mode p was compiled with.
func (p *Pattern) Mode() Mode { return p.p.Mode() }

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string { return p.p.String() }

// Filter returns the elements of names that match p, in order. The
// returned slices alias the elements of names.
func (p *Pattern) Filter(names [][]byte) [][]byte {
	var matched [][]byte
	for _, b := range names {
		if p.p.Match(unsafeString(b)) {
			matched = append(matched, b)
		}
	}
	return matched
}
