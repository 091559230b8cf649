// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strglob

import "strconv"

// Pattern is a compiled wildcard pattern. A Pattern is immutable and safe
// for concurrent use by multiple goroutines.
type Pattern struct {
	pattern string
	segs    []segment
	shape   shape
	mode    Mode
	minLen  int // total length of literal text in bytes
}

// Compile parses a case-sensitive wildcard pattern. The only error it
// returns is a *PatternError for patterns that are not valid UTF-8.
func Compile(pattern string) (*Pattern, error) {
	return compile(pattern, CaseSensitive)
}

// CompileFold parses a wildcard pattern that matches ignoring case.
func CompileFold(pattern string) (*Pattern, error) {
	return compile(pattern, CaseInsensitive)
}

// CompileMode parses a wildcard pattern with the given Mode.
func CompileMode(pattern string, mode Mode) (*Pattern, error) {
	return compile(pattern, mode)
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
// It simplifies safe initialization of global variables holding compiled
// patterns.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(`strglob: Compile(` + quote(pattern) + `): ` + err.Error())
	}
	return p
}

// MustCompileFold is like CompileFold but panics if the pattern cannot be
// parsed.
func MustCompileFold(pattern string) *Pattern {
	p, err := CompileFold(pattern)
	if err != nil {
		panic(`strglob: CompileFold(` + quote(pattern) + `): ` + err.Error())
	}
	return p
}

// Match reports whether s matches the case-sensitive wildcard pattern.
// The only possible returned error is a *PatternError, which wraps
// ErrBadPattern, when pattern is malformed.
func Match(pattern, s string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(s), nil
}

// MatchFold reports whether s matches the wildcard pattern ignoring case.
func MatchFold(pattern, s string) (bool, error) {
	p, err := CompileFold(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(s), nil
}

// Match reports whether s matches p using the Mode p was compiled with.
func (p *Pattern) Match(s string) bool {
	return p.match(s, p.mode.fold())
}

// MatchMode reports whether s matches p using mode instead of the Mode p
// was compiled with.
func (p *Pattern) MatchMode(s string, mode Mode) bool {
	return p.match(s, mode.fold())
}

// Mode returns the Mode p was compiled with.
func (p *Pattern) Mode() Mode { return p.mode }

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string { return p.pattern }

// Filter returns the elements of names that match p, in order. It returns
// nil if none match.
func (p *Pattern) Filter(names []string) []string {
	var matched []string
	fold := p.mode.fold()
	for _, s := range names {
		if p.match(s, fold) {
			matched = append(matched, s)
		}
	}
	return matched
}
