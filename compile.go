// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strglob

import (
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"
)

// WARN: DEV ONLY
const debug = false

var logger = newLogger()

func newLogger() *log.Logger {
	var w io.Writer = io.Discard
	if debug {
		w = os.Stderr
	}
	return log.New(w, "strglob: ", log.Lshortfile)
}

type segmentKind uint8

const (
	literal  segmentKind = iota // run of literal text
	wildcard                    // '*'
)

func (k segmentKind) String() string {
	switch k {
	case literal:
		return "literal"
	case wildcard:
		return "wildcard"
	}
	return "invalid"
}

type segment struct {
	kind segmentKind
	text string // only set for literal segments
}

// shape is the overall form of a compiled pattern. All shapes except
// shapeGeneral are matched without running the backtracking matcher.
type shape uint8

const (
	shapeExact        shape = iota // "abc" or ""
	shapeAny                       // "*"
	shapePrefix                    // "abc*"
	shapeSuffix                    // "*abc"
	shapePrefixSuffix              // "abc*xyz"
	shapeGeneral                   // everything else: "*a*", "a*b*c", ...
)

var shapeNames = [...]string{
	shapeExact:        "exact",
	shapeAny:          "any",
	shapePrefix:       "prefix",
	shapeSuffix:       "suffix",
	shapePrefixSuffix: "prefix-suffix",
	shapeGeneral:      "general",
}

func (s shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "invalid"
}

// invalidUTF8 returns the offset of the first invalid UTF-8 sequence in s
// or -1 if s is valid.
func invalidUTF8(s string) int {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// parseSegments splits pattern into literal and wildcard segments.
// Consecutive wildcards are collapsed into one.
func parseSegments(pattern string) []segment {
	n := strings.Count(pattern, "*")
	segs := make([]segment, 0, 2*n+1)
	for len(pattern) > 0 {
		i := strings.IndexByte(pattern, '*')
		if i < 0 {
			segs = append(segs, segment{kind: literal, text: pattern})
			break
		}
		if i > 0 {
			segs = append(segs, segment{kind: literal, text: pattern[:i]})
		}
		if len(segs) == 0 || segs[len(segs)-1].kind != wildcard {
			segs = append(segs, segment{kind: wildcard})
		}
		pattern = pattern[i+1:]
	}
	return segs
}

func classify(segs []segment) shape {
	switch len(segs) {
	case 0:
		return shapeExact
	case 1:
		if segs[0].kind == wildcard {
			return shapeAny
		}
		return shapeExact
	case 2:
		if segs[0].kind == wildcard {
			return shapeSuffix
		}
		return shapePrefix
	case 3:
		if segs[0].kind == literal {
			return shapePrefixSuffix
		}
	}
	return shapeGeneral
}

func compile(pattern string, mode Mode) (*Pattern, error) {
	if i := invalidUTF8(pattern); i >= 0 {
		return nil, &PatternError{
			Pattern: pattern,
			Offset:  i,
			Reason:  "invalid UTF-8",
		}
	}
	segs := parseSegments(pattern)
	p := &Pattern{
		pattern: pattern,
		segs:    segs,
		shape:   classify(segs),
		mode:    mode,
	}
	for _, s := range segs {
		p.minLen += len(s.text)
	}
	if debug {
		logger.Printf("compile %q: mode=%s shape=%s segments=%d",
			pattern, mode, p.shape, len(segs))
	}
	return p, nil
}
