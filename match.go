// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strglob

import (
	"strings"
	"unicode/utf8"
)

func (p *Pattern) match(s string, fold bool) bool {
	// Case-folded runes may be encoded with a different number of bytes
	// so the length check only applies to exact matching.
	if !fold && len(s) < p.minLen {
		return false
	}
	segs := p.segs
	switch p.shape {
	case shapeAny:
		return true
	case shapeExact:
		if len(segs) == 0 {
			return len(s) == 0
		}
		if fold {
			return strings.EqualFold(s, segs[0].text)
		}
		return s == segs[0].text
	case shapePrefix:
		_, ok := hasPrefix(s, segs[0].text, fold)
		return ok
	case shapeSuffix:
		_, ok := hasSuffix(s, segs[1].text, fold)
		return ok
	case shapePrefixSuffix:
		n, ok := hasPrefix(s, segs[0].text, fold)
		if !ok {
			return false
		}
		_, ok = hasSuffix(s[n:], segs[2].text, fold)
		return ok
	}
	return matchSegments(segs, s, fold)
}

// matchSegments walks segs and s in step. When a literal fails to align the
// most recent wildcard absorbs one more rune of s and the walk resumes after
// that wildcard. Only the most recent wildcard needs to be retried since
// any match that stretches an earlier wildcard can be reproduced by the
// later one, which bounds the work to O(len(segs) * len(s)).
func matchSegments(segs []segment, s string, fold bool) bool {
	si := 0     // segment index
	ci := 0     // offset in s
	star := -1  // index of the last wildcard seen
	resume := 0 // offset in s where the wildcard's match ends
	for {
		if si < len(segs) {
			seg := &segs[si]
			if seg.kind == wildcard {
				if si == len(segs)-1 {
					return true // trailing wildcard consumes the remainder
				}
				star, resume = si, ci
				si++
				continue
			}
			if n, ok := hasPrefix(s[ci:], seg.text, fold); ok {
				si++
				ci += n
				continue
			}
		} else if ci == len(s) {
			return true
		}

		// Mismatch: stretch the last wildcard.
		if star < 0 || resume >= len(s) {
			return false
		}
		next := segs[star+1].text
		if n := skip(s[resume:], next, fold); n >= 0 {
			resume += n
		} else {
			return false
		}
		si = star + 1
		ci = resume
	}
}

// skip returns the number of bytes the wildcard must absorb, at least one
// rune of s, before the literal next could match in s or -1 if next cannot
// match anywhere after the first rune of s.
func skip(s, next string, fold bool) int {
	size := 1
	if s[0] >= utf8.RuneSelf {
		_, size = utf8.DecodeRuneInString(s)
	}
	if !fold {
		if i := strings.Index(s[size:], next); i >= 0 {
			return size + i
		}
		return -1
	}
	if c := next[0]; _asciiSafe[c] {
		// The first byte of next only folds to ASCII so it
		// can be searched for directly.
		if i := indexByteFold(s[size:], c); i >= 0 {
			return size + i
		}
		return -1
	}
	return size
}
