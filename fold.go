// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package strglob

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var _lower [256]byte

// _asciiSafe reports if an ASCII byte only folds to other ASCII bytes.
// 'K', 'k', 'S' and 's' also fold to Kelvin K (U+212A) and Long S (U+017F)
// and non-ASCII bytes are never safe.
var _asciiSafe [256]bool

func init() {
	for i := range _lower {
		c := byte(i)
		if isUpper(c) {
			c += 'a' - 'A'
		}
		_lower[i] = c
	}
	for i := 0; i < utf8.RuneSelf; i++ {
		switch i {
		case 'K', 'k', 'S', 's':
		default:
			_asciiSafe[i] = true
		}
	}
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isAlpha(c byte) bool { return isUpper(c) || isLower(c) }

// equalRune reports if sr and tr are equal under simple Unicode
// case-folding.
func equalRune(sr, tr rune) bool {
	if sr == tr {
		return true
	}
	// Make sr < tr to simplify what follows.
	if tr < sr {
		tr, sr = sr, tr
	}
	// Fast check for ASCII.
	if tr < utf8.RuneSelf {
		// ASCII only, sr/tr must be upper/lower case
		return 'A' <= sr && sr <= 'Z' && tr == sr+'a'-'A'
	}
	// General case. SimpleFold(x) returns the next equivalent rune > x
	// or wraps around to smaller values.
	r := unicode.SimpleFold(sr)
	for r != sr && r < tr {
		r = unicode.SimpleFold(r)
	}
	return r == tr
}

// hasPrefixFold reports if s begins with prefix ignoring case and returns
// the number of bytes of s that matched prefix. The encoded length of the
// match may differ from len(prefix).
func hasPrefixFold(s, prefix string) (int, bool) {
	// ASCII fast path
	i := 0
	for ; i < len(s) && i < len(prefix); i++ {
		sc := s[i]
		pc := prefix[i]
		if sc|pc >= utf8.RuneSelf {
			goto hasUnicode
		}
		if sc != pc && _lower[sc] != _lower[pc] {
			return 0, false
		}
	}
	if i == len(prefix) {
		return i, true
	}
	return 0, false

hasUnicode:
	n := i
	for _, pr := range prefix[i:] {
		// If s is exhausted the strings are not equal.
		if n == len(s) {
			return 0, false
		}
		var sr rune
		size := 1
		if c := s[n]; c < utf8.RuneSelf {
			sr = rune(c)
		} else {
			sr, size = utf8.DecodeRuneInString(s[n:])
		}
		if !equalRune(sr, pr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// hasSuffixFold reports if s ends with suffix ignoring case and returns the
// offset in s where the match starts.
func hasSuffixFold(s, suffix string) (int, bool) {
	n := len(s)
	for len(suffix) > 0 {
		if n == 0 {
			return 0, false
		}
		sc := s[n-1]
		pc := suffix[len(suffix)-1]
		if sc|pc < utf8.RuneSelf {
			if sc != pc && _lower[sc] != _lower[pc] {
				return 0, false
			}
			n--
			suffix = suffix[:len(suffix)-1]
			continue
		}
		sr, ssize := utf8.DecodeLastRuneInString(s[:n])
		pr, psize := utf8.DecodeLastRuneInString(suffix)
		if !equalRune(sr, pr) {
			return 0, false
		}
		n -= ssize
		suffix = suffix[:len(suffix)-psize]
	}
	return n, true
}

// indexByteFold returns the index of the first instance of c in s ignoring
// ASCII case, or -1. c must be ASCII safe.
func indexByteFold(s string, c byte) int {
	n := strings.IndexByte(s, c)
	if n == 0 || !isAlpha(c) {
		return n
	}

	// TODO: calculate the optimal cutoff
	if n > 0 && len(s) >= 16 {
		s = s[:n] // limit search space
	}

	c ^= ' ' // swap case
	if o := strings.IndexByte(s, c); n == -1 || (o != -1 && o < n) {
		n = o
	}
	return n
}

// hasPrefix is hasPrefixFold when fold is set and strings.HasPrefix
// otherwise.
func hasPrefix(s, prefix string, fold bool) (int, bool) {
	if fold {
		return hasPrefixFold(s, prefix)
	}
	if strings.HasPrefix(s, prefix) {
		return len(prefix), true
	}
	return 0, false
}

func hasSuffix(s, suffix string, fold bool) (int, bool) {
	if fold {
		return hasSuffixFold(s, suffix)
	}
	if strings.HasSuffix(s, suffix) {
		return len(s) - len(suffix), true
	}
	return 0, false
}
