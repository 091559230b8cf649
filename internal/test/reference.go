package test

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// MatchReference is a dynamic programming implementation of wildcard
// matching. It is slow but simple enough to be obviously correct and is
// used to validate the test cases and the results of the fuzz tests.
//
// Case-sensitive matching compares bytes. Case-insensitive matching compares
// runes, invalid UTF-8 is treated as utf8.RuneError.
func MatchReference(pattern, s string, fold bool) bool {
	if fold {
		return matchTable([]rune(pattern), []rune(s), EqualRune)
	}
	return matchTable([]byte(pattern), []byte(s), func(c0, c1 byte) bool {
		return c0 == c1
	})
}

// matchTable reports if s matches pattern. After processing the first i
// elements of pattern prev[j] is true if pattern[:i] matches s[:j].
func matchTable[T byte | rune](pattern, s []T, equal func(T, T) bool) bool {
	prev := make([]bool, len(s)+1)
	next := make([]bool, len(s)+1)
	prev[0] = true
	for _, c := range pattern {
		if c == '*' {
			next[0] = prev[0]
			for j := 1; j <= len(s); j++ {
				next[j] = prev[j] || next[j-1]
			}
		} else {
			next[0] = false
			for j := 1; j <= len(s); j++ {
				next[j] = prev[j-1] && equal(c, s[j-1])
			}
		}
		prev, next = next, prev
	}
	return prev[len(s)]
}

// EqualRune reports if r0 and r1 are equal under simple Unicode
// case-folding.
func EqualRune(r0, r1 rune) bool {
	return strings.EqualFold(string(r0), string(r1))
}

// RegexpPattern translates a wildcard pattern to an anchored regular
// expression.
func RegexpPattern(pattern string, fold bool) string {
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	flags := `(?s)`
	if fold {
		flags = `(?is)`
	}
	return flags + `^` + strings.Join(parts, `.*`) + `$`
}

// RegexpMatch matches s against pattern using package regexp. Regexp treats
// invalid UTF-8 as utf8.RuneError so it is only a valid reference for
// case-sensitive matching when s is valid UTF-8.
func RegexpMatch(pattern, s string, fold bool) (bool, error) {
	re, err := regexp.Compile(RegexpPattern(pattern, fold))
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// GobwasPattern quotes every glob metacharacter of pattern except '*'.
func GobwasPattern(pattern string) string {
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = glob.QuoteMeta(p)
	}
	return strings.Join(parts, "*")
}

// GobwasMatch matches s against pattern using github.com/gobwas/glob
// with no separators.
func GobwasMatch(pattern, s string) (bool, error) {
	g, err := glob.Compile(GobwasPattern(pattern))
	if err != nil {
		return false, err
	}
	return g.Match(s), nil
}

var doublestarQuoter = strings.NewReplacer(
	`\`, `\\`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

// DoublestarPattern quotes every doublestar metacharacter of pattern
// except '*'.
func DoublestarPattern(pattern string) string {
	return doublestarQuoter.Replace(pattern)
}

// DoublestarMatch matches s against pattern using
// github.com/bmatcuk/doublestar. Since '*' does not match '/' in doublestar
// it is only a valid reference when s does not contain a '/'.
func DoublestarMatch(pattern, s string) (bool, error) {
	return doublestar.Match(DoublestarPattern(pattern), s)
}
