// Package test contains the table tests, reference implementation and
// fuzz harness shared by the strglob and bytglob packages.
package test

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

type MatchFunc func(pattern, s string) (bool, error)

func ByteMatchFunc(fn func(pattern, s []byte) (bool, error)) MatchFunc {
	return func(pattern, s string) (bool, error) {
		return fn([]byte(pattern), []byte(s))
	}
}

type MatchTest struct {
	Pattern string
	S       string
	Exact   bool // case-sensitive result
	Fold    bool // case-insensitive result
}

var matchTests = []MatchTest{
	// Empty patterns and candidates
	{"", "", true, true},
	{"", "x", false, false},
	{"", "*", false, false},
	{"*", "", true, true},
	{"*", "anything", true, true},
	{"*", "*", true, true},
	{"**", "", true, true},
	{"***", "abc", true, true},

	// '?' is a literal
	{"?", "", false, false},
	{"?", "a", false, false},
	{"?", "?", true, true},
	{"?*", "ab", false, false},
	{"?*", "?b", true, true},
	{"a??", "aab", false, false},
	{"a??", "a??", true, true},

	// Other glob metacharacters are literals
	{"[ab]*", "a", false, false},
	{"[ab]*", "[ab]c", true, true},
	{"{a,b}", "a", false, false},
	{"\\*", "\\x", true, true},
	{"\\*", "*", false, false},

	// Literals
	{"a", "aa", false, false},
	{"aa", "a", false, false},
	{"aa", "aa", true, true},
	{"aa", "aaa", false, false},
	{"test", "test", true, true},
	{"test", "TEST", false, true},
	{"test", "Test", false, true},
	{"test", "tes", false, false},

	// Prefix
	{"a*", "a", true, true},
	{"a*", "aa", true, true},
	{"a*", "A", false, true},
	{"a*", "ba", false, false},
	{"test*", "testing", true, true},
	{"test*", "TESTING", false, true},

	// Suffix
	{"*test", "a test", true, true},
	{"*test", "a test ", false, false},
	{"*test", "A TEST", false, true},
	{"*abc", "ababc", true, true},
	{"*aab", "aaab", true, true},

	// Prefix and suffix
	{"x*y", "xy", true, true},
	{"x*y", "x", false, false},
	{"x*y", "y", false, false},
	{"a*b", "axxb", true, true},
	{"a*b", "axxbx", false, false},
	{"a*b", "AXXB", false, true},
	{"a*a", "a", false, false},
	{"a*a", "aa", true, true},
	{"ab*ba", "aba", false, false},
	{"ab*ba", "abba", true, true},
	{"ab**ba", "abxba", true, true},

	// General
	{"c*a*b", "aab", false, false},
	{"a*b*", "ab", true, true},
	{"*a*b", "ba", false, false},
	{"*a*b", "xaxbxb", true, true},
	{"*ab*cd*", "abcd", true, true},
	{"*ab*cd*", "acbd", false, false},
	{"*aa*", "a", false, false},
	{"*aa*", "xaax", true, true},
	{"*aa*", "XAAX", false, true},
	{"a*abc*d", "aabcabcd", true, true},
	{"a*abc*d", "aabcabc", false, false},
	{"*a*", "bbb", false, false},
	{"*ab*", "aaaaaaaaaaab", true, true},
	{"*aaab", "aaaaaaaaaaab", true, true},
	{"*aaab*b", "aaabaaab", true, true},
	{"*x*y*z*", "zyx", false, false},
	{"*x*y*z*", "xyz", true, true},
	{"*x*y*z*", "XYZ", false, true},
	{"a*a*a*a*a*a*a*a*a*a*a*a*a*",
		"abbbbbabbbazzzaccccaxxxxaddddaeeeafffaggggahhhaeeeeazzzzattt", true, true},
	{"a***************************",
		"abbbbbabbbazzzaccccaxxxxaddddaeeeafffaggggahhhaeeeeazzzzattt", true, true},
	{"a*a*a*a*a*a*a*a*a*a*a*a*a*b",
		"abbbbbabbbazzzaccccaxxxxaddddaeeeafffaggggahhhaeeeeazzzzattt", false, false},

	// Segmented names
	{"*.*.test.cs", "startling.magic.test.cs", true, true},
	{"*.*.test.cs", "startling.magic.TEST.cs", false, true},
	{"*.*.test.cs", "startling.magic.test.CS", false, true},
	{"*.*.Test.cs", "startling.magic.Test.cs", true, true},
	{"*.*.Test.cs", "startling.magic.TEST.cs", false, true},
	{"*.*.test.cs", "magic.test.cs", false, false},
	{"*.*.test.cs", "..test.cs", true, true},
	{"*val*", "value", true, true},
	{"*val*", "VALUE", false, true},
	{"*val**", "value", true, true},
	{"val*whale*value", "val whale value", true, true},
	{"val*whale*value", "valwhalevalue", true, true},
	{"val*whale*value", "valwhalevalu", false, false},
	{"*val*brawl*", "a val and a brawl!", true, true},
	{"*val*brawl*crawl", "valbrawlcrawl", true, true},
	{"*val*brawl*crawl", "valcrawlbrawl", false, false},
	{"*/*.go", "cmd/main.go", true, true},
	{"*/*.go", "cmd/internal/main.go", true, true},

	// Unicode
	{"*世界*", "hello 世界!", true, true},
	{"*世界", "hello 世界!", false, false},
	{"αβ*", "ΑΒΓ", false, true},
	{"*ΔΕ", "αβδε", false, true},
	{"*δ*", "ΑΒΔΕ", false, true},
	{"*ß", "straß", true, true},
	{"*ß", "straße", false, false},
	{"*ẞ", "straß", false, true},
	{"*ẞ", "straße", false, false},
	{"*s", "CAſ", false, true},
	{"ſ*", "Sword", false, true},

	// Kelvin K is three bytes long and folds to ASCII 'k' and 'K'.
	{"k*", "\u212a-sign", false, true},
	{"*\u212a", "k", false, true},
	{"*k*k", "\u212a\u212a", false, true},
	{"\u212a*\u212a", "kk", false, true},
	{"\u212a*\u212a", "k", false, false},
	{"*\u212a\u212a*", "xkKx", false, true},
	{"*\u212ax", "kkkkX", false, true},
	{"*kx", "\u212a\u212a\u212ax", false, true},

	// 'İ' and 'ı' have upper/lower case forms but do not fold.
	{"İ*", "i", false, false},
	{"*ı", "I", false, false},
	{"*i", "İ", false, false},

	// Invalid UTF-8 in the candidate
	{"*", "\xff", true, true},
	{"a*", "a\xff", true, true},
	{"*\xef\xbf\xbd", "a\xff", false, true},
	{"*b", "\xffb", true, true},
	{"*b*", "\xff\xfeB\xfd", false, true},
}

// MatchTests returns a copy of the shared table tests.
func MatchTests() []MatchTest {
	return append([]MatchTest(nil), matchTests...)
}

func hasUnicode(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

func runMatchTests(t *testing.T, fn MatchFunc, funcName string, fold bool, tests []MatchTest, noError bool) {
	t.Helper()
	fails := 0
	for _, test := range tests {
		want := test.Exact
		if fold {
			want = test.Fold
		}
		got, err := fn(test.Pattern, test.S)
		if err != nil {
			t.Errorf("%s(%q, %q): unexpected error: %v", funcName, test.Pattern, test.S, err)
			continue
		}
		if got == want {
			continue
		}
		fails++
		errorf := t.Errorf
		if noError {
			errorf = t.Logf
		}
		if hasUnicode(test.Pattern) || hasUnicode(test.S) {
			errorf("%s(%q, %q) = %t; want: %t\n"+
				"ASCII:\n"+
				"  Pattern: %s\n"+
				"  S:       %s\n",
				funcName, test.Pattern, test.S, got, want,
				strconv.QuoteToASCII(test.Pattern),
				strconv.QuoteToASCII(test.S))
		} else {
			errorf("%s(%q, %q) = %t; want: %t", funcName, test.Pattern, test.S, got, want)
		}
	}
	if t.Failed() && testing.Verbose() {
		t.Logf("%s: failed %d out of %d tests", funcName, fails, len(tests))
	}
}

// Match tests case-sensitive matching.
func Match(t *testing.T, fn MatchFunc) {
	runMatchTests(t, fn, "Match", false, matchTests, false)
}

// MatchFold tests case-insensitive matching.
func MatchFold(t *testing.T, fn MatchFunc) {
	runMatchTests(t, fn, "MatchFold", true, matchTests, false)
}

// InvalidPattern tests that patterns containing invalid UTF-8 are rejected
// with an error wrapping bad and never reported as a match.
func InvalidPattern(t *testing.T, fn MatchFunc, bad error) {
	patterns := []string{
		"\xff",
		"*\xff",
		"a*\xfe*b",
		"\xe2\x82",     // truncated '€'
		"\xed\xa0\x80", // surrogate half
		strings.Repeat("*", 8) + "\x80",
	}
	for _, pattern := range patterns {
		for _, s := range []string{"", pattern, "abc"} {
			got, err := fn(pattern, s)
			if err == nil {
				t.Errorf("Match(%q, %q): expected error", pattern, s)
				continue
			}
			if !errors.Is(err, bad) {
				t.Errorf("Match(%q, %q): error %v does not wrap %v", pattern, s, err, bad)
			}
			if got {
				t.Errorf("Match(%q, %q) = true; want: false when the pattern is invalid",
					pattern, s)
			}
		}
	}
}

// Properties tests the algebraic properties all implementations must have.
func Properties(t *testing.T, match, matchFold MatchFunc) {
	candidates := []string{
		"", "a", "A", "abc", "ABC", "a*b", "startling.magic.test.cs",
		"K", "ΑΒΔ", "αβδ", "hello 世界", strings.Repeat("xy", 64),
	}

	// "*" matches every candidate.
	for _, fn := range []MatchFunc{match, matchFold} {
		for _, s := range candidates {
			if ok, err := fn("*", s); !ok || err != nil {
				t.Errorf(`Match("*", %q) = %t, %v; want: true, nil`, s, ok, err)
			}
		}
	}

	// A pattern without a wildcard matches itself.
	for _, s := range candidates {
		if strings.Contains(s, "*") {
			continue
		}
		for _, fn := range []MatchFunc{match, matchFold} {
			if ok, err := fn(s, s); !ok || err != nil {
				t.Errorf("Match(%[1]q, %[1]q) = %t, %v; want: true, nil", s, ok, err)
			}
		}
	}

	// Compiling the same pattern twice gives the same results.
	for _, test := range matchTests {
		for _, fn := range []MatchFunc{match, matchFold} {
			for _, s := range append(candidates, test.S) {
				m1, err1 := fn(test.Pattern, s)
				m2, err2 := fn(test.Pattern, s)
				if m1 != m2 || err1 != err2 {
					t.Errorf("Match(%q, %q) = %t, %v then %t, %v",
						test.Pattern, s, m1, err1, m2, err2)
				}
			}
		}
	}

	// For ASCII input, ignoring case is the same as upper casing both
	// arguments before a case-sensitive match.
	for _, test := range matchTests {
		if hasUnicode(test.Pattern) || hasUnicode(test.S) {
			continue
		}
		fold, err1 := matchFold(test.Pattern, test.S)
		upper, err2 := match(strings.ToUpper(test.Pattern), strings.ToUpper(test.S))
		if err1 != nil || err2 != nil {
			t.Fatal(err1, err2)
		}
		if fold != upper {
			t.Errorf("MatchFold(%q, %q) = %t; Match(ToUpper) = %t",
				test.Pattern, test.S, fold, upper)
		}
	}
}
