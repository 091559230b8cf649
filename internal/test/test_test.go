package test

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// Make sure our reference implementation agrees with the table tests.
func TestMatchReference(t *testing.T) {
	for _, fold := range []bool{false, true} {
		fold := fold
		reference := func(pattern, s string) (bool, error) {
			return MatchReference(pattern, s, fold), nil
		}
		runMatchTests(t, reference, "MatchReference", fold, matchTests, false)
	}
}

func filterTests(fn func(test MatchTest) bool) []MatchTest {
	var tests []MatchTest
	for _, test := range matchTests {
		if fn(test) {
			tests = append(tests, test)
		}
	}
	return tests
}

// Reference test using regex: this will identify bad test cases and is more
// accurate than our reference implementation (since it might have bugs).
func TestMatchRegexp(t *testing.T) {
	valid := filterTests(func(test MatchTest) bool {
		return utf8.ValidString(test.S)
	})
	runMatchTests(t, func(pattern, s string) (bool, error) {
		return RegexpMatch(pattern, s, false)
	}, "Regexp", false, valid, false)
	runMatchTests(t, func(pattern, s string) (bool, error) {
		return RegexpMatch(pattern, s, true)
	}, "RegexpFold", true, matchTests, false)
}

// The glob libraries are case-sensitive and only used as a sanity check
// so failures are logged but not reported as errors.
func TestMatchGlobLibraries(t *testing.T) {
	ascii := filterTests(func(test MatchTest) bool {
		return test.Pattern != "" && !hasUnicode(test.Pattern) && !hasUnicode(test.S)
	})
	runMatchTests(t, GobwasMatch, "gobwas/glob.Match", false, ascii, true)

	noSlash := filterTests(func(test MatchTest) bool {
		return utf8.ValidString(test.S) && !strings.Contains(test.S, "/")
	})
	runMatchTests(t, DoublestarMatch, "doublestar.Match", false, noSlash, true)
}

func TestPatternTranslation(t *testing.T) {
	tests := []struct {
		pattern    string
		regexp     string
		gobwas     string
		doublestar string
	}{
		{"", `(?s)^$`, "", ""},
		{"*", `(?s)^.*$`, "*", "*"},
		{"a*b", `(?s)^a.*b$`, "a*b", "a*b"},
		{"a.b*", `(?s)^a\.b.*$`, `a.b*`, "a.b*"},
		{"?*[x]", `(?s)^\?.*\[x\]$`, `\?*\[x\]`, `\?*\[x\]`},
		{`{a}\*`, `(?s)^\{a\}\\.*$`, `\{a\}\\*`, `\{a\}\\*`},
	}
	for _, test := range tests {
		if got := RegexpPattern(test.pattern, false); got != test.regexp {
			t.Errorf("RegexpPattern(%q) = %q; want: %q", test.pattern, got, test.regexp)
		}
		if got := GobwasPattern(test.pattern); got != test.gobwas {
			t.Errorf("GobwasPattern(%q) = %q; want: %q", test.pattern, got, test.gobwas)
		}
		if got := DoublestarPattern(test.pattern); got != test.doublestar {
			t.Errorf("DoublestarPattern(%q) = %q; want: %q", test.pattern, got, test.doublestar)
		}
	}
}

func TestMatchTestsCopy(t *testing.T) {
	tests := MatchTests()
	if len(tests) != len(matchTests) {
		t.Fatalf("len(MatchTests()) = %d; want: %d", len(tests), len(matchTests))
	}
	tests[0].Pattern = "modified"
	if matchTests[0].Pattern == "modified" {
		t.Fatal("MatchTests must return a copy")
	}
}
