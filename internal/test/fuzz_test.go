package test

import (
	"math/rand"
	"testing"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

func TestFoldableRunes(t *testing.T) {
	if !slices.IsSortedFunc(foldableRunes, func(a, b rune) bool { return a < b }) {
		t.Error("foldableRunes is not sorted")
	}
	for i, r := range foldableRunes {
		if unicode.SimpleFold(r) == r {
			t.Errorf("%U: rune does not fold", r)
		}
		if i > 0 && foldableRunes[i-1] == r {
			t.Errorf("%U: duplicate rune", r)
		}
	}
	for _, r := range []rune{'a', 'Z', 'k', 'K', '\u017f', '\u03a9', '\u2126', '\u212a'} {
		if _, found := slices.BinarySearch(foldableRunes, r); !found {
			t.Errorf("foldableRunes is missing: %U", r)
		}
	}
}

func TestMultiwidthRunes(t *testing.T) {
	for _, r := range multiwidthRunes {
		n := utf8.RuneLen(r)
		ok := unicode.SimpleFold(r) == r && (unicode.ToUpper(r) != r || unicode.ToLower(r) != r)
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if utf8.RuneLen(f) != n {
				ok = true
			}
		}
		if !ok {
			t.Errorf("%U: all case forms have the same encoded length", r)
		}
	}
}

func TestMatchArgs(t *testing.T) {
	for _, fold := range []bool{false, true} {
		t0 := newFuzzTest(t, 1)
		t1 := newFuzzTest(t, 1)
		matches := 0
		for i := 0; i < 1000; i++ {
			p0, s0 := t0.MatchArgs(fold)
			p1, s1 := t1.MatchArgs(fold)
			if p0 != p1 || s0 != s1 {
				t.Fatalf("MatchArgs is not deterministic: (%q, %q) != (%q, %q)", p0, s0, p1, s1)
			}
			if !utf8.ValidString(p0) {
				t.Fatalf("MatchArgs: invalid pattern: %q", p0)
			}
			if MatchReference(p0, s0, fold) {
				matches++
			}
		}
		// Make sure the generated arguments are not trivially false.
		if matches < 100 {
			t.Errorf("fold: %t: only %d out of 1000 generated arguments match", fold, matches)
		}
	}
}

// Validate the reference implementation against package regexp.
func TestReferenceRegexp(t *testing.T) {
	for _, fold := range []bool{false, true} {
		tt := newFuzzTest(t, rand.Int63())
		for i := 0; i < 2000; i++ {
			pattern, s := tt.MatchArgs(fold)
			if !fold && !utf8.ValidString(s) {
				continue
			}
			want, err := RegexpMatch(pattern, s, fold)
			if err != nil {
				t.Fatal(err)
			}
			if got := MatchReference(pattern, s, fold); got != want {
				t.Errorf("MatchReference(%+q, %+q, %t) = %t; want: %t",
					pattern, s, fold, got, want)
			}
		}
	}
}
