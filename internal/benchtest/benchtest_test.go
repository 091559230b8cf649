package benchtest

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/charlievieth/strglob/internal/test"
)

var benchImpl = flag.String("impl", ImplStrglob,
	fmt.Sprintf("Implementation to benchmark (one of: %q)", Impls))

var benchStdLib = flag.Bool("stdlib", false, "Use path.Match in benchmarks (for comparison)")

func impl() string {
	if *benchStdLib {
		return ImplPath
	}
	return *benchImpl
}

// Make sure all the implementations agree on the case-sensitive ASCII test
// cases that do not contain a '/'. The third-party glob libraries are only
// logged since their semantics are not under our control.
func TestNewMatcher(t *testing.T) {
	for _, name := range Impls {
		errorf := t.Errorf
		if name == ImplGobwas || name == ImplDoublestar {
			errorf = t.Logf
		}
		for _, tt := range test.MatchTests() {
			if tt.Pattern == "" || strings.Contains(tt.S, "/") || !isASCII(tt.Pattern+tt.S) {
				continue
			}
			match, err := NewMatcher(name, tt.Pattern, false)
			if err != nil {
				errorf("%s: NewMatcher(%q): %v", name, tt.Pattern, err)
				continue
			}
			if got := match(tt.S); got != tt.Exact {
				errorf("%s: Match(%q, %q) = %t; want: %t", name, tt.Pattern, tt.S, got, tt.Exact)
			}
		}
	}
}

func TestNewMatcherFold(t *testing.T) {
	for _, name := range Impls {
		_, err := NewMatcher(name, "a*", true)
		if name == ImplStrglob || name == ImplRegexp {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", name, err)
			}
		} else if err != ErrNoFold {
			t.Errorf("%s: error = %v; want: %v", name, err, ErrNoFold)
		}
	}
	if _, err := NewMatcher("invalid", "a*", false); err == nil {
		t.Error("expected error for unknown implementation")
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func benchMatch(b *testing.B, pattern, s string, fold bool) {
	match, err := NewMatcher(impl(), pattern, fold)
	if err == ErrNoFold {
		b.Skip(err)
	}
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		match(s)
	}
}

const benchmarkString = "startling.magic.test.cs"

var benchmarkLongString = strings.Repeat("startling.magic.", 64) + "test.cs"

func BenchmarkMatchExact(b *testing.B) {
	benchMatch(b, benchmarkString, benchmarkString, false)
}

func BenchmarkMatchPrefix(b *testing.B) {
	benchMatch(b, "startling*", benchmarkLongString, false)
}

func BenchmarkMatchSuffix(b *testing.B) {
	benchMatch(b, "*.test.cs", benchmarkLongString, false)
}

func BenchmarkMatchGeneral(b *testing.B) {
	b.Run("Short", func(b *testing.B) {
		benchMatch(b, "*.*.test.cs", benchmarkString, false)
	})
	b.Run("Long", func(b *testing.B) {
		benchMatch(b, "*.*.test.cs", benchmarkLongString, false)
	})
	b.Run("Fold", func(b *testing.B) {
		benchMatch(b, "*.*.TEST.CS", benchmarkLongString, true)
	})
	b.Run("Unicode", func(b *testing.B) {
		benchMatch(b, "*δ*ε", strings.Repeat("αβγ", 64)+"ΔΕ", true)
	})
}

func makeBenchInputHard() string {
	tokens := [...]string{
		"<a>", "<p>", "<b>", "<strong>",
		"</a>", "</p>", "</b>", "</strong>",
		"hello", "world",
	}
	x := make([]byte, 0, 1<<16)
	for {
		i := rand.Intn(len(tokens))
		if len(x)+len(tokens[i]) >= 1<<16 {
			break
		}
		x = append(x, tokens[i]...)
	}
	return strings.ReplaceAll(string(x), "/", "")
}

var benchInputHard = makeBenchInputHard()

func BenchmarkMatchHard(b *testing.B) {
	b.Run("1", func(b *testing.B) { benchMatch(b, "*<>*", benchInputHard, false) })
	b.Run("2", func(b *testing.B) { benchMatch(b, "*<b>*hello world*<b>*", benchInputHard, false) })
	b.Run("3", func(b *testing.B) { benchMatch(b, "*<p>*<a>*<strong>*x", benchInputHard, false) })
	b.Run("Fold", func(b *testing.B) { benchMatch(b, "*<P>*<A>*<STRONG>*x", benchInputHard, true) })
}

// Exponential for naive backtracking matchers.
func BenchmarkMatchTorture(b *testing.B) {
	benchMatch(b, strings.Repeat("*a", 16)+"b", strings.Repeat("a", 1<<10), false)
}
