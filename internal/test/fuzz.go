package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Runes that have at least one other case. Also includes the members of
// their fold orbits that are not in the Upper, Lower or Title categories.
var foldableRunes = generateFoldableRunes(
	rangetable.Merge(unicode.Upper, unicode.Lower, unicode.Title),
)

// Runes that fold to a rune of a different encoded length, or that have
// upper/lower case forms but do not fold.
var multiwidthRunes = [...]rune{
	'\u212a', // Kelvin K
	'\u017f', // 'ſ'
	'\u00df', // 'ß'
	'\u1e9e', // 'ẞ'
	'\u0130', // 'İ'
	'\u0131', // 'ı'
	'\u2c6f', // 'Ɐ'
	'\u0250', // 'ɐ'
	'\u2126', // Ohm sign
	'\u03c9', // 'ω'
}

// Mostly ASCII so that random patterns and strings share runes.
const asciiAlphabet = "abcxyzABCXYZkKsS.-_/ "

func FoldableRunes() []rune {
	return foldableRunes
}

func generateFoldableRunes(rt *unicode.RangeTable) []rune {
	runes := make([]rune, 0, 4096)
	rangetable.Visit(rt, func(r rune) {
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			runes = append(runes, f)
		}
	})
	if len(runes) == 0 {
		panic("failed to generate foldable runes for Unicode version: " + unicode.Version)
	}
	slices.Sort(runes)
	return slices.Compact(runes)
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func intn(rr *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rr.Intn(n)
}

func randRune(rr *rand.Rand) rune {
	switch n := rr.Intn(100); {
	case n < 10:
		return multiwidthRunes[rr.Intn(len(multiwidthRunes))]
	case n < 30:
		return foldableRunes[rr.Intn(len(foldableRunes))]
	case n < 35:
		return rune(rr.Intn(utf8.RuneSelf))
	default:
		return rune(asciiAlphabet[rr.Intn(len(asciiAlphabet))])
	}
}

// randCaseRune will randomly change the case of rune r
func randCaseRune(rr *rand.Rand, r rune) rune {
	// Change the case 2/3 of the time
	if rr.Int31n(32) < 24 {
		r = unicode.SimpleFold(r)
	}
	return r
}

func appendRandRunes(rs []rune, rr *rand.Rand, n int) []rune {
	for i := 0; i < n; i++ {
		r := randRune(rr)
		if r == '*' {
			r = '+'
		}
		rs = append(rs, r)
	}
	return rs
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

// newProgressBar only renders when running the exhaustive tests from a
// terminal.
func newProgressBar(max int64) *progressbar.ProgressBar {
	if *exhaustiveFuzz && term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(max, "fuzz")
	}
	return progressbar.DefaultSilent(max)
}

func runRandomTest(t *testing.T, fn func(t *fuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the number of test iterations to run per seed.
	count := 2_500
	if testing.Short() {
		count /= 2
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 4_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	bar := newProgressBar(int64(count * len(seeds)))
	t.Cleanup(func() { _ = bar.Finish() })
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			tt := newFuzzTest(t, seed)
			for i := 0; i < count; i++ {
				fn(tt)
				_ = bar.Add(1)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

type fuzzTest struct {
	testing.TB
	rr *rand.Rand
	// Scratch space for constructing test arguments
	pattern []rune
	subject []rune
}

func newFuzzTest(t *testing.T, seed int64) *fuzzTest {
	if seed < 0 {
		seed = cryptoRandInt(t)
	}
	return &fuzzTest{
		TB:      &testWrapper{T: t},
		rr:      rand.New(rand.NewSource(seed)),
		pattern: make([]rune, 0, 32),
		subject: make([]rune, 0, 64),
	}
}

// MatchArgs returns a random pattern and a string to match it against.
// Half of the time the string is generated from the pattern by expanding
// its wildcards and changing the case of its literals so that matches are
// common.
func (t *fuzzTest) MatchArgs(fold bool) (pattern, s string) {
	rr := t.rr
	p := t.pattern[:0]
	for n := rr.Intn(6); n >= 0; n-- {
		p = appendRandRunes(p, rr, rr.Intn(4))
		if n > 0 || rr.Intn(4) == 0 {
			p = append(p, '*')
			if rr.Intn(8) == 0 {
				p = append(p, '*')
			}
		}
	}
	t.pattern = p

	var sb []rune
	if rr.Intn(2) == 0 {
		sb = t.subject[:0]
		for _, r := range p {
			if r == '*' {
				sb = appendRandRunes(sb, rr, rr.Intn(5))
				continue
			}
			if fold {
				r = randCaseRune(rr, r)
			}
			sb = append(sb, r)
		}
		if len(sb) > 0 && rr.Intn(4) == 0 {
			// Break the match
			sb[rr.Intn(len(sb))] = randRune(rr)
		}
	} else {
		sb = appendRandRunes(t.subject[:0], rr, rr.Intn(24))
	}
	t.subject = sb

	s = string(sb)
	if rr.Intn(16) == 0 {
		// Invalid UTF-8
		i := intn(rr, len(s))
		s = s[:i] + "\xff" + s[i:]
	}
	return string(p), s
}

// MatchFuzz compares fn to MatchReference on random input.
func MatchFuzz(t *testing.T, fn MatchFunc, fold bool) {
	runRandomTest(t, func(t *fuzzTest) {
		pattern, s := t.MatchArgs(fold)
		want := MatchReference(pattern, s, fold)
		got, err := fn(pattern, s)
		if err != nil {
			t.Fatalf("Match(%q, %q): unexpected error: %v", pattern, s, err)
		}
		if got != want {
			t.Errorf("Match\n"+
				"Pattern: %q\n"+
				"S:       %q\n"+
				"Fold:    %t\n"+
				"Got:     %t\n"+
				"Want:    %t\n"+
				"\n"+
				"ASCII:\n"+
				"Pattern: %+q\n"+
				"S:       %+q\n"+
				"\n"+
				"Lower:\n"+
				"Pattern: %+q\n"+
				"S:       %+q\n"+
				"\n",
				pattern, s, fold, got, want,
				pattern, s,
				strings.ToLower(pattern), strings.ToLower(s),
			)
		}
	})
}

var _ testing.TB = (*testWrapper)(nil)

// A testWrapper wraps a testing.T and will immediately fail the test
// if more that N errors occur.
type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		// We run tests in parallel so only call Fatal on the
		// test that crossed the threshold.
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow() // Abort subsequent tests
		}
		panic(fmt.Sprintf("aborting test: too many errors: %d", n)) // unreachable
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}
