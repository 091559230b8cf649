// Package benchtest is used for benchmarking strglob against the Go stdlib
// (path.Match and regexp) and the glob libraries gobwas/glob and doublestar.
//
// It is not part of the strglob package since the other implementations
// are not exact equivalents: path.Match, gobwas/glob and doublestar have
// more metacharacters (which are escaped here) and do not support matching
// ignoring case. Instead they are a useful measure of the overhead of
// strglob compared to the alternatives.
package benchtest

import (
	"errors"
	"path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/charlievieth/strglob"
	"github.com/charlievieth/strglob/internal/test"
)

// Implementations that can be benchmarked.
const (
	ImplStrglob    = "strglob"
	ImplPath       = "path"
	ImplRegexp     = "regexp"
	ImplGobwas     = "gobwas"
	ImplDoublestar = "doublestar"
)

var Impls = []string{ImplStrglob, ImplPath, ImplRegexp, ImplGobwas, ImplDoublestar}

// ErrNoFold is returned for implementations that cannot ignore case.
var ErrNoFold = errors.New("benchtest: implementation does not support case-insensitive matching")

var pathQuoter = strings.NewReplacer(`\`, `\\`, `?`, `\?`, `[`, `\[`)

// A MatchFunc reports if s matches the pattern it was created for.
type MatchFunc func(s string) bool

// NewMatcher compiles pattern with implementation impl. The returned
// MatchFunc is only equivalent to strglob for strings without a '/'.
func NewMatcher(impl, pattern string, fold bool) (MatchFunc, error) {
	if fold && impl != ImplStrglob && impl != ImplRegexp {
		return nil, ErrNoFold
	}
	switch impl {
	case ImplStrglob:
		mode := strglob.CaseSensitive
		if fold {
			mode = strglob.CaseInsensitive
		}
		p, err := strglob.CompileMode(pattern, mode)
		if err != nil {
			return nil, err
		}
		return p.Match, nil
	case ImplPath:
		pattern = pathQuoter.Replace(pattern)
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, err
		}
		return func(s string) bool {
			ok, _ := path.Match(pattern, s)
			return ok
		}, nil
	case ImplRegexp:
		re, err := regexp.Compile(test.RegexpPattern(pattern, fold))
		if err != nil {
			return nil, err
		}
		return re.MatchString, nil
	case ImplGobwas:
		g, err := glob.Compile(test.GobwasPattern(pattern))
		if err != nil {
			return nil, err
		}
		return g.Match, nil
	case ImplDoublestar:
		pattern = test.DoublestarPattern(pattern)
		if !doublestar.ValidatePattern(pattern) {
			return nil, doublestar.ErrBadPattern
		}
		return func(s string) bool {
			return doublestar.MatchUnvalidated(pattern, s)
		}, nil
	}
	return nil, errors.New("benchtest: unknown implementation: " + impl)
}
