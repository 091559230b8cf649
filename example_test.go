package strglob_test

import (
	"errors"
	"fmt"

	"github.com/charlievieth/strglob"
)

func ExampleMatch() {
	fmt.Println(strglob.Match("*.*.test.cs", "startling.magic.test.cs"))
	fmt.Println(strglob.Match("*.*.test.cs", "startling.magic.TEST.cs"))
	fmt.Println(strglob.Match("a*", ""))
	fmt.Println(strglob.Match("", ""))

	// '?' is not special
	fmt.Println(strglob.Match("a?c", "abc"))
	// Output:
	// true <nil>
	// false <nil>
	// false <nil>
	// true <nil>
	// false <nil>
}

func ExampleMatchFold() {
	fmt.Println(strglob.MatchFold("*.*.test.cs", "startling.magic.TEST.cs"))
	fmt.Println(strglob.MatchFold("*val*", "VALUE"))

	// Unicode
	fmt.Println(strglob.MatchFold("*δ*", "ΑΒΔΕ"))
	fmt.Println(strglob.MatchFold("k*", "\u212a-sign")) // Kelvin K
	// Output:
	// true <nil>
	// true <nil>
	// true <nil>
	// true <nil>
}

func ExampleCompile() {
	_, err := strglob.Compile("a*\xff")
	fmt.Println(err)
	fmt.Println(errors.Is(err, strglob.ErrBadPattern))

	var pe *strglob.PatternError
	if errors.As(err, &pe) {
		fmt.Println(pe.Offset)
	}
	// Output:
	// strglob: invalid UTF-8 at offset 2 in pattern: "a*\xff"
	// true
	// 2
}

func ExampleMustCompileFold() {
	p := strglob.MustCompileFold("*.GO")
	fmt.Println(p.Match("main.go"))
	fmt.Println(p.MatchMode("main.go", strglob.CaseSensitive))
	fmt.Println(p.Mode())
	// Output:
	// true
	// false
	// CaseInsensitive
}

func ExamplePattern_Filter() {
	p := strglob.MustCompile("*_test.go")
	fmt.Println(p.Filter([]string{"a.go", "a_test.go", "b_test.go", "c.txt"}))
	// Output:
	// [a_test.go b_test.go]
}
