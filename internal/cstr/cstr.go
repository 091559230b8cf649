//go:build cgo
// +build cgo

// Package cstr wraps libc's fnmatch(3) for use as a reference
// implementation in tests.
package cstr

/*
#define _GNU_SOURCE
#include <stdlib.h>
#include <fnmatch.h>
#include <locale.h>

static void cstr_init_locale(void) {
	setlocale(LC_ALL, "en_US.UTF-8");
}

static int cstr_fnmatch(const char *pattern, const char *s, int fold) {
	int flags = 0;
#ifdef FNM_CASEFOLD
	if (fold) {
		flags |= FNM_CASEFOLD;
	}
#endif
	return fnmatch(pattern, s, flags);
}

static int cstr_has_casefold(void) {
#ifdef FNM_CASEFOLD
	return 1;
#else
	return 0;
#endif
}
*/
import "C"

import (
	"strings"
	"unsafe"
)

// fnmatch(3) decodes multibyte characters using the current locale.
func init() {
	C.cstr_init_locale()
}

// HasCaseFold reports if the libc supports FNM_CASEFOLD.
func HasCaseFold() bool {
	return C.cstr_has_casefold() != 0
}

var fnmatchQuoter = strings.NewReplacer(
	`\`, `\\`,
	`?`, `\?`,
	`[`, `\[`,
)

// FnmatchPattern quotes every fnmatch metacharacter of pattern except '*'.
func FnmatchPattern(pattern string) string {
	return fnmatchQuoter.Replace(pattern)
}

// Fnmatch reports if s matches the wildcard pattern using fnmatch(3).
// Neither pattern nor s may contain a NUL byte and fold is only honored
// if HasCaseFold returns true.
func Fnmatch(pattern, s string, fold bool) bool {
	cp := C.CString(FnmatchPattern(pattern))
	cs := C.CString(s)
	var cfold C.int
	if fold {
		cfold = 1
	}
	ret := int(C.cstr_fnmatch(cp, cs, cfold))
	C.free(unsafe.Pointer(cp))
	C.free(unsafe.Pointer(cs))
	return ret == 0
}
