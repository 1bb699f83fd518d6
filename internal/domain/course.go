package domain

import (
	"strings"
	"unicode"
)

type Course struct {
	Code          string
	Name          string
	Credits       int
	Prerequisites Expression
	Corequisites  []string
}

// NormalizeCode returns the canonical comparison form of a course code:
// whitespace and hyphens removed, letters uppercased.
func NormalizeCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// CodeSet is a set of normalized course codes.
type CodeSet map[string]struct{}

func NewCodeSet(codes ...string) CodeSet {
	set := make(CodeSet, len(codes))
	for _, code := range codes {
		set.Add(code)
	}
	return set
}

func (s CodeSet) Add(code string) {
	s[NormalizeCode(code)] = struct{}{}
}

func (s CodeSet) Remove(code string) {
	delete(s, NormalizeCode(code))
}

func (s CodeSet) Has(code string) bool {
	_, ok := s[NormalizeCode(code)]
	return ok
}

func SameCode(a, b string) bool {
	return NormalizeCode(a) == NormalizeCode(b)
}
