package domain

import (
	"fmt"
	"strings"
)

type OrGroup []string

// Expression is a conjunction of OR groups over course codes.
type Expression struct {
	Groups []OrGroup
}

func Requires(groups ...OrGroup) Expression {
	return Expression{Groups: groups}
}

func AnyOf(codes ...string) OrGroup {
	return OrGroup(codes)
}

func (e Expression) IsEmpty() bool {
	for _, group := range e.Groups {
		if len(group) > 0 {
			return false
		}
	}
	return true
}

// Evaluate reports whether every group has an alternative present in available.
// Empty expressions and empty groups are vacuously satisfied.
func (e Expression) Evaluate(available CodeSet) bool {
	for _, group := range e.Groups {
		if len(group) == 0 {
			continue
		}
		if !group.satisfiedBy(available) {
			return false
		}
	}
	return true
}

func (g OrGroup) satisfiedBy(available CodeSet) bool {
	for _, code := range g {
		if available.Has(code) {
			return true
		}
	}
	return false
}

func (e Expression) Codes() []string {
	seen := CodeSet{}
	codes := make([]string, 0)
	for _, group := range e.Groups {
		for _, code := range group {
			if seen.Has(code) {
				continue
			}
			seen.Add(code)
			codes = append(codes, NormalizeCode(code))
		}
	}
	return codes
}

func (e Expression) String() string {
	parts := make([]string, 0, len(e.Groups))
	for _, group := range e.Groups {
		if len(group) == 0 {
			continue
		}
		alternatives := make([]string, 0, len(group))
		for _, code := range group {
			alternatives = append(alternatives, NormalizeCode(code))
		}
		joined := strings.Join(alternatives, " or ")
		if len(alternatives) > 1 && len(e.Groups) > 1 {
			joined = "(" + joined + ")"
		}
		parts = append(parts, joined)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " and ")
}

// ParseExpression reads the textual form produced by String, e.g.
// "(MATH101 or MATH102) and CS101". "none" and "" yield an empty expression.
func ParseExpression(raw string) (Expression, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return Expression{}, nil
	}

	var groups []OrGroup
	for _, conjunct := range splitKeyword(trimmed, "and") {
		conjunct = strings.TrimSpace(conjunct)
		conjunct = strings.TrimPrefix(conjunct, "(")
		conjunct = strings.TrimSuffix(conjunct, ")")
		if strings.ContainsAny(conjunct, "()") {
			return Expression{}, fmt.Errorf("parse prerequisites %q: nested groups are not supported", raw)
		}

		var group OrGroup
		for _, alternative := range splitKeyword(conjunct, "or") {
			code := NormalizeCode(alternative)
			if code == "" {
				return Expression{}, fmt.Errorf("parse prerequisites %q: empty alternative", raw)
			}
			group = append(group, code)
		}
		groups = append(groups, group)
	}

	return Expression{Groups: groups}, nil
}

func splitKeyword(s, keyword string) []string {
	fields := strings.Fields(s)
	parts := make([]string, 0, 1)
	current := make([]string, 0, len(fields))
	for _, field := range fields {
		if strings.EqualFold(field, keyword) {
			parts = append(parts, strings.Join(current, " "))
			current = current[:0]
			continue
		}
		current = append(current, field)
	}
	return append(parts, strings.Join(current, " "))
}

// OverrideTable replaces the catalog prerequisites of specific courses.
// Keys are normalized codes.
type OverrideTable map[string]Expression

func (t OverrideTable) Lookup(code string) (Expression, bool) {
	expr, ok := t[NormalizeCode(code)]
	return expr, ok
}

func (t OverrideTable) Normalize() OverrideTable {
	normalized := make(OverrideTable, len(t))
	for code, expr := range t {
		normalized[NormalizeCode(code)] = expr
	}
	return normalized
}
