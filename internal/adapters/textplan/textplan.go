// Package textplan reads and writes the plain-text plan exchange format:
//
//	# Plan: My plan
//	Fall 2024 (6 credits)
//	  CS101
//	  MATH100
//	Spring 2025 (0 credits)
//
// Unindented lines name a semester, with an optional credit suffix. Indented
// lines list course codes, one per line; only the first field counts. Lines
// starting with # are comments.
package textplan

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/degreeplan-cli/internal/domain"
	"github.com/bnema/degreeplan-cli/internal/ports"
)

type Codec struct{}

var _ ports.PlanCodec = Codec{}

func (Codec) Format(plan domain.Plan, ledger *domain.Ledger) string {
	var b strings.Builder

	if plan.Name != "" {
		fmt.Fprintf(&b, "# Plan: %s\n", plan.Name)
	}
	for _, slot := range ledger.Slots() {
		placement, err := ledger.Placement(slot.Name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s (%d credits)\n", slot.Name, placement.Credits)
		for _, code := range placement.Codes() {
			fmt.Fprintf(&b, "  %s\n", code)
		}
	}

	return b.String()
}

func (Codec) Parse(text string) (domain.Snapshot, error) {
	return Parse(text)
}

// ParseError points at the offending line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func Parse(text string) (domain.Snapshot, error) {
	snapshot := domain.Snapshot{}
	current := ""

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if raw[0] == ' ' || raw[0] == '\t' {
			if current == "" {
				return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("course %q before any semester header", trimmed)}
			}
			code := domain.NormalizeCode(strings.Fields(trimmed)[0])
			entry := snapshot[current]
			entry.Courses = append(entry.Courses, code)
			snapshot[current] = entry
			continue
		}

		name, credits, err := parseHeader(trimmed)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
		entry, ok := snapshot[name]
		if !ok {
			entry = domain.SnapshotSemester{Courses: []string{}}
		}
		entry.Credits += credits
		snapshot[name] = entry
		current = name
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read plan text: %w", err)
	}

	return snapshot, nil
}

func parseHeader(line string) (string, int, error) {
	name := line
	credits := 0

	if open := strings.Index(line, "("); open >= 0 {
		name = strings.TrimSpace(line[:open])
		suffix := strings.TrimSuffix(strings.TrimSpace(line[open+1:]), ")")
		fields := strings.Fields(suffix)
		if len(fields) == 0 {
			return "", 0, fmt.Errorf("empty credit suffix in %q", line)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return "", 0, fmt.Errorf("credit suffix %q is not a number", suffix)
		}
		credits = n
	}

	canonical, err := domain.CanonicalSemesterName(name)
	if err != nil {
		return "", 0, err
	}
	return canonical, credits, nil
}
