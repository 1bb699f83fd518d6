// Package ingest reads program documents (catalog, override table and degree
// requirements) from YAML, TOML or JSON.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bnema/degreeplan-cli/internal/domain"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var ErrUnsupportedFormat = errors.New("unsupported program document format")

// DetectFormat picks a decoder from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// SkippedRecord is a course or override record dropped during ingestion.
type SkippedRecord struct {
	Kind   string
	Index  int
	Code   string
	Reason string
}

func (s SkippedRecord) String() string {
	if s.Code == "" {
		return fmt.Sprintf("%s #%d: %s", s.Kind, s.Index+1, s.Reason)
	}
	return fmt.Sprintf("%s #%d (%s): %s", s.Kind, s.Index+1, s.Code, s.Reason)
}

type Result struct {
	Program domain.Program
	Skipped []SkippedRecord
}

func ReadFile(path string) (Result, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Result{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read program document: %w", err)
	}

	return Decode(data, format)
}

// Decode parses a program document. Malformed course and override records
// are skipped and reported, never fatal. A duplicate course code keeps the
// first record.
func Decode(data []byte, format Format) (Result, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Result{}, fmt.Errorf("decode yaml program document: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Result{}, fmt.Errorf("decode toml program document: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&doc); err != nil {
			return Result{}, fmt.Errorf("decode json program document: %w", err)
		}
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return convert(doc), nil
}

func convert(doc document) Result {
	var result Result
	program := domain.Program{Name: strings.TrimSpace(doc.Name)}

	seen := domain.CodeSet{}
	for i, record := range doc.Courses {
		course, err := toCourse(record)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRecord{
				Kind:   "course",
				Index:  i,
				Code:   domain.NormalizeCode(record.Code),
				Reason: err.Error(),
			})
			continue
		}
		if seen.Has(course.Code) {
			result.Skipped = append(result.Skipped, SkippedRecord{Kind: "course", Index: i, Code: course.Code, Reason: "duplicate code"})
			continue
		}
		seen.Add(course.Code)
		program.Courses = append(program.Courses, course)
	}

	for i, record := range doc.Overrides {
		code := domain.NormalizeCode(record.Code)
		if code == "" {
			result.Skipped = append(result.Skipped, SkippedRecord{Kind: "override", Index: i, Reason: "code is required"})
			continue
		}
		expr, err := toExpression(record.Prerequisites)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRecord{Kind: "override", Index: i, Code: code, Reason: err.Error()})
			continue
		}
		if program.Overrides == nil {
			program.Overrides = domain.OverrideTable{}
		}
		program.Overrides[code] = expr
	}

	program.Requirements = domain.Requirements{
		TotalCredits:  doc.Requirements.TotalCredits,
		FirstSemester: doc.Requirements.FirstSemester,
	}
	for _, area := range doc.Requirements.Areas {
		program.Requirements.Areas = append(program.Requirements.Areas, domain.DegreeArea{
			Name:       strings.TrimSpace(area.Name),
			Kind:       domain.AreaKind(area.Kind),
			MinCredits: area.MinCredits,
			Foundation: area.Foundation,
			Courses:    area.Courses,
			Required:   area.Required,
		})
	}

	result.Program = program
	return result
}

func toCourse(record courseRecord) (domain.Course, error) {
	code := domain.NormalizeCode(record.Code)
	if code == "" {
		return domain.Course{}, errors.New("code is required")
	}

	credits, err := toCredits(record.Credits)
	if err != nil {
		return domain.Course{}, err
	}

	prerequisites, err := toExpression(record.Prerequisites)
	if err != nil {
		return domain.Course{}, err
	}

	corequisites, err := toCodes(record.Corequisites)
	if err != nil {
		return domain.Course{}, fmt.Errorf("corequisites: %w", err)
	}

	return domain.Course{
		Code:          code,
		Name:          strings.TrimSpace(record.Name),
		Credits:       credits,
		Prerequisites: prerequisites,
		Corequisites:  corequisites,
	}, nil
}

func toCredits(raw any) (int, error) {
	var credits int
	switch v := raw.(type) {
	case nil:
		return 0, errors.New("credits are required")
	case int:
		credits = v
	case int64:
		credits = int(v)
	case uint64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("credits %d out of range", v)
		}
		credits = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("credits %v are not a whole number", v)
		}
		credits = int(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("credits %q are not numeric", v.String())
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("credits %v are not a whole number", f)
		}
		if math.Abs(f) > math.MaxInt32 {
			return 0, fmt.Errorf("credits %v out of range", f)
		}
		credits = int(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("credits %q are not numeric", v)
		}
		credits = n
	default:
		return 0, fmt.Errorf("credits of type %T are not numeric", raw)
	}

	if credits < 0 {
		return 0, fmt.Errorf("credits %d must not be negative", credits)
	}
	return credits, nil
}

// toExpression accepts the textual form ("(A or B) and C"), a list of OR
// groups ([["A", "B"], ["C"]]) or a flat list where every code is required.
func toExpression(raw any) (domain.Expression, error) {
	switch v := raw.(type) {
	case nil:
		return domain.Expression{}, nil
	case string:
		return domain.ParseExpression(v)
	case []any:
		groups := make([]domain.OrGroup, 0, len(v))
		for _, item := range v {
			switch entry := item.(type) {
			case string:
				code := domain.NormalizeCode(entry)
				if code == "" {
					return domain.Expression{}, errors.New("prerequisites: empty code")
				}
				groups = append(groups, domain.AnyOf(code))
			case []any:
				codes, err := toCodes(entry)
				if err != nil {
					return domain.Expression{}, fmt.Errorf("prerequisites: %w", err)
				}
				if len(codes) == 0 {
					continue
				}
				groups = append(groups, domain.AnyOf(codes...))
			default:
				return domain.Expression{}, fmt.Errorf("prerequisites: unexpected %T", item)
			}
		}
		return domain.Requires(groups...), nil
	default:
		return domain.Expression{}, fmt.Errorf("prerequisites: unexpected %T", raw)
	}
}

// toCodes reads a list of codes, or a single comma separated string.
func toCodes(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		var codes []string
		for _, part := range strings.Split(v, ",") {
			if code := domain.NormalizeCode(part); code != "" {
				codes = append(codes, code)
			}
		}
		return codes, nil
	case []any:
		codes := make([]string, 0, len(v))
		for _, item := range v {
			text, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected %T in code list", item)
			}
			code := domain.NormalizeCode(text)
			if code == "" {
				return nil, errors.New("empty code")
			}
			codes = append(codes, code)
		}
		return codes, nil
	default:
		return nil, fmt.Errorf("unexpected %T", raw)
	}
}
