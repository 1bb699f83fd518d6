package domain

import (
	"fmt"
	"strings"
)

type AreaKind string

const (
	AreaCore           AreaKind = "core"
	AreaSpecialization AreaKind = "specialization"
	AreaGeneral        AreaKind = "general"
)

func ParseAreaKind(raw string) (AreaKind, error) {
	switch AreaKind(strings.ToLower(strings.TrimSpace(raw))) {
	case AreaCore, "technical", "technical_core":
		return AreaCore, nil
	case AreaSpecialization, "track":
		return AreaSpecialization, nil
	case AreaGeneral, "general_education", "gen_ed":
		return AreaGeneral, nil
	default:
		return "", fmt.Errorf("unsupported area kind %q", raw)
	}
}

func (k AreaKind) Technical() bool {
	return k == AreaCore || k == AreaSpecialization
}

// DegreeArea is a degree-requirement bucket: a minimum credit target over an
// eligible course list.
type DegreeArea struct {
	Name       string
	Kind       AreaKind
	MinCredits int
	Courses    []string
	Required   []string
	Foundation bool
}

func (a DegreeArea) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(string(a.Kind)) == "" {
		return fmt.Errorf("area %s: kind is required", a.Name)
	}
	if _, err := ParseAreaKind(string(a.Kind)); err != nil {
		return fmt.Errorf("area %s: %w", a.Name, err)
	}
	if a.MinCredits < 0 {
		return fmt.Errorf("area %s: min credits must not be negative", a.Name)
	}

	return nil
}

// NormalizeCourses canonicalizes codes, drops empties and duplicates, and
// makes every required course an eligible course too.
func (a *DegreeArea) NormalizeCourses() {
	if a == nil {
		return
	}

	a.Required = normalizeCodes(a.Required)
	a.Courses = normalizeCodes(append(append([]string{}, a.Courses...), a.Required...))
}

func (a DegreeArea) Contains(code string) bool {
	for _, member := range a.Courses {
		if SameCode(member, code) {
			return true
		}
	}
	return false
}

func (a DegreeArea) IsRequired(code string) bool {
	for _, member := range a.Required {
		if SameCode(member, code) {
			return true
		}
	}
	return false
}

func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := CodeSet{}
	for _, code := range codes {
		normalized := NormalizeCode(code)
		if normalized == "" || seen.Has(normalized) {
			continue
		}
		seen.Add(normalized)
		out = append(out, normalized)
	}
	return out
}

// Requirements is the degree-requirement input of the plan generator.
type Requirements struct {
	Areas         []DegreeArea
	FirstSemester []string
	TotalCredits  int
}

func (r Requirements) Validate(catalog *Catalog) error {
	for _, area := range r.Areas {
		if err := area.Validate(); err != nil {
			return err
		}
		for _, code := range append(append([]string{}, area.Courses...), area.Required...) {
			if _, ok := catalog.Course(code); !ok {
				return fmt.Errorf("area %s: %w: %s", area.Name, ErrUnknownCourse, NormalizeCode(code))
			}
		}
	}
	for _, code := range r.FirstSemester {
		if _, ok := catalog.Course(code); !ok {
			return fmt.Errorf("first semester: %w: %s", ErrUnknownCourse, NormalizeCode(code))
		}
	}
	if r.TotalCredits < 0 {
		return fmt.Errorf("total credits must not be negative")
	}
	return nil
}

type AreaProgress struct {
	Area    string
	Kind    AreaKind
	Earned  int
	Minimum int
}

func (p AreaProgress) Met() bool {
	return p.Earned >= p.Minimum
}

// Progress computes earned credits per area. A course counts toward every
// area that lists it.
func (r Requirements) Progress(ledger *Ledger) []AreaProgress {
	out := make([]AreaProgress, 0, len(r.Areas))
	for _, area := range r.Areas {
		progress := AreaProgress{Area: area.Name, Kind: area.Kind, Minimum: area.MinCredits}
		for _, placement := range ledger.placements {
			for _, course := range placement.Courses {
				if area.Contains(course.Code) {
					progress.Earned += course.Credits
				}
			}
		}
		out = append(out, progress)
	}
	return out
}
