package domain

import (
	"errors"
	"fmt"
	"sort"
)

// Catalog is the immutable, ordered set of courses a plan draws from.
type Catalog struct {
	courses   []Course
	index     map[string]int
	overrides OverrideTable
}

func NewCatalog(courses []Course, overrides OverrideTable) (*Catalog, error) {
	c := &Catalog{
		courses:   make([]Course, 0, len(courses)),
		index:     make(map[string]int, len(courses)),
		overrides: overrides.Normalize(),
	}

	for _, course := range courses {
		code := NormalizeCode(course.Code)
		if code == "" {
			return nil, fmt.Errorf("course %q: code is required", course.Name)
		}
		if course.Credits < 0 {
			return nil, fmt.Errorf("course %s: credits must not be negative", code)
		}
		if _, ok := c.index[code]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCourse, code)
		}
		course.Code = code
		c.index[code] = len(c.courses)
		c.courses = append(c.courses, course)
	}

	if err := c.checkReferences(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) checkReferences() error {
	var errs []error
	for _, course := range c.courses {
		for _, ref := range course.Prerequisites.Codes() {
			if _, ok := c.index[ref]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s requires %s", ErrDanglingReference, course.Code, ref))
			}
		}
		for _, ref := range course.Corequisites {
			if _, ok := c.index[NormalizeCode(ref)]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s corequisite %s", ErrDanglingReference, course.Code, NormalizeCode(ref)))
			}
		}
	}

	for _, code := range c.overrideCodes() {
		if _, ok := c.index[code]; !ok {
			errs = append(errs, fmt.Errorf("%w: override for %s", ErrUnknownCourse, code))
			continue
		}
		for _, ref := range c.overrides[code].Codes() {
			if _, ok := c.index[ref]; !ok {
				errs = append(errs, fmt.Errorf("%w: override for %s requires %s", ErrDanglingReference, code, ref))
			}
		}
	}

	return errors.Join(errs...)
}

func (c *Catalog) overrideCodes() []string {
	codes := make([]string, 0, len(c.overrides))
	for code := range c.overrides {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (c *Catalog) Len() int {
	return len(c.courses)
}

func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

func (c *Catalog) Course(code string) (Course, bool) {
	i, ok := c.index[NormalizeCode(code)]
	if !ok {
		return Course{}, false
	}
	return c.courses[i], true
}

func (c *Catalog) Index(code string) int {
	if i, ok := c.index[NormalizeCode(code)]; ok {
		return i
	}
	return -1
}

// Prerequisites returns the effective expression for code, applying the
// override table first. Unknown codes have no prerequisites.
func (c *Catalog) Prerequisites(code string) Expression {
	if expr, ok := c.overrides.Lookup(code); ok {
		return expr
	}
	if course, ok := c.Course(code); ok {
		return course.Prerequisites
	}
	return Expression{}
}

func (c *Catalog) Overrides() []Override {
	out := make([]Override, 0, len(c.overrides))
	for _, code := range c.overrideCodes() {
		out = append(out, Override{Code: code, Prerequisites: c.overrides[code]})
	}
	return out
}

type Override struct {
	Code          string
	Prerequisites Expression
}
