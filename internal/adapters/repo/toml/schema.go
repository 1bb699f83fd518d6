package toml

import "fmt"

const (
	currentPlansSchemaVersion   = 1
	currentProgramSchemaVersion = 1
)

type plansFileSchema struct {
	Version int          `toml:"version"`
	Active  string       `toml:"active"`
	Plans   []planSchema `toml:"plans"`
}

func (s *plansFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentPlansSchemaVersion
	}
}

func (s plansFileSchema) validateVersion() error {
	if s.Version > currentPlansSchemaVersion {
		return fmt.Errorf("unsupported plans schema version %d (current %d)", s.Version, currentPlansSchemaVersion)
	}

	return nil
}

type planSchema struct {
	ID        string           `toml:"id"`
	Name      string           `toml:"name"`
	Origin    string           `toml:"origin"`
	StartTerm string           `toml:"start_term"`
	StartYear int              `toml:"start_year"`
	EndTerm   string           `toml:"end_term"`
	EndYear   int              `toml:"end_year"`
	CreatedAt string           `toml:"created_at"`
	UpdatedAt string           `toml:"updated_at"`
	Semesters []semesterSchema `toml:"semesters"`
}

type semesterSchema struct {
	Name    string   `toml:"name"`
	Courses []string `toml:"courses"`
	Credits int      `toml:"credits"`
}

type programFileSchema struct {
	Version      int                `toml:"version"`
	Name         string             `toml:"name"`
	ImportedAt   string             `toml:"imported_at"`
	Courses      []courseSchema     `toml:"courses"`
	Overrides    []overrideSchema   `toml:"overrides,omitempty"`
	Requirements requirementsSchema `toml:"requirements"`
}

func (s *programFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentProgramSchemaVersion
	}
}

func (s programFileSchema) validateVersion() error {
	if s.Version > currentProgramSchemaVersion {
		return fmt.Errorf("unsupported program schema version %d (current %d)", s.Version, currentProgramSchemaVersion)
	}

	return nil
}

// Prerequisites are stored as AND-of-OR groups: [["A", "B"], ["C"]].
type courseSchema struct {
	Code          string     `toml:"code"`
	Name          string     `toml:"name"`
	Credits       int        `toml:"credits"`
	Prerequisites [][]string `toml:"prerequisites,omitempty"`
	Corequisites  []string   `toml:"corequisites,omitempty"`
}

type overrideSchema struct {
	Code          string     `toml:"code"`
	Prerequisites [][]string `toml:"prerequisites"`
}

type requirementsSchema struct {
	TotalCredits  int          `toml:"total_credits"`
	FirstSemester []string     `toml:"first_semester"`
	Areas         []areaSchema `toml:"areas"`
}

type areaSchema struct {
	Name       string   `toml:"name"`
	Kind       string   `toml:"kind"`
	MinCredits int      `toml:"min_credits"`
	Foundation bool     `toml:"foundation,omitempty"`
	Courses    []string `toml:"courses"`
	Required   []string `toml:"required,omitempty"`
}
