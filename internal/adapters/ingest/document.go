package ingest

// document mirrors the program file layout. Fields whose shape varies between
// sources (credits, prerequisites) decode into any and are checked per record.
type document struct {
	Name         string           `yaml:"name" toml:"name" json:"name"`
	Courses      []courseRecord   `yaml:"courses" toml:"courses" json:"courses"`
	Overrides    []overrideRecord `yaml:"overrides" toml:"overrides" json:"overrides"`
	Requirements requirements     `yaml:"requirements" toml:"requirements" json:"requirements"`
}

type courseRecord struct {
	Code          string `yaml:"code" toml:"code" json:"code"`
	Name          string `yaml:"name" toml:"name" json:"name"`
	Credits       any    `yaml:"credits" toml:"credits" json:"credits"`
	Prerequisites any    `yaml:"prerequisites" toml:"prerequisites" json:"prerequisites"`
	Corequisites  any    `yaml:"corequisites" toml:"corequisites" json:"corequisites"`
}

type overrideRecord struct {
	Code          string `yaml:"code" toml:"code" json:"code"`
	Prerequisites any    `yaml:"prerequisites" toml:"prerequisites" json:"prerequisites"`
}

type requirements struct {
	TotalCredits  int          `yaml:"total_credits" toml:"total_credits" json:"total_credits"`
	FirstSemester []string     `yaml:"first_semester" toml:"first_semester" json:"first_semester"`
	Areas         []areaRecord `yaml:"areas" toml:"areas" json:"areas"`
}

type areaRecord struct {
	Name       string   `yaml:"name" toml:"name" json:"name"`
	Kind       string   `yaml:"kind" toml:"kind" json:"kind"`
	MinCredits int      `yaml:"min_credits" toml:"min_credits" json:"min_credits"`
	Foundation bool     `yaml:"foundation" toml:"foundation" json:"foundation"`
	Courses    []string `yaml:"courses" toml:"courses" json:"courses"`
	Required   []string `yaml:"required" toml:"required" json:"required"`
}
