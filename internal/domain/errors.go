package domain

import "errors"

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrProgramNotFound  = errors.New("program not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrNoActivePlan     = errors.New("no active plan")
)

// Structural defects: the caller or the integration supplied inconsistent data.
var (
	ErrUnknownTerm       = errors.New("unknown term")
	ErrInvalidRange      = errors.New("invalid semester range")
	ErrUnknownSemester   = errors.New("unknown semester")
	ErrUnknownCourse     = errors.New("unknown course")
	ErrDuplicateCourse   = errors.New("duplicate course code")
	ErrDanglingReference = errors.New("prerequisite references no catalog course")
)

// Domain-rule outcomes, matched by *Violation through errors.Is.
var (
	ErrDuplicateInSemester = errors.New(string(ReasonDuplicateInSemester))
	ErrDuplicateElsewhere  = errors.New(string(ReasonDuplicateElsewhere))
	ErrCreditLimitExceeded = errors.New(string(ReasonCreditLimitExceeded))
	ErrPrerequisitesUnmet  = errors.New(string(ReasonPrerequisitesUnmet))
	ErrRemovalBlocked      = errors.New(string(ReasonRemovalBlocked))
	ErrNotPlaced           = errors.New(string(ReasonNotPlaced))
)
