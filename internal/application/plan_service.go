package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/degreeplan-cli/internal/domain"
	"github.com/bnema/degreeplan-cli/internal/ports"
)

var ErrEmptySnapshot = errors.New("snapshot has no semesters")

type PlanService struct {
	plans     ports.PlanRepository
	programs  ports.ProgramRepository
	snapshots ports.SnapshotStore
	codec     ports.PlanCodec
	clock     ports.Clock
	logger    zerolog.Logger
	newID     func() domain.PlanID
}

func NewPlanService(
	plans ports.PlanRepository,
	programs ports.ProgramRepository,
	snapshots ports.SnapshotStore,
	codec ports.PlanCodec,
	clock ports.Clock,
	logger zerolog.Logger,
) *PlanService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &PlanService{
		plans:     plans,
		programs:  programs,
		snapshots: snapshots,
		codec:     codec,
		clock:     clock,
		logger:    logger.With().Str("component", "plan_service").Logger(),
		newID:     func() domain.PlanID { return domain.PlanID(uuid.NewString()) },
	}
}

func (s *PlanService) CreatePlan(ctx context.Context, cmd CreatePlanCommand) (domain.Plan, error) {
	startYear, err := academicYear(cmd.StartTerm, cmd.StartYear)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("parse start semester: %w", err)
	}
	endYear, err := academicYear(cmd.EndTerm, cmd.EndYear)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("parse end semester: %w", err)
	}

	now := s.clock.Now()
	plan := domain.Plan{
		ID:        s.newID(),
		Name:      strings.TrimSpace(cmd.Name),
		Origin:    domain.PlanOriginManual,
		StartTerm: cmd.StartTerm,
		StartYear: startYear,
		EndTerm:   cmd.EndTerm,
		EndYear:   endYear,
		CreatedAt: now,
		UpdatedAt: now,
	}
	slots, err := plan.Slots()
	if err != nil {
		return domain.Plan{}, fmt.Errorf("sequence semesters: %w", err)
	}
	plan.Snapshot = domain.NewLedger(slots).Snapshot()

	if err := s.savePlan(ctx, plan, true); err != nil {
		return domain.Plan{}, err
	}

	s.logger.Info().Str("plan_id", string(plan.ID)).Int("semesters", len(slots)).Msg("plan created")
	return plan, nil
}

func (s *PlanService) AddCourse(ctx context.Context, cmd AddCourseCommand) (domain.Change, error) {
	plan, catalog, ledger, err := s.loadWorkingSet(ctx, cmd.PlanID)
	if err != nil {
		return domain.Change{}, err
	}

	change, err := domain.NewValidator(catalog).Place(cmd.Code, cmd.Semester, ledger)
	if err != nil {
		return domain.Change{}, err
	}

	if err := s.commit(ctx, plan, ledger); err != nil {
		return domain.Change{}, err
	}

	s.logger.Debug().
		Str("plan_id", string(plan.ID)).
		Str("code", change.Code).
		Str("semester", change.Semester).
		Int("semester_credits", change.SemesterCredits).
		Msg("course added")
	return change, nil
}

func (s *PlanService) RemoveCourse(ctx context.Context, cmd RemoveCourseCommand) (domain.Change, error) {
	plan, catalog, ledger, err := s.loadWorkingSet(ctx, cmd.PlanID)
	if err != nil {
		return domain.Change{}, err
	}

	semester := cmd.Semester
	if strings.TrimSpace(semester) == "" {
		slot, ok := ledger.Locate(cmd.Code)
		if !ok {
			return domain.Change{}, &domain.Violation{
				Reason:   domain.ReasonNotPlaced,
				Code:     domain.NormalizeCode(cmd.Code),
				Semester: "any semester",
			}
		}
		semester = slot.Name
	}

	change, err := domain.NewValidator(catalog).Remove(cmd.Code, semester, ledger)
	if err != nil {
		return domain.Change{}, err
	}

	if err := s.commit(ctx, plan, ledger); err != nil {
		return domain.Change{}, err
	}

	s.logger.Debug().
		Str("plan_id", string(plan.ID)).
		Str("code", change.Code).
		Str("semester", change.Semester).
		Msg("course removed")
	return change, nil
}

func (s *PlanService) GeneratePlan(ctx context.Context, cmd GeneratePlanCommand) (GeneratePlanResult, error) {
	program, catalog, err := s.loadProgram(ctx)
	if err != nil {
		return GeneratePlanResult{}, err
	}

	generated, err := domain.NewGenerator(domain.NewValidator(catalog)).Generate(program.Requirements, cmd.Options)
	if err != nil {
		return GeneratePlanResult{}, fmt.Errorf("generate plan: %w", err)
	}

	slots := generated.Ledger.Slots()
	if len(slots) == 0 {
		return GeneratePlanResult{}, ErrEmptySnapshot
	}
	first, err := slotPoint(slots[0])
	if err != nil {
		return GeneratePlanResult{}, err
	}
	last, err := slotPoint(slots[len(slots)-1])
	if err != nil {
		return GeneratePlanResult{}, err
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = fmt.Sprintf("Generated from %s", slots[0].Name)
	}

	plan := s.newPlanFromRange(name, domain.PlanOriginGenerated, first, last)
	plan.Snapshot = generated.Ledger.Snapshot()

	if err := s.savePlan(ctx, plan, true); err != nil {
		return GeneratePlanResult{}, err
	}

	s.logger.Info().
		Str("plan_id", string(plan.ID)).
		Int("placed_credits", generated.PlacedCredits).
		Int("unmet", len(generated.Unmet)).
		Msg("plan generated")
	return GeneratePlanResult{Plan: plan, Unmet: generated.Unmet}, nil
}

// ImportPlan stores an external snapshot as a new active plan. The term range
// spans the earliest to the latest semester named in the snapshot.
func (s *PlanService) ImportPlan(ctx context.Context, cmd ImportPlanCommand) (ImportPlanResult, error) {
	_, catalog, err := s.loadProgram(ctx)
	if err != nil {
		return ImportPlanResult{}, err
	}

	first, last, err := snapshotRange(cmd.Snapshot)
	if err != nil {
		return ImportPlanResult{}, err
	}

	plan := s.newPlanFromRange(strings.TrimSpace(cmd.Name), domain.PlanOriginImported, first, last)
	if plan.Name == "" {
		plan.Name = "Imported plan"
	}
	slots, err := plan.Slots()
	if err != nil {
		return ImportPlanResult{}, fmt.Errorf("sequence semesters: %w", err)
	}

	var (
		ledger     *domain.Ledger
		rejections []domain.ReplayRejection
	)
	if cmd.Trust {
		ledger, err = domain.RestoreLedger(catalog, slots, cmd.Snapshot)
	} else {
		ledger, rejections, err = domain.ReplaySnapshot(domain.NewValidator(catalog), slots, cmd.Snapshot)
	}
	if err != nil {
		return ImportPlanResult{}, fmt.Errorf("load snapshot: %w", err)
	}
	plan.Snapshot = ledger.Snapshot()

	if err := s.savePlan(ctx, plan, true); err != nil {
		return ImportPlanResult{}, err
	}

	for _, rejection := range rejections {
		s.logger.Warn().
			Str("plan_id", string(plan.ID)).
			Str("code", rejection.Code).
			Str("semester", rejection.Semester).
			Err(rejection.Err).
			Msg("snapshot entry rejected")
	}
	return ImportPlanResult{Plan: plan, Rejections: rejections, Trusted: cmd.Trust}, nil
}

// ExportPlan renders the plan in the plain-text exchange format. A non-empty
// saveAs also stores the text in the snapshot store under that name.
func (s *PlanService) ExportPlan(ctx context.Context, id domain.PlanID, saveAs string) (string, error) {
	plan, _, ledger, err := s.loadWorkingSet(ctx, id)
	if err != nil {
		return "", err
	}

	text := s.codec.Format(plan, ledger)
	if saveAs = strings.TrimSpace(saveAs); saveAs != "" {
		if err := s.snapshots.Put(ctx, saveAs, text); err != nil {
			return "", fmt.Errorf("save snapshot: %w", err)
		}
	}

	return text, nil
}

func (s *PlanService) LoadSnapshot(ctx context.Context, name string) (domain.Snapshot, error) {
	text, err := s.snapshots.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	snapshot, err := s.codec.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", name, err)
	}
	return snapshot, nil
}

func (s *PlanService) ListSnapshots(ctx context.Context) ([]string, error) {
	names, err := s.snapshots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return names, nil
}

func (s *PlanService) DeleteSnapshot(ctx context.Context, name string) error {
	if err := s.snapshots.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// ResetPlan discards every placement and keeps the term range.
func (s *PlanService) ResetPlan(ctx context.Context, id domain.PlanID) (domain.Plan, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return domain.Plan{}, err
	}

	slots, err := plan.Slots()
	if err != nil {
		return domain.Plan{}, fmt.Errorf("sequence semesters: %w", err)
	}
	plan.Snapshot = domain.NewLedger(slots).Snapshot()
	plan.UpdatedAt = s.clock.Now()

	if err := s.plans.Save(ctx, plan); err != nil {
		return domain.Plan{}, fmt.Errorf("save plan: %w", err)
	}

	s.logger.Info().Str("plan_id", string(plan.ID)).Msg("plan reset")
	return plan, nil
}

func (s *PlanService) GetStatus(ctx context.Context, id domain.PlanID) (PlanStatus, error) {
	plan, catalog, ledger, err := s.loadWorkingSet(ctx, id)
	if err != nil {
		return PlanStatus{}, err
	}
	program, err := s.programs.Get(ctx)
	if err != nil {
		return PlanStatus{}, fmt.Errorf("get program: %w", err)
	}
	activeID, err := s.plans.GetActive(ctx)
	if err != nil {
		return PlanStatus{}, fmt.Errorf("get active plan: %w", err)
	}

	status := PlanStatus{
		Plan:            plan,
		Active:          activeID == plan.ID,
		TotalCredits:    ledger.TotalCredits(),
		RequiredCredits: program.Requirements.TotalCredits,
		Progress:        program.Requirements.Progress(ledger),
	}
	for _, slot := range ledger.Slots() {
		placement, err := ledger.Placement(slot.Name)
		if err != nil {
			return PlanStatus{}, fmt.Errorf("read placement: %w", err)
		}
		semester := SemesterStatus{
			Name:    slot.Name,
			Type:    slot.Type,
			Cap:     slot.Cap,
			Credits: placement.Credits,
			Courses: make([]CourseLine, 0, len(placement.Courses)),
		}
		for _, placed := range placement.Courses {
			semester.Courses = append(semester.Courses, courseLine(catalog, placed.Code))
		}
		status.Semesters = append(status.Semesters, semester)
	}

	return status, nil
}

func (s *PlanService) ListPlans(ctx context.Context) ([]PlanSummary, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	activeID, err := s.plans.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active plan: %w", err)
	}

	summaries := make([]PlanSummary, 0, len(plans))
	for _, plan := range plans {
		summary := PlanSummary{
			ID:        plan.ID,
			Name:      plan.Name,
			Origin:    plan.Origin,
			Active:    plan.ID == activeID,
			UpdatedAt: plan.UpdatedAt,
		}
		if slots, err := plan.Slots(); err == nil && len(slots) > 0 {
			summary.Range = slots[0].Name + " - " + slots[len(slots)-1].Name
		}
		for _, semester := range plan.Snapshot {
			summary.TotalCredits += semester.Credits
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].UpdatedAt.Equal(summaries[j].UpdatedAt) {
			return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

func (s *PlanService) UsePlan(ctx context.Context, id domain.PlanID) error {
	if _, err := s.plans.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get plan by id: %w", err)
	}
	if err := s.plans.SetActive(ctx, id); err != nil {
		return fmt.Errorf("set active plan: %w", err)
	}
	return nil
}

func (s *PlanService) DeletePlan(ctx context.Context, id domain.PlanID) error {
	activeID, err := s.plans.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("get active plan: %w", err)
	}
	if err := s.plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if activeID == id {
		if err := s.plans.SetActive(ctx, ""); err != nil {
			return fmt.Errorf("clear active plan: %w", err)
		}
	}

	s.logger.Info().Str("plan_id", string(id)).Msg("plan deleted")
	return nil
}

func (s *PlanService) resolveID(ctx context.Context, id domain.PlanID) (domain.PlanID, error) {
	if strings.TrimSpace(string(id)) != "" {
		return id, nil
	}

	activeID, err := s.plans.GetActive(ctx)
	if err != nil {
		return "", fmt.Errorf("get active plan: %w", err)
	}
	if activeID == "" {
		return "", domain.ErrNoActivePlan
	}
	return activeID, nil
}

func (s *PlanService) getPlan(ctx context.Context, id domain.PlanID) (domain.Plan, error) {
	id, err := s.resolveID(ctx, id)
	if err != nil {
		return domain.Plan{}, err
	}

	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("get plan by id: %w", err)
	}
	return plan, nil
}

func (s *PlanService) loadProgram(ctx context.Context) (domain.Program, *domain.Catalog, error) {
	program, err := s.programs.Get(ctx)
	if err != nil {
		return domain.Program{}, nil, fmt.Errorf("get program: %w", err)
	}

	catalog, err := program.Catalog()
	if err != nil {
		return domain.Program{}, nil, fmt.Errorf("build catalog: %w", err)
	}
	return program, catalog, nil
}

// loadWorkingSet restores a persisted plan into a ledger. Persisted plans were
// written by this tool, so placement rules are not replayed.
func (s *PlanService) loadWorkingSet(ctx context.Context, id domain.PlanID) (domain.Plan, *domain.Catalog, *domain.Ledger, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return domain.Plan{}, nil, nil, err
	}
	_, catalog, err := s.loadProgram(ctx)
	if err != nil {
		return domain.Plan{}, nil, nil, err
	}

	slots, err := plan.Slots()
	if err != nil {
		return domain.Plan{}, nil, nil, fmt.Errorf("sequence semesters: %w", err)
	}
	ledger, err := domain.RestoreLedger(catalog, slots, plan.Snapshot)
	if err != nil {
		return domain.Plan{}, nil, nil, fmt.Errorf("restore plan %s: %w", plan.ID, err)
	}

	return plan, catalog, ledger, nil
}

func (s *PlanService) commit(ctx context.Context, plan domain.Plan, ledger *domain.Ledger) error {
	plan.Snapshot = ledger.Snapshot()
	plan.UpdatedAt = s.clock.Now()

	if err := s.plans.Save(ctx, plan); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (s *PlanService) savePlan(ctx context.Context, plan domain.Plan, activate bool) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validate plan: %w", err)
	}
	if err := s.plans.Save(ctx, plan); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	if !activate {
		return nil
	}
	if err := s.plans.SetActive(ctx, plan.ID); err != nil {
		return fmt.Errorf("set active plan: %w", err)
	}
	return nil
}

// termPoint is a semester position in academic-year terms.
type termPoint struct {
	term domain.Term
	year int
}

func (p termPoint) ordinal() int {
	switch p.term {
	case domain.TermSpring:
		return p.year*3 + 1
	case domain.TermSummer:
		return p.year*3 + 2
	default:
		return p.year * 3
	}
}

func slotPoint(slot domain.SemesterSlot) (termPoint, error) {
	year, err := academicYear(slot.Term, slot.Year)
	if err != nil {
		return termPoint{}, err
	}
	return termPoint{term: slot.Term, year: year}, nil
}

func (s *PlanService) newPlanFromRange(name string, origin domain.PlanOrigin, first, last termPoint) domain.Plan {
	now := s.clock.Now()
	return domain.Plan{
		ID:        s.newID(),
		Name:      name,
		Origin:    origin,
		StartTerm: first.term,
		StartYear: first.year,
		EndTerm:   last.term,
		EndYear:   last.year,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// academicYear converts a displayed year ("Spring 2025") to the academic year
// the sequencer counts in (2024).
func academicYear(term domain.Term, displayYear int) (int, error) {
	_, year, err := domain.ParseSemesterName(fmt.Sprintf("%s %d", term, displayYear))
	return year, err
}

func snapshotRange(snapshot domain.Snapshot) (termPoint, termPoint, error) {
	var (
		first, last termPoint
		found       bool
	)
	for name := range snapshot {
		term, year, err := domain.ParseSemesterName(name)
		if err != nil {
			return termPoint{}, termPoint{}, err
		}
		point := termPoint{term: term, year: year}
		if !found || point.ordinal() < first.ordinal() {
			first = point
		}
		if !found || point.ordinal() > last.ordinal() {
			last = point
		}
		found = true
	}
	if !found {
		return termPoint{}, termPoint{}, ErrEmptySnapshot
	}
	return first, last, nil
}

func courseLine(catalog *domain.Catalog, code string) CourseLine {
	line := CourseLine{Code: code, Prerequisites: catalog.Prerequisites(code).String()}
	if course, ok := catalog.Course(code); ok {
		line.Name = course.Name
		line.Credits = course.Credits
	}
	return line
}
