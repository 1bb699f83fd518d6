package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/degreeplan-cli/internal/application"
	"github.com/bnema/degreeplan-cli/internal/domain"
)

type RenderOptions struct {
	// HidePrerequisites drops the prerequisite column from course lines.
	HidePrerequisites bool
	BarWidth          int
}

func renderView(status application.PlanStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(planTitle(status)),
		s.header.Render(fmt.Sprintf("%s | %d semesters | %s",
			rangeLabel(status.Plan), len(status.Semesters), creditsLabel(status.TotalCredits, status.RequiredCredits))),
	}

	for _, semester := range status.Semesters {
		lines = append(lines, s.section.Render(renderSemester(semester, opts, s)))
	}

	if len(status.Progress) > 0 {
		lines = append(lines, s.section.Render(renderProgress(status.Progress, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func planTitle(status application.PlanStatus) string {
	title := fmt.Sprintf("%s (%s)", status.Plan.Name, status.Plan.ID)
	if status.Active {
		title += " *"
	}
	return title
}

func rangeLabel(plan domain.Plan) string {
	slots, err := plan.Slots()
	if err != nil || len(slots) == 0 {
		return "no semesters"
	}
	return slots[0].Name + " to " + slots[len(slots)-1].Name
}

func creditsLabel(total, required int) string {
	if required <= 0 {
		return fmt.Sprintf("%d credits", total)
	}
	return fmt.Sprintf("%d/%d credits", total, required)
}

func renderSemester(semester application.SemesterStatus, opts RenderOptions, s styles) string {
	headerStyle := s.semester
	if semester.Type == domain.SemesterSummer {
		headerStyle = s.summer
	}

	load := fmt.Sprintf("%d/%d cr", semester.Credits, semester.Cap)
	loadStyle := s.header
	if semester.Credits > semester.Cap {
		loadStyle = s.overCap
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, headerStyle.Render(semester.Name), " ", loadStyle.Render(load)),
	}

	if len(semester.Courses) == 0 {
		parts = append(parts, s.empty.Render("  (no courses)"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	width := codeWidth(semester.Courses)
	for _, course := range semester.Courses {
		parts = append(parts, courseLine(course, width, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func codeWidth(courses []application.CourseLine) int {
	width := 0
	for _, course := range courses {
		if len(course.Code) > width {
			width = len(course.Code)
		}
	}
	return width
}

func courseLine(course application.CourseLine, width int, opts RenderOptions, s styles) string {
	text := fmt.Sprintf("  %-*s %2d cr", width, course.Code, course.Credits)
	if course.Name != "" {
		text += "  " + course.Name
	}
	line := s.course.Render(text)

	if opts.HidePrerequisites || course.Prerequisites == "" || course.Prerequisites == "none" {
		return line
	}

	return line + " " + s.prereq.Render("[needs "+course.Prerequisites+"]")
}

func renderProgress(progress []domain.AreaProgress, opts RenderOptions, s styles) string {
	parts := []string{s.title.Render("Requirements")}

	width := 0
	for _, area := range progress {
		if len(area.Area) > width {
			width = len(area.Area)
		}
	}

	barWidth := opts.BarWidth
	if barWidth <= 0 {
		barWidth = 20
	}

	for _, area := range progress {
		mark := s.unmet.Render("missing")
		if area.Met() {
			mark = s.met.Render("met")
		}
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.areaKey.Render(fmt.Sprintf("%-*s", width, area.Area)),
			" ",
			renderProgressBar(area.Earned, area.Minimum, barWidth, s),
			" ",
			s.header.Render(fmt.Sprintf("%d/%d cr", area.Earned, area.Minimum)),
			" ",
			mark,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderProgressBar(earned, minimum, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := 1.0
	if minimum > 0 {
		fraction = float64(earned) / float64(minimum)
	}
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
