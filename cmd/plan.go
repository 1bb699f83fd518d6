package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	planrender "github.com/bnema/degreeplan-cli/internal/adapters/render/plan"
	"github.com/bnema/degreeplan-cli/internal/adapters/textplan"
	"github.com/bnema/degreeplan-cli/internal/application"
	"github.com/bnema/degreeplan-cli/internal/domain"
)

func newPlanCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create, edit and generate degree plans",
	}

	cmd.AddCommand(
		newPlanNewCmd(app),
		newPlanListCmd(app),
		newPlanUseCmd(app),
		newPlanDeleteCmd(app),
		newPlanShowCmd(app),
		newPlanAddCmd(app),
		newPlanRemoveCmd(app),
		newPlanGenerateCmd(app),
		newPlanExportCmd(app),
		newPlanImportCmd(app),
		newPlanResetCmd(app),
	)

	return cmd
}

func newPlanNewCmd(app *app) *cobra.Command {
	var (
		name      string
		startTerm string
		startYear int
		endTerm   string
		endYear   int
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty plan over a term range and make it active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := domain.ParseTerm(startTerm)
			if err != nil {
				return fmt.Errorf("--start-term: %w", err)
			}
			end, err := domain.ParseTerm(endTerm)
			if err != nil {
				return fmt.Errorf("--end-term: %w", err)
			}

			plan, err := app.planService.CreatePlan(cmd.Context(), application.CreatePlanCommand{
				Name:      name,
				StartTerm: start,
				StartYear: startYear,
				EndTerm:   end,
				EndYear:   endYear,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s (%s)\n", plan.Name, plan.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&startTerm, "start-term", string(domain.TermFall), "First term: Fall, Spring or Summer")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "Calendar year of the first term")
	cmd.Flags().StringVar(&endTerm, "end-term", string(domain.TermSpring), "Last term: Fall, Spring or Summer")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "Calendar year of the last term")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start-year")
	_ = cmd.MarkFlagRequired("end-year")

	return cmd
}

func newPlanListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.planService.ListPlans(cmd.Context())
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No plans yet. Create one with `dp plan new` or `dp plan generate`.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, " \tID\tNAME\tORIGIN\tRANGE\tCREDITS\tUPDATED")
			for _, summary := range summaries {
				marker := " "
				if summary.Active {
					marker = "*"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
					marker, summary.ID, summary.Name, summary.Origin, summary.Range,
					summary.TotalCredits, summary.UpdatedAt.Format(time.DateTime))
			}
			return w.Flush()
		},
	}
}

func newPlanUseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Make a plan the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.planService.UsePlan(cmd.Context(), domain.PlanID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Active plan is now %s\n", args[0])
			return nil
		},
	}
}

func newPlanDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.planService.DeletePlan(cmd.Context(), domain.PlanID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", args[0])
			return nil
		},
	}
}

func newPlanShowCmd(app *app) *cobra.Command {
	var (
		planID     string
		asJSON     bool
		hidePrereq bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a plan with per-semester loads and requirement progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.planService.GetStatus(cmd.Context(), domain.PlanID(planID))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}

			rendered, err := app.planRenderer(status, planrender.RenderOptions{HidePrerequisites: hidePrereq})
			if err != nil {
				return fmt.Errorf("render plan: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	addPlanFlag(cmd, &planID)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&hidePrereq, "no-prereqs", false, "Hide prerequisite hints")

	return cmd
}

func newPlanAddCmd(app *app) *cobra.Command {
	var planID, semester string

	cmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Place a course in a semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := domain.CanonicalSemesterName(semester)
			if err != nil {
				return fmt.Errorf("--semester: %w", err)
			}

			change, err := app.planService.AddCourse(cmd.Context(), application.AddCourseCommand{
				PlanID:   domain.PlanID(planID),
				Code:     args[0],
				Semester: name,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s (%d credits this semester)\n",
				change.Code, change.Semester, change.SemesterCredits)
			return nil
		},
	}

	addPlanFlag(cmd, &planID)
	cmd.Flags().StringVar(&semester, "semester", "", `Target semester, e.g. "Fall 2024"`)
	_ = cmd.MarkFlagRequired("semester")

	return cmd
}

func newPlanRemoveCmd(app *app) *cobra.Command {
	var planID, semester string

	cmd := &cobra.Command{
		Use:   "remove <code>",
		Short: "Remove a course from the plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if semester != "" {
				canonical, err := domain.CanonicalSemesterName(semester)
				if err != nil {
					return fmt.Errorf("--semester: %w", err)
				}
				name = canonical
			}

			change, err := app.planService.RemoveCourse(cmd.Context(), application.RemoveCourseCommand{
				PlanID:   domain.PlanID(planID),
				Code:     args[0],
				Semester: name,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s (%d credits this semester)\n",
				change.Code, change.Semester, change.SemesterCredits)
			return nil
		},
	}

	addPlanFlag(cmd, &planID)
	cmd.Flags().StringVar(&semester, "semester", "", "Semester holding the course (default: wherever it is placed)")

	return cmd
}

func newPlanGenerateCmd(app *app) *cobra.Command {
	var (
		name      string
		startYear int
		opts      = domain.DefaultGenerateOptions(0)
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan that covers the degree requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.StartYear = startYear
			if err := opts.Validate(); err != nil {
				return err
			}

			result, err := app.planService.GeneratePlan(cmd.Context(), application.GeneratePlanCommand{
				Name:    name,
				Options: opts,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Generated plan %s (%s)\n", result.Plan.Name, result.Plan.ID)
			if len(result.Unmet) == 0 {
				_, _ = fmt.Fprintln(out, "All requirements covered.")
				return nil
			}
			_, _ = fmt.Fprintf(out, "Unmet requirements (%d):\n", len(result.Unmet))
			for _, unmet := range result.Unmet {
				_, _ = fmt.Fprintf(out, "  %s\n", unmet)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name (default: derived from the first semester)")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "Calendar year of the first Fall semester")
	cmd.Flags().BoolVar(&opts.IncludeSummer, "summer", opts.IncludeSummer, "Schedule courses in summer terms")
	cmd.Flags().IntVar(&opts.MaxSummerTerms, "max-summer", opts.MaxSummerTerms, "Maximum summer terms to fill")
	cmd.Flags().IntVar(&opts.MaxSemesters, "max-semesters", opts.MaxSemesters, "Maximum semesters to generate")
	cmd.Flags().IntVar(&opts.CoursesPerRegularSemester, "per-regular", opts.CoursesPerRegularSemester, "Courses per regular semester")
	cmd.Flags().IntVar(&opts.CoursesPerSummerSemester, "per-summer", opts.CoursesPerSummerSemester, "Courses per summer semester")
	cmd.Flags().IntVar(&opts.SummerTechCreditLimit, "summer-tech-credits", opts.SummerTechCreditLimit, "Largest core course, in credits, allowed in a summer")
	_ = cmd.MarkFlagRequired("start-year")

	return cmd
}

func newPlanExportCmd(app *app) *cobra.Command {
	var planID, outPath, saveAs string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a plan in the plain-text exchange format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := app.planService.ExportPlan(cmd.Context(), domain.PlanID(planID), saveAs)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), text)
				return err
			}

			if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	addPlanFlag(cmd, &planID)
	cmd.Flags().StringVar(&outPath, "out", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&saveAs, "save", "", "Also keep the export as a named snapshot")

	return cmd
}

func newPlanImportCmd(app *app) *cobra.Command {
	var name, saved string
	var trust bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Create a plan from a plain-text plan file or a saved snapshot",
		Long:  "Placements are replayed through the placement rules and rejected entries are reported. --trust restores them verbatim instead.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadImportSnapshot(cmd, app, args, saved)
			if err != nil {
				return err
			}

			result, err := app.planService.ImportPlan(cmd.Context(), application.ImportPlanCommand{
				Name:     name,
				Snapshot: snapshot,
				Trust:    trust,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Imported plan %s (%s)\n", result.Plan.Name, result.Plan.ID)
			if result.Trusted {
				_, _ = fmt.Fprintln(out, "Trusted import: placements were not checked.")
				return nil
			}
			if len(result.Rejections) > 0 {
				_, _ = fmt.Fprintf(out, "Rejected %d entries:\n", len(result.Rejections))
				for _, rejection := range result.Rejections {
					_, _ = fmt.Fprintf(out, "  %s %s: %v\n", rejection.Semester, rejection.Code, rejection.Err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&saved, "saved", "", "Import a named snapshot instead of a file")
	cmd.Flags().BoolVar(&trust, "trust", false, "Skip placement checks and restore the snapshot as written")

	return cmd
}

func loadImportSnapshot(cmd *cobra.Command, app *app, args []string, saved string) (domain.Snapshot, error) {
	switch {
	case saved != "" && len(args) > 0:
		return nil, errors.New("pass either a file or --saved, not both")
	case saved != "":
		return app.planService.LoadSnapshot(cmd.Context(), saved)
	case len(args) == 0:
		return nil, errors.New("a plan file or --saved is required")
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	snapshot, err := textplan.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}
	return snapshot, nil
}

func newPlanResetCmd(app *app) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every course from a plan, keeping its semesters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := app.planService.ResetPlan(cmd.Context(), domain.PlanID(planID))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reset plan %s (%s)\n", plan.Name, plan.ID)
			return nil
		},
	}

	addPlanFlag(cmd, &planID)

	return cmd
}

func addPlanFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "plan", "", "Plan ID (default: active plan)")
}
