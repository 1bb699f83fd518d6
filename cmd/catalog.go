package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bnema/degreeplan-cli/internal/adapters/ingest"
	"github.com/bnema/degreeplan-cli/internal/application"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import and inspect the program catalog",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogListCmd(app),
		newCatalogOverridesCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a YAML, TOML or JSON program document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := readProgramDocument(args[0], format)
			if err != nil {
				return err
			}

			for _, skipped := range result.Skipped {
				app.logger.Warn().Str("record", skipped.String()).Msg("skipped program record")
			}

			imported, err := app.catalogService.ImportProgram(cmd.Context(), application.ImportProgramCommand{
				Program: result.Program,
				Skipped: len(result.Skipped),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Imported %s: %d courses, %d overrides, %d areas\n",
				displayName(imported.Name), imported.Courses, imported.Overrides, imported.Areas)
			if imported.Skipped > 0 {
				_, _ = fmt.Fprintf(out, "Skipped %d malformed records:\n", imported.Skipped)
				for _, skipped := range result.Skipped {
					_, _ = fmt.Fprintf(out, "  %s\n", skipped)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Document format: yaml, toml or json (default: from file extension)")

	return cmd
}

func readProgramDocument(path, format string) (ingest.Result, error) {
	if format == "" {
		return ingest.ReadFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("read program document: %w", err)
	}
	return ingest.Decode(data, ingest.Format(format))
}

func newCatalogListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog courses with their effective prerequisites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			courses, err := app.catalogService.ListCourses(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(courses)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "CODE\tCREDITS\tNAME\tPREREQUISITES")
			for _, course := range courses {
				_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", course.Code, course.Credits, course.Name, course.Prerequisites)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCatalogOverridesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overrides",
		Short: "Show prerequisite overrides that replace catalog data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := app.catalogService.Overrides(cmd.Context())
			if err != nil {
				return err
			}

			if len(overrides) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No overrides.")
				return nil
			}
			for _, override := range overrides {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", override.Code, override.Prerequisites)
			}
			return nil
		},
	}
}

func displayName(name string) string {
	if name == "" {
		return "program"
	}
	return name
}
