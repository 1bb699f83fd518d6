package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts wireOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "dp",
		Short:         "Degree plan CLI (dp): place courses into semesters and generate plans",
		Long:          "dp imports a program catalog with its degree requirements, keeps multi-semester plans that never break prerequisite or credit rules, and generates a plan that covers the requirements.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logOutput = cmd.ErrOrStderr()
			return app.wire(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error, off (default from config, then warn)")
	rootCmd.PersistentFlags().BoolVar(&opts.logPretty, "log-pretty", false, "Human-readable log output")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCatalogCmd(app),
		newPlanCmd(app),
		newSnapshotCmd(app),
	)

	return rootCmd
}
