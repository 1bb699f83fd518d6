package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage saved plan snapshots",
	}

	cmd.AddCommand(
		newSnapshotListCmd(app),
		newSnapshotDeleteCmd(app),
	)

	return cmd
}

func newSnapshotListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := app.planService.ListSnapshots(cmd.Context())
			if err != nil {
				return err
			}

			if len(names) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No snapshots.")
				return nil
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newSnapshotDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.planService.DeleteSnapshot(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %s\n", args[0])
			return nil
		},
	}
}
