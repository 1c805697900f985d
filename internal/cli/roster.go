package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Stored roster commands",
	}

	cmd.AddCommand(newRosterImportCmd())
	cmd.AddCommand(newRosterShowCmd())
	cmd.AddCommand(newRosterListCmd())

	return cmd
}

func newRosterImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import NAME FILE",
		Short: "Load a player file and store it as a roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]

			result, err := app.RosterService.ImportFile(path)
			if err != nil {
				return err
			}
			if _, err := result.Strict(); err != nil {
				return err
			}

			if err := app.RosterService.Export(cmd.Context(), name, cfg.RootTag); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintMessage(fmt.Sprintf("stored %d players as %s", app.Registry.Len(), name))
			return nil
		},
	}
}

func newRosterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the players of a stored roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.RosterService.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			players, err := result.Strict()
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(toPlayerList(players))
			return nil
		},
	}
}

func newRosterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored rosters",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.RosterService.List(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(RosterList{Rosters: names})
			return nil
		},
	}
}
