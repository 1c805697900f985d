package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/gameutils/internal/model"
	"github.com/mcoot/gameutils/internal/registry"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player file commands",
	}

	cmd.AddCommand(newPlayersLoadCmd())
	cmd.AddCommand(newPlayersConvertCmd())
	cmd.AddCommand(newPlayersValidateCmd())

	return cmd
}

func newPlayersLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE...",
		Short: "Load player files into one registry and list the players",
		Long: `Load player files into one registry and list the players.

Files that cannot be read or parsed are reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			var players []model.Player
			for _, path := range args {
				result, err := app.RosterService.ImportFile(path)
				if err != nil {
					return err
				}
				if !result.OK() {
					out.PrintWarning(fmt.Sprintf("skipped %s: %v", path, result.Diagnostic))
					continue
				}
				players = append(players, result.Players()...)
			}

			out.Print(toPlayerList(players))
			return nil
		},
	}
}

func newPlayersConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Load a player file and write it back out",
		Long: `Load a player file and write it back out.

Nicknames are not written, so the output carries ids and names only.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.RosterService.ImportFile(args[0])
			if err != nil {
				return err
			}
			if _, err := result.Strict(); err != nil {
				return err
			}

			if err := app.RosterService.ExportFile(args[1], cfg.RootTag); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[1], err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintMessage(fmt.Sprintf("wrote %d players to %s", app.Registry.Len(), args[1]))
			return nil
		},
	}
}

func newPlayersValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FIRST LAST NICK",
		Short: "Check whether player attributes are suitable for a new player",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid := registry.IsValidAttributes(&args[0], &args[1], &args[2])

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(ValidationResult{Valid: valid})
			return nil
		},
	}
}
