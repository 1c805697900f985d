package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/gameutils/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gameutils",
		Short: "Player roster tool",
		Long: `gameutils loads, converts and stores player rosters kept as XML.

Each invocation works on one fresh player registry. Rosters can be stored in
memory or in Redis (env: GAMEUTILS_STORAGE_TYPE, GAMEUTILS_REDIS_URL).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LoadEnv(); err != nil {
				return err
			}

			var err error
			logger := cfg.Logger(cmd.ErrOrStderr())
			app, err = factory.New(factory.ConfigFromEnv(cfg.Env, logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.RootTag, "root-tag", cfg.RootTag, "Root element for written documents (env: GAMEUTILS_ROOT_TAG)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newRosterCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
