package cli

import (
	"github.com/spf13/cobra"

	"github.com/georgemunganga/pcstore/internal/app"
	"github.com/georgemunganga/pcstore/internal/platform/config"
	"github.com/georgemunganga/pcstore/internal/platform/logx"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
}

// NewRootCommand creates the root command for the pcstore CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pcstore",
		Short: "PC Store inventory manager",
		Long:  "Serve and administer the PC Store inventory: store configuration and product list.",

		// main prints the returned error once.
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewResetConfigCommand(opts))
	cmd.AddCommand(NewClearProductsCommand(opts))

	return cmd
}

// openApp loads configuration, initialises logging on stderr and opens the store.
func openApp(cmd *cobra.Command, opts *RootOptions) (*app.App, error) {
	cfg, _, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment(), Output: cmd.ErrOrStderr()})
	return app.New(cmd.Context(), cfg)
}
