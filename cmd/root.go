package cmd

import (
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/config"
	"github.com/cloudposse/tokenicon/pkg/icon"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/schema"
)

var (
	// cliConfig is loaded once per invocation in PersistentPreRunE.
	cliConfig schema.Configuration

	configPath string
	logsLevel  string

	// bundledLoader supplies the default icon checked at startup. Tests replace it.
	bundledLoader icon.ResourceLoader = icon.EmbeddedLoader{}
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "tokenicon",
	Short: "Resolve and manage the display identity of one-time-password tokens",
	Long: `tokenicon decides which icon and background color a token is shown with,
manages user-assigned custom icons, and edits the issuer, label and lock state of stored tokens.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		isHelpRequested := cmd.Name() == "help" || cmd.Flags().Changed("help")
		if isHelpRequested {
			cmd.SilenceUsage = false
			cmd.SilenceErrors = false
			return nil
		}

		// Errors are printed by main with the structured formatter.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		if err := initCliConfig(); err != nil {
			return err
		}

		// A build without the bundled default icon cannot render placeholders.
		icon.MustLoadDefault(bundledLoader)
		return nil
	},
}

func initCliConfig() error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if logsLevel != "" {
		cfg.Logs.Level = logsLevel
	}

	l, err := log.NewLoggerFromConfig(cfg.Logs)
	if err != nil {
		return errUtils.Build(errUtils.ErrInvalidConfigValue).
			WithCause(err).
			WithContext("key", "logs.level").
			WithHint("Use one of Trace, Debug, Info, Warning, Off").
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}
	log.SetDefault(l)

	cliConfig = cfg
	log.Debug("Loaded configuration", "path", cfg.CliConfigPath)
	return nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to tokenicon.yaml or a directory containing it")
	RootCmd.PersistentFlags().StringVar(&logsLevel, "logs-level", "", "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off")
}
