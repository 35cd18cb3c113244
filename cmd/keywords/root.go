package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/config"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/logging"
)

// commandContext carries state shared by all subcommands.
type commandContext struct {
	configFile string
	envFile    string
}

// loadConfig reads the configuration with the flags of cmd taking
// precedence over every other source.
func (c *commandContext) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(config.Options{
		File:    strings.TrimSpace(c.configFile),
		EnvFile: c.envFile,
		Flags:   cmd.Flags(),
	})
}

func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "keywords",
		Short:         "TF-IDF keyword extraction",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFile, "config", "c", "", "Configuration file path")
	flags.StringVar(&ctx.envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")

	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
