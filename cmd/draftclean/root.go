package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/JonMunkholm/draftclean/internal/config"
	"github.com/JonMunkholm/draftclean/internal/core"
	"github.com/JonMunkholm/draftclean/internal/logging"
	"github.com/JonMunkholm/draftclean/internal/pipeline"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var envFile string
	var showSummary bool

	rootCmd := &cobra.Command{
		Use:   "draftclean [source] [destination]",
		Short: "Split combined Team/Position values and reorder draft columns",
		Long: "draftclean reads a delimited draft file, splits Team values such as \"KciD\" into\n" +
			"Team and Position when the Position column is empty, reorders the columns to\n" +
			"Rank, Player, Team, Position followed by the rest, and writes a new file.\n\n" +
			"Paths default to SOURCE_PATH and DESTINATION_PATH.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(envFile); err != nil {
				return core.NewUnexpectedError("load env file", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return core.NewUnexpectedError("configure", err)
			}

			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

			var source, destination string
			if len(args) > 0 {
				source = args[0]
			}
			if len(args) > 1 {
				destination = args[1]
			}
			if err := cfg.OverridePaths(source, destination); err != nil {
				return core.NewUnexpectedError("configure", err)
			}

			slog.Debug("configuration loaded", "config", cfg.String())

			summary, err := pipeline.New(afero.NewOsFs(), cfg).Run(cmd.Context(), cfg.Paths.Source, cfg.Paths.Destination)
			if err != nil {
				return err
			}

			if showSummary {
				fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Processed data saved to %s\n", summary.Destination)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")
	rootCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a table of how rows were normalized")

	return rootCmd
}

// loadEnvFile loads variables from path, overwriting the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Overload(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no env file found, using environment variables", "path", path)
			return nil
		}
		return err
	}
	slog.Debug("loaded env file", "path", path)
	return nil
}
