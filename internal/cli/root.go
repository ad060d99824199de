// Package cli implements the albums command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vanceb/albums/internal/config"
	"github.com/vanceb/albums/internal/logging"
)

var (
	settings *config.Settings
	logger   *zap.Logger

	cfgFile  string
	logLevel string
)

// rootCmd is the base command when albums is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "albums",
	Short: "Index and compare music collections",
	Long: `Albums builds an artist -> album -> track catalog of a music collection
and compares catalogs to spot what one collection is missing from another.

A catalog can be built from a directory of audio files (metadata read from
the embedded tags) or from an iTunes library export. Catalogs are plain YAML
files, so they stay readable and diffable on their own.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		level := settings.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the command tree. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath(), "path to the settings file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", "", "log level: none, debug, info, warn, error (default from settings)")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".albums.json"
	}
	return filepath.Join(home, ".albums.json")
}
