package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanceb/albums/internal/itunes"
	"github.com/vanceb/albums/internal/model"
	"github.com/vanceb/albums/internal/scan"
	"github.com/vanceb/albums/internal/store"
)

var indexOutput string

var indexCmd = &cobra.Command{
	Use:   "index <path>...",
	Short: "Build a catalog file from a music source",
	Long: `Index builds an artist -> album -> track catalog from each given source
and writes it as a YAML catalog file in the working directory.

A source is either a directory tree of audio files (metadata read from the
embedded tags, unreadable files skipped with a warning) or an iTunes library
export (.xml or .plist).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if indexOutput != "" && len(args) > 1 {
			return fmt.Errorf("--output cannot be combined with multiple sources")
		}
		for _, location := range args {
			if err := indexOne(cmd, location); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "", "catalog file to write (default <source basename> + catalog extension)")
	rootCmd.AddCommand(indexCmd)
}

func indexOne(cmd *cobra.Command, location string) error {
	cat, name, err := buildCatalog(location)
	if err != nil {
		return err
	}

	out := indexOutput
	if out == "" {
		out = name + settings.CatalogExtension
	}
	if err := store.Save(out, cat); err != nil {
		return err
	}

	stats := cat.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d artists, %d albums, %d tracks -> %s\n",
		location, stats.Artists, stats.Albums, stats.Tracks, out)
	return nil
}

// buildCatalog indexes one source and returns the catalog plus the source
// basename used to derive the default output filename.
func buildCatalog(location string) (*model.Catalog, string, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, "", err
	}

	cat := model.NewCatalog()
	switch {
	case info.IsDir():
		scanner := scan.New(settings.Extensions, logger)
		err = scanner.Walk(location, func(_ string, t model.Triple) { cat.Add(t) })
	default:
		switch strings.ToLower(filepath.Ext(location)) {
		case ".xml", ".plist":
			err = itunes.Parse(location, logger, cat.Add)
		default:
			err = fmt.Errorf("unrecognized source type: %s (expected a directory or an .xml/.plist export)", location)
		}
	}
	if err != nil {
		return nil, "", err
	}

	base := filepath.Base(filepath.Clean(location))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "index"
	}
	return cat, name, nil
}
