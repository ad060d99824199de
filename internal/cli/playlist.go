package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanceb/albums/internal/model"
	"github.com/vanceb/albums/internal/playlist"
	"github.com/vanceb/albums/internal/scan"
)

var playlistOutput string

var playlistCmd = &cobra.Command{
	Use:   "playlist <directory>",
	Short: "Write an M3U playlist of the audio files under a directory",
	Long: `Playlist scans a directory tree for audio files and writes an .m3u
playlist referencing them, one entry per readable file. Track titles come
from the embedded tags, falling back to the filename.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		info, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}

		out := playlistOutput
		if out == "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			out = filepath.Base(abs) + ".m3u"
		}
		absOut, err := filepath.Abs(out)
		if err != nil {
			return err
		}

		p := playlist.New(absOut)
		scanner := scan.New(settings.Extensions, logger)
		walkErr := scanner.Walk(dir, func(path string, t model.Triple) {
			absPath, err := filepath.Abs(path)
			if err != nil {
				absPath = path
			}
			title := t.Title
			if title == model.UnknownTrack {
				base := filepath.Base(path)
				title = strings.TrimSuffix(base, filepath.Ext(base))
			}
			// Tag readers give no duration; -1 marks it unknown in M3U.
			p.Append(playlist.Entry{Title: title, Location: absPath, Duration: -1})
		})
		if walkErr != nil {
			return walkErr
		}

		if err := p.Write(settings.PlaylistRelative, settings.PlaylistMarkers); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tracks\n", p.Path(), p.Len())
		return nil
	},
}

func init() {
	playlistCmd.Flags().StringVarP(&playlistOutput, "output", "o", "", "playlist file to write (default <directory name>.m3u)")
	rootCmd.AddCommand(playlistCmd)
}
