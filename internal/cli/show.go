package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanceb/albums/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <catalog>",
	Short: "Print a catalog as an indented tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := store.Load(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, artist := range cat.Artists() {
			fmt.Fprintln(w, artist.Name)
			for _, album := range artist.Albums() {
				fmt.Fprintf(w, "\t%s\n", album.Name)
				for _, title := range album.Tracks() {
					fmt.Fprintf(w, "\t\t%s\n", title)
				}
			}
		}

		s := cat.Stats()
		fmt.Fprintf(w, "\nArtists: %d\nAlbums: %d\nTracks: %d\n", s.Artists, s.Albums, s.Tracks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
