package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer turns a Report into an indented, human-readable text report.
//
// Missing entries render as red "- " lines, extra entries as green "+ "
// lines, grouped under their artist and album headers:
//
//	Queen
//	  A Night at the Opera
//	    - You're My Best Friend
//	- Led Zeppelin
//	+ The Beatles
//
// Styling degrades to plain text on terminals without color support.
type Renderer struct {
	header  lipgloss.Style
	missing lipgloss.Style
	extra   lipgloss.Style
}

// NewRenderer creates a Renderer with the default styles.
func NewRenderer() *Renderer {
	return &Renderer{
		header:  lipgloss.NewStyle().Bold(true),
		missing: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		extra:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Render returns the full report as a string. For an empty report it
// returns "".
func (r *Renderer) Render(report *Report) string {
	if report.Empty() {
		return ""
	}

	var b strings.Builder

	for _, name := range report.MissingArtists {
		fmt.Fprintln(&b, r.missing.Render("- "+name))
	}
	for _, name := range report.ExtraArtists {
		fmt.Fprintln(&b, r.extra.Render("+ "+name))
	}

	for _, artist := range report.Artists {
		fmt.Fprintln(&b, r.header.Render(artist.Name))
		for _, name := range artist.MissingAlbums {
			fmt.Fprintln(&b, "  "+r.missing.Render("- "+name))
		}
		for _, name := range artist.ExtraAlbums {
			fmt.Fprintln(&b, "  "+r.extra.Render("+ "+name))
		}
		for _, album := range artist.Albums {
			fmt.Fprintln(&b, "  "+r.header.Render(album.Name))
			for _, title := range album.MissingTracks {
				fmt.Fprintln(&b, "    "+r.missing.Render("- "+title))
			}
			for _, title := range album.ExtraTracks {
				fmt.Fprintln(&b, "    "+r.extra.Render("+ "+title))
			}
		}
	}

	return b.String()
}

// Write renders the report to w.
func (r *Renderer) Write(w io.Writer, report *Report) error {
	_, err := io.WriteString(w, r.Render(report))
	return err
}
