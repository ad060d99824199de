// Package store persists catalogs as YAML files.
//
// The on-disk shape mirrors the catalog hierarchy directly: artist names
// are top-level keys, album names are nested keys, and each album maps to
// a sorted sequence of track titles:
//
//	Queen:
//	  A Night at the Opera:
//	  - Bohemian Rhapsody
//	  - You're My Best Friend
//
// An artist with no albums serializes as an empty map, which keeps it
// distinct from an absent artist. Load(Save(c)) always equals c.
package store

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vanceb/albums/internal/model"
)

// ParseError describes a catalog file that is not well-formed YAML or does
// not follow the artist -> album -> track-list nesting shape.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid catalog file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Encode writes the catalog to w as YAML.
func Encode(w io.Writer, c *model.Catalog) error {
	raw := make(map[string]map[string][]string, c.Len())
	for _, artist := range c.Artists() {
		albums := make(map[string][]string, artist.Len())
		for _, album := range artist.Albums() {
			albums[album.Name] = album.Tracks()
		}
		raw[artist.Name] = albums
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a YAML catalog from r. Shape violations surface as errors;
// wrap them with the file path at the call site.
func Decode(r io.Reader) (*model.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw map[string]map[string][]string
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return nil, err
	}

	c := model.NewCatalog()
	for artistName, albums := range raw {
		artist := c.AddArtist(artistName)
		for albumName, tracks := range albums {
			album := artist.AddAlbum(albumName)
			for _, title := range tracks {
				album.AddTrack(title)
			}
		}
	}
	return c, nil
}

// Save writes the catalog to path, creating or truncating the file.
func Save(path string, c *model.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a catalog file written by Save.
//
// A missing or unreadable file returns the underlying I/O error; a file
// that cannot be decoded returns a *ParseError naming the file.
func Load(path string) (*model.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return c, nil
}
