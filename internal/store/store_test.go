package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanceb/albums/internal/model"
)

func buildCatalog(triples ...model.Triple) *model.Catalog {
	c := model.NewCatalog()
	for _, t := range triples {
		c.Add(t)
	}
	return c
}

func TestRoundTrip(t *testing.T) {
	cat := buildCatalog(
		model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "Bohemian Rhapsody"},
		model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "You're My Best Friend"},
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Don't Stop Me Now"},
		model.Triple{Artist: "AC/DC", Album: "Back in Black", Title: "Hells Bells"},
	)

	path := filepath.Join(t.TempDir(), "music.yml")
	require.NoError(t, Save(path, cat))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cat.Equal(loaded), "Load(Save(c)) should equal c")
}

func TestRoundTrip_EmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, Save(path, model.NewCatalog()))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestRoundTrip_ArtistWithNoAlbums(t *testing.T) {
	cat := model.NewCatalog()
	cat.AddArtist("Queen")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cat))
	assert.Contains(t, buf.String(), "Queen: {}",
		"an artist with no albums must stay distinct from an absent artist")

	loaded, err := Decode(&buf)
	require.NoError(t, err)
	require.True(t, cat.Equal(loaded))
	_, ok := loaded.Artist("Queen")
	assert.True(t, ok)
}

func TestEncode_SortedOutput(t *testing.T) {
	cat := buildCatalog(
		model.Triple{Artist: "ZZ Top", Album: "Eliminator", Title: "Legs"},
		model.Triple{Artist: "ABBA", Album: "Arrival", Title: "Money, Money, Money"},
		model.Triple{Artist: "ABBA", Album: "Arrival", Title: "Dancing Queen"},
	)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cat))

	out := buf.String()
	assert.Less(t, strings.Index(out, "ABBA"), strings.Index(out, "ZZ Top"),
		"artists should serialize in sorted order")
	assert.Less(t, strings.Index(out, "Dancing Queen"), strings.Index(out, "Money, Money, Money"),
		"tracks should serialize in sorted order")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("{unclosed: ["), 0644))

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "error should be a *ParseError")
	assert.Equal(t, path, parseErr.Path)
	assert.Contains(t, err.Error(), path, "message should identify the offending file")
}

func TestLoad_WrongShape(t *testing.T) {
	// Tracks nested one level too deep.
	path := filepath.Join(t.TempDir(), "shape.yml")
	content := "Queen:\n  Jazz:\n    Disc 1:\n    - Mustapha\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "shape violation should be a *ParseError, got %v", err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)

	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr), "missing file is an I/O error, not a parse error")
}
