package diff

import (
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

func TestCompare_ArtistEntirelyMissing(t *testing.T) {
	ref := buildCatalog(model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "Bohemian Rhapsody"})
	test := model.NewCatalog()

	report := Compare(ref, test)
	require.False(t, report.Empty())

	// The artist reports as one missing entry, not expanded into albums
	// and tracks.
	assert.Equal(t, []string{"Queen"}, report.MissingArtists)
	assert.Empty(t, report.ExtraArtists)
	assert.Empty(t, report.Artists)
}

func TestCompare_MissingTrack(t *testing.T) {
	ref := buildCatalog(
		model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "Bohemian Rhapsody"},
		model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "You're My Best Friend"},
	)
	test := buildCatalog(
		model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "Bohemian Rhapsody"},
	)

	report := Compare(ref, test)
	require.Len(t, report.Artists, 1)
	require.Len(t, report.Artists[0].Albums, 1)

	album := report.Artists[0].Albums[0]
	assert.Equal(t, "A Night at the Opera", album.Name)
	assert.Equal(t, []string{"You're My Best Friend"}, album.MissingTracks)
	assert.Empty(t, album.ExtraTracks)
}

func TestCompare_IdenticalCatalogs(t *testing.T) {
	triples := []model.Triple{
		{Artist: "Queen", Album: "Jazz", Title: "Mustapha"},
		{Artist: "ABBA", Album: "Arrival", Title: "Dancing Queen"},
	}

	report := Compare(buildCatalog(triples...), buildCatalog(triples...))
	assert.True(t, report.Empty())
}

func TestCompare_Symmetry(t *testing.T) {
	a := buildCatalog(
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Mustapha"},
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Bicycle Race"},
		model.Triple{Artist: "ABBA", Album: "Arrival", Title: "Dancing Queen"},
	)
	b := buildCatalog(
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Mustapha"},
		model.Triple{Artist: "ZZ Top", Album: "Eliminator", Title: "Legs"},
	)

	ab := Compare(a, b)
	ba := Compare(b, a)

	// Swapping the inputs swaps missing and extra for the same entries.
	assert.Equal(t, ab.MissingArtists, ba.ExtraArtists)
	assert.Equal(t, ab.ExtraArtists, ba.MissingArtists)

	require.Len(t, ab.Artists, 1)
	require.Len(t, ba.Artists, 1)
	assert.Equal(t, ab.Artists[0].Albums[0].MissingTracks, ba.Artists[0].Albums[0].ExtraTracks)
}

func TestCompare_NormalizedMatching(t *testing.T) {
	ref := buildCatalog(model.Triple{Artist: "Queen", Album: "Jazz", Title: "Don't Stop Me Now"})
	test := buildCatalog(model.Triple{Artist: "queen", Album: "JAZZ", Title: "Dont Stop Me Now!"})

	report := Compare(ref, test)
	assert.True(t, report.Empty(), "punctuation and case differences should not diff")
}

func TestCompare_MissingAndExtraAlbums(t *testing.T) {
	ref := buildCatalog(
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Mustapha"},
		model.Triple{Artist: "Queen", Album: "News of the World", Title: "We Will Rock You"},
	)
	test := buildCatalog(
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Mustapha"},
		model.Triple{Artist: "Queen", Album: "The Game", Title: "Save Me"},
	)

	report := Compare(ref, test)
	require.Len(t, report.Artists, 1)

	artist := report.Artists[0]
	assert.Equal(t, []string{"News of the World"}, artist.MissingAlbums)
	assert.Equal(t, []string{"The Game"}, artist.ExtraAlbums)
	assert.Empty(t, artist.Albums)
}

func TestCompare_SortedReport(t *testing.T) {
	ref := buildCatalog(
		model.Triple{Artist: "ZZ Top", Album: "Eliminator", Title: "Legs"},
		model.Triple{Artist: "ABBA", Album: "Arrival", Title: "Dancing Queen"},
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Mustapha"},
	)
	report := Compare(ref, model.NewCatalog())
	assert.Equal(t, []string{"ABBA", "Queen", "ZZ Top"}, report.MissingArtists)
}

func TestRenderer_Render(t *testing.T) {
	ref := buildCatalog(
		model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "Bohemian Rhapsody"},
		model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "You're My Best Friend"},
		model.Triple{Artist: "Led Zeppelin", Album: "IV", Title: "Black Dog"},
	)
	test := buildCatalog(
		model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "Bohemian Rhapsody"},
		model.Triple{Artist: "The Beatles", Album: "Abbey Road", Title: "Come Together"},
	)

	out := NewRenderer().Render(Compare(ref, test))

	assert.Contains(t, out, "- Led Zeppelin")
	assert.Contains(t, out, "+ The Beatles")
	assert.Contains(t, out, "Queen")
	assert.Contains(t, out, "- You're My Best Friend")
	assert.NotContains(t, out, "Bohemian Rhapsody", "unchanged tracks stay out of the report")
}

func TestRenderer_EmptyReport(t *testing.T) {
	out := NewRenderer().Render(&Report{})
	assert.Equal(t, "", out)
}

func TestRenderer_Indentation(t *testing.T) {
	ref := buildCatalog(
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Mustapha"},
		model.Triple{Artist: "Queen", Album: "Jazz", Title: "Bicycle Race"},
	)
	test := buildCatalog(model.Triple{Artist: "Queen", Album: "Jazz", Title: "Mustapha"})

	out := NewRenderer().Render(Compare(ref, test))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.False(t, strings.HasPrefix(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.True(t, strings.HasPrefix(lines[2], "    "))
}
