// Package diff compares two catalogs and reports what the test catalog is
// missing relative to the reference, and what it has extra.
package diff

import (
	"github.com/vanceb/albums/internal/model"
)

// AlbumDiff lists track-level differences for an album present in both
// catalogs.
type AlbumDiff struct {
	// Name is the album's display name from the reference catalog.
	Name string

	// MissingTracks are present in reference but absent in test.
	MissingTracks []string

	// ExtraTracks are present in test but absent in reference.
	ExtraTracks []string
}

// ArtistDiff lists album-level differences for an artist present in both
// catalogs.
type ArtistDiff struct {
	// Name is the artist's display name from the reference catalog.
	Name string

	// MissingAlbums are entirely absent from the test catalog's artist.
	MissingAlbums []string

	// ExtraAlbums appear only under the test catalog's artist.
	ExtraAlbums []string

	// Albums holds track-level diffs for albums present in both catalogs.
	Albums []AlbumDiff
}

// Report is the result of comparing a reference catalog against a test
// catalog. Artists and albums with no differences are omitted; all slices
// are sorted by name so reports are stable and diffable across runs.
type Report struct {
	// MissingArtists are entirely absent from the test catalog. They are
	// not expanded into their albums and tracks.
	MissingArtists []string

	// ExtraArtists appear only in the test catalog.
	ExtraArtists []string

	// Artists holds nested diffs for artists present in both catalogs.
	Artists []ArtistDiff
}

// Empty reports whether the two catalogs matched exactly.
func (r *Report) Empty() bool {
	return len(r.MissingArtists) == 0 && len(r.ExtraArtists) == 0 && len(r.Artists) == 0
}

// Compare computes the differences between a reference and a test catalog.
//
// At every level an entry counts as present when its normalized name
// matches; there is no fuzzy matching. Missing entries carry the
// reference's display spelling, extra entries the test's.
func Compare(ref, test *model.Catalog) *Report {
	report := &Report{}

	for _, refArtist := range ref.Artists() {
		testArtist, ok := test.Artist(refArtist.Name)
		if !ok {
			report.MissingArtists = append(report.MissingArtists, refArtist.Name)
			continue
		}
		if d := compareArtist(refArtist, testArtist); d != nil {
			report.Artists = append(report.Artists, *d)
		}
	}

	for _, testArtist := range test.Artists() {
		if _, ok := ref.Artist(testArtist.Name); !ok {
			report.ExtraArtists = append(report.ExtraArtists, testArtist.Name)
		}
	}

	return report
}

// compareArtist diffs two matching artists, returning nil when they agree.
func compareArtist(refArtist, testArtist *model.Artist) *ArtistDiff {
	d := &ArtistDiff{Name: refArtist.Name}

	for _, refAlbum := range refArtist.Albums() {
		testAlbum, ok := testArtist.Album(refAlbum.Name)
		if !ok {
			d.MissingAlbums = append(d.MissingAlbums, refAlbum.Name)
			continue
		}
		if a := compareAlbum(refAlbum, testAlbum); a != nil {
			d.Albums = append(d.Albums, *a)
		}
	}

	for _, testAlbum := range testArtist.Albums() {
		if _, ok := refArtist.Album(testAlbum.Name); !ok {
			d.ExtraAlbums = append(d.ExtraAlbums, testAlbum.Name)
		}
	}

	if len(d.MissingAlbums) == 0 && len(d.ExtraAlbums) == 0 && len(d.Albums) == 0 {
		return nil
	}
	return d
}

// compareAlbum diffs the track sets of two matching albums, returning nil
// when they agree.
func compareAlbum(refAlbum, testAlbum *model.Album) *AlbumDiff {
	a := &AlbumDiff{Name: refAlbum.Name}

	for _, title := range refAlbum.Tracks() {
		if !testAlbum.HasTrack(title) {
			a.MissingTracks = append(a.MissingTracks, title)
		}
	}
	for _, title := range testAlbum.Tracks() {
		if !refAlbum.HasTrack(title) {
			a.ExtraTracks = append(a.ExtraTracks, title)
		}
	}

	if len(a.MissingTracks) == 0 && len(a.ExtraTracks) == 0 {
		return nil
	}
	return a
}
