package model

import "sort"

// Album is one album by one artist: a display name plus a set of track
// titles. Track order is not significant; duplicate titles collapse.
type Album struct {
	// Name is the album title as first seen in the source.
	Name string

	// tracks maps normalized track titles to their display spelling.
	tracks map[string]string
}

func newAlbum(name string) *Album {
	return &Album{
		Name:   name,
		tracks: make(map[string]string),
	}
}

// AddTrack inserts a track title into the album's track set.
//
// Titles are deduplicated by their normalized form; the first-seen spelling
// is kept as the display name.
func (al *Album) AddTrack(title string) {
	key := Normalize(title)
	if _, ok := al.tracks[key]; !ok {
		al.tracks[key] = title
	}
}

// HasTrack reports whether the album contains a track matching title under
// the normalization policy.
func (al *Album) HasTrack(title string) bool {
	_, ok := al.tracks[Normalize(title)]
	return ok
}

// Tracks returns the display titles of all tracks, sorted.
func (al *Album) Tracks() []string {
	titles := make([]string, 0, len(al.tracks))
	for _, t := range al.tracks {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}

// Len returns the number of tracks in the album.
func (al *Album) Len() int {
	return len(al.tracks)
}

func (al *Album) equal(other *Album) bool {
	if al.Name != other.Name || len(al.tracks) != len(other.tracks) {
		return false
	}
	for key, title := range al.tracks {
		if other.tracks[key] != title {
			return false
		}
	}
	return true
}
