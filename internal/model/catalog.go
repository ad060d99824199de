package model

import "sort"

// Artist is one artist in a catalog: a display name plus the albums
// attributed to it, keyed by normalized album name.
type Artist struct {
	// Name is the artist name as first seen in the source.
	Name string

	albums map[string]*Album
}

func newArtist(name string) *Artist {
	return &Artist{
		Name:   name,
		albums: make(map[string]*Album),
	}
}

// AddAlbum returns the artist's album with the given name, creating it if
// this is the first time the name is seen.
func (a *Artist) AddAlbum(name string) *Album {
	key := Normalize(name)
	al, ok := a.albums[key]
	if !ok {
		al = newAlbum(name)
		a.albums[key] = al
	}
	return al
}

// Album looks up an album by name under the normalization policy.
func (a *Artist) Album(name string) (*Album, bool) {
	al, ok := a.albums[Normalize(name)]
	return al, ok
}

// Albums returns the artist's albums sorted by display name.
func (a *Artist) Albums() []*Album {
	albums := make([]*Album, 0, len(a.albums))
	for _, al := range a.albums {
		albums = append(albums, al)
	}
	sort.Slice(albums, func(i, j int) bool { return albums[i].Name < albums[j].Name })
	return albums
}

// Len returns the number of albums attributed to the artist.
func (a *Artist) Len() int {
	return len(a.albums)
}

func (a *Artist) equal(other *Artist) bool {
	if a.Name != other.Name || len(a.albums) != len(other.albums) {
		return false
	}
	for key, al := range a.albums {
		otherAlbum, ok := other.albums[key]
		if !ok || !al.equal(otherAlbum) {
			return false
		}
	}
	return true
}

// Catalog is the full Artist -> Album -> Track hierarchy for one collection
// snapshot. A catalog is built fresh per run by folding triples into it and
// is never incrementally updated once written.
//
// Example:
//
//	cat := model.NewCatalog()
//	cat.Add(model.Triple{Artist: "Queen", Album: "A Night at the Opera", Title: "Bohemian Rhapsody"})
//	for _, artist := range cat.Artists() {
//	    fmt.Println(artist.Name)
//	}
type Catalog struct {
	artists map[string]*Artist
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{artists: make(map[string]*Artist)}
}

// Add folds one triple into the catalog, creating the artist and album
// entries on first encounter. Duplicate triples collapse (set semantics),
// so Add is idempotent for identical input.
func (c *Catalog) Add(t Triple) {
	c.AddArtist(t.Artist).AddAlbum(t.Album).AddTrack(t.Title)
}

// AddArtist returns the artist with the given name, creating an entry with
// no albums if the name has not been seen before.
func (c *Catalog) AddArtist(name string) *Artist {
	key := Normalize(name)
	a, ok := c.artists[key]
	if !ok {
		a = newArtist(name)
		c.artists[key] = a
	}
	return a
}

// Artist looks up an artist by name under the normalization policy.
func (c *Catalog) Artist(name string) (*Artist, bool) {
	a, ok := c.artists[Normalize(name)]
	return a, ok
}

// Artists returns all artists sorted by display name.
func (c *Catalog) Artists() []*Artist {
	artists := make([]*Artist, 0, len(c.artists))
	for _, a := range c.artists {
		artists = append(artists, a)
	}
	sort.Slice(artists, func(i, j int) bool { return artists[i].Name < artists[j].Name })
	return artists
}

// Len returns the number of artists in the catalog.
func (c *Catalog) Len() int {
	return len(c.artists)
}

// Equal reports structural equality: the same artists, albums and track
// sets, including display spellings.
func (c *Catalog) Equal(other *Catalog) bool {
	if len(c.artists) != len(other.artists) {
		return false
	}
	for key, a := range c.artists {
		otherArtist, ok := other.artists[key]
		if !ok || !a.equal(otherArtist) {
			return false
		}
	}
	return true
}

// Stats summarizes a catalog's size.
type Stats struct {
	Artists int
	Albums  int
	Tracks  int
}

// Stats counts the artists, albums and tracks in the catalog.
func (c *Catalog) Stats() Stats {
	s := Stats{Artists: len(c.artists)}
	for _, a := range c.artists {
		s.Albums += len(a.albums)
		for _, al := range a.albums {
			s.Tracks += al.Len()
		}
	}
	return s
}
