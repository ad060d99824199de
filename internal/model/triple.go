package model

// Placeholder values used when a readable file or export record is missing
// a tag field. They are deliberately recognizable so they stand out in a
// catalog file instead of silently dropping the track.
const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
	UnknownTrack  = "Unknown Track"
)

// Triple is an (artist, album, track title) record.
//
// Both indexing sources - the directory scanner and the library export
// parser - emit triples, so the catalog builder never needs to know where
// a record came from.
type Triple struct {
	// Artist is the album artist if the source provides one,
	// falling back to the track artist.
	Artist string

	// Album is the album title.
	Album string

	// Title is the track title.
	Title string
}
