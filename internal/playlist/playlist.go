// Package playlist writes M3U playlists for audio files on disk.
package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one song in a playlist.
type Entry struct {
	// Title is the track title used in extended info markers.
	Title string

	// Location is the path to the audio file.
	Location string

	// Duration is the track length in seconds. Negative means unknown and
	// renders as -1, the M3U convention for "no duration".
	Duration float64
}

// Playlist is an ordered list of songs destined for one .m3u file.
//
// Example:
//
//	p := playlist.New("/music/Queen/Jazz/Jazz.m3u")
//	p.Append(playlist.Entry{Title: "Mustapha", Location: "/music/Queen/Jazz/01 Mustapha.mp3", Duration: -1})
//	err := p.Write(true, true) // relative paths, #EXT markers
type Playlist struct {
	path    string
	entries []Entry
}

// New creates an empty playlist that Write will save to path.
func New(path string) *Playlist {
	return &Playlist{path: path}
}

// Path returns the file path the playlist will be written to.
func (p *Playlist) Path() string {
	return p.path
}

// Len returns the number of entries.
func (p *Playlist) Len() int {
	return len(p.entries)
}

// Append adds an entry to the end of the playlist.
func (p *Playlist) Append(e Entry) {
	p.entries = append(p.entries, e)
}

// Insert places an entry at position i, shifting later entries down.
// An out-of-range position is an error.
func (p *Playlist) Insert(i int, e Entry) error {
	if i < 0 || i > len(p.entries) {
		return fmt.Errorf("playlist position %d out of range [0,%d]", i, len(p.entries))
	}
	p.entries = append(p.entries, Entry{})
	copy(p.entries[i+1:], p.entries[i:])
	p.entries[i] = e
	return nil
}

// Remove deletes the first entry with the given location, reporting whether
// one was found.
func (p *Playlist) Remove(location string) bool {
	for i, e := range p.entries {
		if e.Location == location {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Content renders the playlist body.
//
// With markers enabled the output starts with #EXTM3U and each entry gets
// an #EXTINF line carrying its duration and title. With relative enabled
// entry locations are written relative to the playlist's own directory,
// which keeps the playlist valid when the music folder moves as a whole.
func (p *Playlist) Content(relative, markers bool) (string, error) {
	var b strings.Builder

	if markers {
		b.WriteString("#EXTM3U\n")
	}

	baseDir := filepath.Dir(p.path)
	for _, e := range p.entries {
		if markers {
			duration := -1
			if e.Duration >= 0 {
				duration = int(e.Duration)
			}
			fmt.Fprintf(&b, "#EXTINF:%d,%s\n", duration, e.Title)
		}

		location := e.Location
		if relative {
			rel, err := filepath.Rel(baseDir, e.Location)
			if err != nil {
				return "", fmt.Errorf("relativizing %s: %w", e.Location, err)
			}
			location = rel
		}
		b.WriteString(location + "\n")
	}

	return b.String(), nil
}

// Write renders the playlist and saves it to its path.
func (p *Playlist) Write(relative, markers bool) error {
	content, err := p.Content(relative, markers)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, []byte(content), 0644)
}
