// Package itunes parses iTunes library exports (plist XML) into catalog
// triples.
//
// An export contains a flat "Tracks" dictionary keyed by track ID. Each
// record carries the artist/album/name fields this tool cares about plus a
// number of fields it ignores (bit rate, play counts, file location).
package itunes

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"howett.net/plist"

	"github.com/vanceb/albums/internal/model"
)

// library mirrors the top level of an iTunes export. Only the Tracks
// dictionary is decoded; records stay untyped so one malformed record
// cannot fail the whole document.
type library struct {
	Tracks map[string]interface{} `plist:"Tracks"`
}

// Parse reads an iTunes plist export and calls emit once per usable track
// record.
//
// Field fallbacks match iTunes conventions: the record's "Album Artist" is
// preferred, then "Artist"; a record with neither is skipped with a warning.
// A missing "Album" or "Name" is replaced with the model placeholder value.
//
// A document that is not a well-formed plist, or that has no Tracks
// dictionary, is a fatal parse error. A nil logger disables warnings.
func Parse(path string, log *zap.Logger, emit func(t model.Triple)) error {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var lib library
	if _, err := plist.Unmarshal(data, &lib); err != nil {
		return fmt.Errorf("parsing library export %s: %w", path, err)
	}
	if lib.Tracks == nil {
		return fmt.Errorf("library export %s has no Tracks dictionary", path)
	}

	// Sorted IDs keep warnings stable across runs.
	ids := make([]string, 0, len(lib.Tracks))
	for id := range lib.Tracks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		record, ok := lib.Tracks[id].(map[string]interface{})
		if !ok {
			log.Warn("malformed track record", zap.String("trackID", id))
			continue
		}

		artist := stringField(record, "Album Artist")
		if artist == "" {
			artist = stringField(record, "Artist")
		}
		if artist == "" {
			log.Warn("no artist in track record", zap.String("trackID", id))
			continue
		}

		album := stringField(record, "Album")
		if album == "" {
			log.Warn("no album in track record", zap.String("trackID", id))
			album = model.UnknownAlbum
		}

		title := stringField(record, "Name")
		if title == "" {
			log.Warn("no name in track record", zap.String("trackID", id))
			title = model.UnknownTrack
		}

		emit(model.Triple{Artist: artist, Album: album, Title: title})
	}

	return nil
}

// stringField returns the named record field if present and a string,
// otherwise "".
func stringField(record map[string]interface{}, key string) string {
	v, ok := record[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
