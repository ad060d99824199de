// Package scan walks a directory tree and reads embedded metadata from the
// audio files it finds, producing one model.Triple per readable file.
//
// Files the tag readers cannot make sense of are skipped with a warning;
// the walk itself only fails when the root cannot be traversed.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
	"go.uber.org/zap"

	"github.com/vanceb/albums/internal/model"
)

// Scanner reads artist/album/title metadata from audio files under a
// directory root.
//
// Example:
//
//	scanner := scan.New(nil, logger)
//	cat := model.NewCatalog()
//	err := scanner.Walk("/home/music", func(path string, t model.Triple) {
//	    cat.Add(t)
//	})
type Scanner struct {
	exts map[string]struct{}
	log  *zap.Logger
}

// DefaultExtensions lists the audio file extensions considered during a
// walk when no explicit set is configured.
var DefaultExtensions = []string{".mp3", ".flac", ".ogg", ".wav", ".wma", ".mp4", ".m4a"}

// New creates a Scanner limited to the given file extensions (leading dot,
// case-insensitive). A nil or empty extensions slice means
// DefaultExtensions; a nil logger disables warnings.
func New(extensions []string, log *zap.Logger) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if log == nil {
		log = zap.NewNop()
	}

	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}

	return &Scanner{exts: exts, log: log}
}

// IsAudioFile reports whether path has one of the scanner's audio
// extensions.
func (s *Scanner) IsAudioFile(path string) bool {
	_, ok := s.exts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Walk traverses root recursively and calls emit once per audio file whose
// metadata could be read. Traversal order is not significant to the result.
//
// Unreadable files (corrupt or unsupported tags, permission errors on the
// file itself) are logged at warn level and skipped. Missing tag fields are
// replaced with the model placeholder values rather than dropping the file.
//
// Walk returns an error only when root itself cannot be walked.
func (s *Scanner) Walk(root string, emit func(path string, t model.Triple)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !s.IsAudioFile(path) {
			return nil
		}

		triple, err := s.readTags(path)
		if err != nil {
			s.log.Warn("skipping unreadable file",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		emit(path, triple)
		return nil
	})
}

// readTags extracts a triple from one audio file.
func (s *Scanner) readTags(path string) (model.Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Triple{}, err
	}
	defer f.Close()

	var artist, album, title string
	m, err := tag.ReadFrom(f)
	if err != nil {
		// Some mp3s carry ID3 framing that the generic reader rejects;
		// retry with the dedicated ID3v2 parser before giving up.
		if !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return model.Triple{}, err
		}
		var ok bool
		artist, album, title, ok = readID3(path)
		if !ok {
			return model.Triple{}, err
		}
	} else {
		artist = m.AlbumArtist()
		if artist == "" {
			artist = m.Artist()
		}
		album = m.Album()
		title = m.Title()
	}

	return s.fillPlaceholders(path, artist, album, title), nil
}

// readID3 reads artist/album/title from an mp3 using the id3v2 library in
// parse-only mode. The file is never written back.
//
// id3v2.Open succeeds with an empty tag on files carrying no ID3 header at
// all, so a frameless result means the file is unreadable, not untagged;
// ok is false in that case and the caller keeps its original read error.
func readID3(path string) (artist, album, title string, ok bool) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", "", "", false
	}
	defer t.Close()

	if !t.HasFrames() {
		return "", "", "", false
	}

	artist = t.GetTextFrame(t.CommonID("Band/Orchestra/Accompaniment")).Text
	if artist == "" {
		artist = t.Artist()
	}
	return artist, t.Album(), t.Title(), true
}

// fillPlaceholders substitutes recognizable placeholder values for missing
// fields, warning once per field.
func (s *Scanner) fillPlaceholders(path, artist, album, title string) model.Triple {
	if artist == "" {
		s.log.Warn("no artist tag", zap.String("path", path))
		artist = model.UnknownArtist
	}
	if album == "" {
		s.log.Warn("no album tag", zap.String("path", path))
		album = model.UnknownAlbum
	}
	if title == "" {
		s.log.Warn("no title tag", zap.String("path", path))
		title = model.UnknownTrack
	}
	return model.Triple{Artist: artist, Album: album, Title: title}
}
