package snapshot

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DefaultPath is where the snapshot lives relative to the working directory.
const DefaultPath = "data/seed_snapshot.json"

// WriteFile persists the document as indented UTF-8 JSON, creating the
// parent directory when needed.
func WriteFile(path string, doc Document) error {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(payload, '\n'), 0o644)
}

// ReadFile loads a previously written snapshot. A missing, unreadable or
// malformed file yields nil, the absent marker: callers fall back to
// built-in defaults, they never fail on a bad snapshot.
func ReadFile(path string) *Document {
	if path == "" {
		path = DefaultPath
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("snapshot unreadable, falling back to defaults")
		}
		return nil
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("snapshot malformed, falling back to defaults")
		return nil
	}
	return &doc
}
