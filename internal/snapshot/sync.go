package snapshot

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Source yields the live content of every category.
type Source interface {
	Content() (Data, error)
}

// Invalidator drops any derived text cached from the content tables.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Syncer rebuilds and rewrites the snapshot file after admin mutations.
// The snapshot is best-effort: every failure is logged and swallowed so a
// sync problem can never fail the API call that triggered it.
type Syncer struct {
	source      Source
	path        string
	invalidator Invalidator
}

func NewSyncer(source Source, path string, invalidator Invalidator) *Syncer {
	if path == "" {
		path = DefaultPath
	}
	return &Syncer{source: source, path: path, invalidator: invalidator}
}

// Sync serializes the live store to the snapshot file and invalidates the
// derived-context cache. Safe to call on a nil Syncer.
func (s *Syncer) Sync(ctx context.Context) {
	if s == nil {
		return
	}
	data, err := s.source.Content()
	if err != nil {
		log.Error().Err(err).Msg("snapshot sync: loading content failed")
		return
	}
	if err := WriteFile(s.path, BuildDocument(data)); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("snapshot sync: write failed")
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
}

// Export writes the snapshot and reports any error, for the seeding CLI
// where the operator wants to know the export failed.
func (s *Syncer) Export() (Document, error) {
	data, err := s.source.Content()
	if err != nil {
		return Document{}, err
	}
	doc := BuildDocument(data)
	if err := WriteFile(s.path, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
