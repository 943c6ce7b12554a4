package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/semcv/semcv/ai"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/vector"
)

// verbatimBoost is added to the score of hits whose text contains every
// significant query word. It breaks ties in favor of literal matches
// without letting keyword overlap dominate semantic similarity.
const verbatimBoost = 0.05

// Hit is one search result: a chunk with its provenance and score.
type Hit struct {
	VectorID string
	RecordId core.ID
	Section  string
	Text     string
	Score    float32
	Metadata map[string]any
}

// Searcher answers free-text queries over the chunk index.
type Searcher struct {
	store    vector.Store
	embedder ai.Embedder
	minScore float32
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithMinScore sets the minimum similarity score for a hit to be returned.
// Default is 0.60.
func WithMinScore(score float32) Option {
	return func(s *Searcher) error {
		if score < 0 || score > 1 {
			return ErrInvalidMinScore
		}
		s.minScore = score
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(store vector.Store, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		store:    store,
		embedder: embedder,
		minScore: 0.60,
		logger:   slog.Default().With("component", "searcher"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns up to maxHits chunks relevant to the query, best first.
func (s *Searcher) Search(ctx context.Context, query string, maxHits int) ([]*Hit, error) {
	if maxHits < 1 {
		return nil, core.ErrInvalidLimit
	}

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}

	// Over-fetch so the threshold filter still leaves maxHits candidates
	matches, err := s.store.Query(ctx, embedding, maxHits*2)
	if err != nil {
		s.logger.Error("error querying vector store", "err", err)
		return nil, err
	}

	hits := make([]*Hit, 0, len(matches))
	for _, match := range matches {
		if match.Score < s.minScore {
			continue
		}

		hit := hitFromMatch(match)
		if containsAllQueryWords(hit.Text, query) {
			hit.Score += verbatimBoost
		}
		hits = append(hits, hit)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > maxHits {
		hits = hits[:maxHits]
	}

	s.logger.Debug("search complete", "candidates", len(matches), "hits", len(hits))
	return hits, nil
}

// hitFromMatch pulls the chunk provenance out of the match metadata.
func hitFromMatch(match vector.Match) *Hit {
	hit := &Hit{
		VectorID: match.ID,
		Score:    match.Score,
		Metadata: match.Metadata,
	}
	if recordID, ok := match.Metadata["record_id"].(string); ok {
		hit.RecordId = core.ID(recordID)
	}
	if section, ok := match.Metadata["section"].(string); ok {
		hit.Section = section
	}
	if text, ok := match.Metadata["raw_text"].(string); ok {
		hit.Text = text
	}
	return hit
}
