package source

import (
	"github.com/sahilm/fuzzy"
)

// Static completes against a fixed candidate list using fuzzy matching, for
// fields whose suggestion space is small and known up front (commands,
// field names, tags).
type Static struct {
	candidates []string
}

// NewStatic builds a static fuzzy completer over candidates.
func NewStatic(candidates []string) *Static {
	return &Static{candidates: candidates}
}

// Complete fuzzy-matches term against the candidate list, best matches
// first. The match score is carried in Frequency.
func (s *Static) Complete(term string, limit int) []Suggestion {
	if term == "" {
		return nil
	}
	matches := fuzzy.Find(term, s.candidates)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	suggestions := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, Suggestion{
			Word:      m.Str,
			Frequency: m.Score,
		})
	}
	return suggestions
}
