package source

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/typeahead/internal/utils"
)

// Frequency floors below which dictionary noise is dropped. Short or
// repetitive prefixes match so much of the trie that they get the stricter
// floor.
const (
	minFreqThreshold   = 20
	minFreqShortPrefix = 24
)

// Words is a prefix completer over a frequency-ranked word list, backed by
// a patricia trie. Lookups are case-insensitive; the prefix's own
// capitalization pattern is re-applied to every suggestion.
type Words struct {
	trie         *patricia.Trie
	wordFreqs    map[string]int
	totalWords   int
	maxFrequency int
	filter       bool
}

// NewWords returns an empty completer with input filtering enabled.
func NewWords() *Words {
	return &Words{
		trie:      patricia.NewTrie(),
		wordFreqs: make(map[string]int),
		filter:    true,
	}
}

// SetFilter toggles rejection of numeric/symbol/repetitive prefixes.
func (w *Words) SetFilter(enabled bool) {
	w.filter = enabled
}

// AddWord inserts a word with its frequency.
func (w *Words) AddWord(word string, frequency int) {
	w.trie.Insert(patricia.Prefix(strings.ToLower(word)), frequency)
	w.wordFreqs[word] = frequency
	w.totalWords++
	if frequency > w.maxFrequency {
		w.maxFrequency = frequency
	}
}

// Len returns the number of indexed words.
func (w *Words) Len() int {
	return w.totalWords
}

// Stats returns basic dictionary statistics.
func (w *Words) Stats() map[string]int {
	return map[string]int{
		"totalWords":   w.totalWords,
		"maxFrequency": w.maxFrequency,
	}
}

// Complete returns up to limit suggestions for prefix, ranked by frequency
// (highest first). The prefix itself is never suggested back.
func (w *Words) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" {
		return nil
	}
	if w.filter && !utils.IsValidInput(prefix) {
		return nil
	}

	lowerPrefix := strings.ToLower(prefix)

	// Remember which positions were capitalized
	capitalPositions := make([]bool, 0, len(prefix))
	for _, r := range prefix {
		capitalPositions = append(capitalPositions, r >= 'A' && r <= 'Z')
	}

	threshold := minFreqThreshold
	if len(lowerPrefix) <= 2 || utils.IsRepetitive(lowerPrefix) {
		threshold = minFreqShortPrefix
	}

	var suggestions []Suggestion
	err := w.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}
		freq, ok := item.(int)
		if !ok {
			log.Errorf("unexpected trie item type %T for word %s", item, p)
			freq = 1
		}
		if freq < threshold {
			return nil
		}
		suggestions = append(suggestions, Suggestion{
			Word:      applyCapitalization(word, capitalPositions),
			Frequency: freq,
		})
		return nil
	})
	if err != nil {
		log.Errorf("visiting trie subtree: %v", err)
		return nil
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Frequency > suggestions[j].Frequency
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// applyCapitalization projects the prefix's capitalization pattern onto a
// lowercase dictionary word.
func applyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}
	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] && wordRunes[i] >= 'a' && wordRunes[i] <= 'z' {
			wordRunes[i] = wordRunes[i] - 'a' + 'A'
		}
	}
	return string(wordRunes)
}
