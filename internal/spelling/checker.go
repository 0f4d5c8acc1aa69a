// Package spelling provides dictionary-backed spell checking with
// edit-distance correction suggestions ranked by corpus frequency.
package spelling

import (
	"container/heap"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/logger"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/tokenizer"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

// Checker holds the corpus dictionary and answers spell-check queries.
// The dictionary is built once from the corpus and is read-only
// afterwards, so a Checker may be shared across goroutines.
type Checker struct {
	dict           *patricia.Trie
	freq           map[string]int
	maxDistance    int
	maxSuggestions int
	logger         *log.Logger
}

// New creates an empty Checker. Corrections are accepted up to
// maxDistance edits away and at most maxSuggestions are returned.
func New(maxDistance, maxSuggestions int) *Checker {
	return &Checker{
		dict:           patricia.NewTrie(),
		freq:           make(map[string]int),
		maxDistance:    maxDistance,
		maxSuggestions: maxSuggestions,
		logger:         logger.New("spelling"),
	}
}

// Build populates the dictionary from every field of every hotel.
func (c *Checker) Build(hotels []model.Hotel) {
	for _, hotel := range hotels {
		for _, value := range hotel {
			c.AddText(value)
		}
	}
	c.logger.Info("dictionary built", "words", len(c.freq))
}

// AddText tokenizes text and adds each word to the dictionary,
// accumulating its occurrence count.
func (c *Checker) AddText(text string) {
	for _, tok := range tokenizer.Words(text) {
		c.dict.Set(patricia.Prefix(tok), struct{}{})
		c.freq[tok]++
	}
}

// IsCorrectlySpelled reports whether word appears in the corpus
// dictionary. Matching is case-insensitive.
func (c *Checker) IsCorrectlySpelled(word string) (bool, error) {
	w, err := normalize(word)
	if err != nil {
		return false, err
	}
	return c.dict.Match(patricia.Prefix(w)), nil
}

// SuggestCorrections returns up to maxSuggestions dictionary words
// within maxDistance edits of word, most frequent first. Ties are
// broken alphabetically. A correctly spelled word needs no
// corrections and yields an empty list.
func (c *Checker) SuggestCorrections(word string) ([]string, error) {
	w, err := normalize(word)
	if err != nil {
		return nil, err
	}

	if c.dict.Match(patricia.Prefix(w)) {
		return []string{}, nil
	}

	h := &suggestionHeap{}
	for dictWord, count := range c.freq {
		dist := distanceWithLimit(w, dictWord, c.maxDistance)
		if dist == 0 || dist > c.maxDistance {
			continue
		}
		heap.Push(h, model.WordCount{Word: dictWord, Count: count})
		if h.Len() > c.maxSuggestions {
			heap.Pop(h)
		}
	}

	suggestions := make([]string, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		suggestions[i] = heap.Pop(h).(model.WordCount).Word
	}
	return suggestions, nil
}

func normalize(word string) (string, error) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return "", apperrors.NewValidationError("word", "word must not be empty")
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", apperrors.NewValidationError("word", "word must contain only letters")
		}
	}
	return w, nil
}

// suggestionHeap is a min-heap ordered so that the weakest candidate
// sits at the root: the lowest count, and among equal counts the
// lexicographically largest word. Popping everything and reversing
// yields count-descending, word-ascending order.
type suggestionHeap []model.WordCount

func (h suggestionHeap) Len() int { return len(h) }

func (h suggestionHeap) Less(i, j int) bool {
	if h[i].Count != h[j].Count {
		return h[i].Count < h[j].Count
	}
	return h[i].Word > h[j].Word
}

func (h suggestionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *suggestionHeap) Push(x any) {
	*h = append(*h, x.(model.WordCount))
}

func (h *suggestionHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
