// Package frequency tracks word occurrence counts, both static corpus
// frequencies and live search-term frequencies.
package frequency

import (
	"container/heap"
	"strings"

	"github.com/charmbracelet/log"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/logger"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/tokenizer"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

// Counter accumulates corpus word frequencies. Single-letter words and
// configured stopwords are excluded. After Build the counter is
// read-only and safe for concurrent use.
type Counter struct {
	counts    map[string]int
	stopwords map[string]struct{}
	logger    *log.Logger
}

// NewCounter creates an empty Counter with the given stopword list.
func NewCounter(stopwords []string) *Counter {
	stop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return &Counter{
		counts:    make(map[string]int),
		stopwords: stop,
		logger:    logger.New("frequency"),
	}
}

// Build counts words across every field of every hotel.
func (c *Counter) Build(hotels []model.Hotel) {
	for _, hotel := range hotels {
		for _, value := range hotel {
			c.AddText(value)
		}
	}
	c.logger.Info("corpus counted", "words", len(c.counts))
}

// AddText counts the words of text, skipping stopwords and words
// shorter than two letters.
func (c *Counter) AddText(text string) {
	for _, tok := range tokenizer.Words(text) {
		if len(tok) < 2 {
			continue
		}
		if _, skip := c.stopwords[tok]; skip {
			continue
		}
		c.counts[tok]++
	}
}

// TopWords returns the n most frequent corpus words, most frequent
// first, ties broken alphabetically. Fewer than n words may be
// returned when the corpus is small.
func (c *Counter) TopWords(n int) ([]model.WordCount, error) {
	if n <= 0 {
		return nil, apperrors.NewValidationError("n", "n must be positive")
	}
	return topK(c.counts, n), nil
}

// WordFrequency returns the corpus count of word, zero if absent.
func (c *Counter) WordFrequency(word string) (int, error) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return 0, apperrors.NewValidationError("word", "word must not be empty")
	}
	return c.counts[w], nil
}

// FrequencyMap returns a copy of the counts. Callers get their own
// map so the internal table can never be mutated from outside.
func (c *Counter) FrequencyMap() map[string]int {
	out := make(map[string]int, len(c.counts))
	for word, count := range c.counts {
		out[word] = count
	}
	return out
}

// topK selects the k highest-count entries of counts using a bounded
// min-heap, so selection cost is O(len(counts) log k) and the result
// order does not depend on map iteration order.
func topK(counts map[string]int, k int) []model.WordCount {
	h := &wordCountHeap{}
	for word, count := range counts {
		heap.Push(h, model.WordCount{Word: word, Count: count})
		if h.Len() > k {
			heap.Pop(h)
		}
	}

	out := make([]model.WordCount, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(model.WordCount)
	}
	return out
}

// wordCountHeap is a min-heap whose root is the weakest entry: lowest
// count, and among equal counts the lexicographically largest word.
type wordCountHeap []model.WordCount

func (h wordCountHeap) Len() int { return len(h) }

func (h wordCountHeap) Less(i, j int) bool {
	if h[i].Count != h[j].Count {
		return h[i].Count < h[j].Count
	}
	return h[i].Word > h[j].Word
}

func (h wordCountHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *wordCountHeap) Push(x any) {
	*h = append(*h, x.(model.WordCount))
}

func (h *wordCountHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
