// Package ranking orders the city data files by how prominent the
// city name is in the corpus.
package ranking

import (
	"sort"
	"strings"

	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/corpus"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/tokenizer"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

// PageRanker scores each city file by the corpus frequency of the
// words in its name. Multi-word city names sum their word scores.
type PageRanker struct {
	ranked []model.WordCount
}

// New ranks cities against the given corpus word frequencies. The
// ranking is computed once up front; RankedCities just returns it.
func New(cities []corpus.City, freqs map[string]int) *PageRanker {
	ranked := make([]model.WordCount, 0, len(cities))
	for _, city := range cities {
		score := 0
		for _, word := range tokenizer.Words(strings.ToLower(city.Name)) {
			score += freqs[word]
		}
		ranked = append(ranked, model.WordCount{Word: city.Name, Count: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	return &PageRanker{ranked: ranked}
}

// RankedCities returns the cities ordered by descending score, ties
// broken alphabetically.
func (p *PageRanker) RankedCities() []model.WordCount {
	return p.ranked
}
