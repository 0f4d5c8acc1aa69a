package services

import "github.com/Sumandeep-Kaur/Hotel-Hunt/model"

// Suggester provides autocomplete suggestions for a prefix.
type Suggester interface {
	Suggest(prefix string) ([]string, error)
}

// SpellChecker verifies spelling against the corpus dictionary and
// proposes corrections for misspelled words.
type SpellChecker interface {
	IsCorrectlySpelled(word string) (bool, error)
	SuggestCorrections(word string) ([]string, error)
}

// HotelSearcher answers keyword queries against the inverted index.
// SearchByKeywords applies AND semantics across whitespace-separated
// keywords; both operations match token prefixes, not whole words.
type HotelSearcher interface {
	SearchByKeyword(keyword string) ([]model.Hotel, error)
	SearchByKeywords(keywords string) ([]model.Hotel, error)
}

// FrequencyRanker exposes corpus word frequencies.
type FrequencyRanker interface {
	TopWords(n int) ([]model.WordCount, error)
	WordFrequency(word string) (int, error)
	FrequencyMap() map[string]int
}

// SearchTracker records live search keywords and ranks them by how
// often they have been searched. This is the only component that is
// mutated after the build phase.
type SearchTracker interface {
	SearchAndUpdate(keyword string) (int, error)
	TopSearches(n int) ([]model.WordCount, error)
}

// HotelFinder serves the plain (non-indexed) hotel listing operations
// backed directly by the corpus files.
type HotelFinder interface {
	HotelsByCity(city string) ([]model.Hotel, error)
	HotelsSortedByRating() ([]model.Hotel, error)
}

// CityRanker ranks the per-city data files by how often the city name
// occurs in the corpus.
type CityRanker interface {
	RankedCities() []model.WordCount
}
