package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

// AutocompleteResponse is the JSON shape of an autocomplete query.
type AutocompleteResponse struct {
	QueryID     string   `json:"query_id"`
	Prefix      string   `json:"prefix"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
	Took        string   `json:"took"`
}

// AutocompleteHandler completes the "prefix" query parameter against
// the indexed hotel fields.
func (api *API) AutocompleteHandler(c *gin.Context) {
	start := time.Now()
	prefix := c.Query("prefix")

	suggestions, err := api.suggester.Suggest(prefix)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, AutocompleteResponse{
		QueryID:     uuid.NewString(),
		Prefix:      prefix,
		Suggestions: suggestions,
		Count:       len(suggestions),
		Took:        time.Since(start).String(),
	})
}

// SpellCheckResponse is the JSON shape of a spell-check query.
type SpellCheckResponse struct {
	QueryID     string   `json:"query_id"`
	Word        string   `json:"word"`
	Correct     bool     `json:"correct"`
	Suggestions []string `json:"suggestions"`
}

// SpellCheckHandler verifies the "word" query parameter against the
// corpus dictionary and proposes corrections when it is misspelled.
func (api *API) SpellCheckHandler(c *gin.Context) {
	word := c.Query("word")

	correct, err := api.speller.IsCorrectlySpelled(word)
	if err != nil {
		sendError(c, err)
		return
	}

	suggestions := []string{}
	if !correct {
		if suggestions, err = api.speller.SuggestCorrections(word); err != nil {
			sendError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, SpellCheckResponse{
		QueryID:     uuid.NewString(),
		Word:        word,
		Correct:     correct,
		Suggestions: suggestions,
	})
}

// SearchResponse is the JSON shape of a keyword search.
type SearchResponse struct {
	QueryID string        `json:"query_id"`
	Query   string        `json:"query"`
	Hotels  []model.Hotel `json:"hotels"`
	Count   int           `json:"count"`
	Took    string        `json:"took"`
}

// KeywordSearchHandler searches the inverted index for the "keyword"
// query parameter. Each successful search is also recorded in the
// search-frequency tracker.
func (api *API) KeywordSearchHandler(c *gin.Context) {
	start := time.Now()
	keyword := c.Query("keyword")

	hotels, err := api.searcher.SearchByKeyword(keyword)
	if err != nil {
		sendError(c, err)
		return
	}

	// Tracking failures must not fail the search itself.
	_, _ = api.tracker.SearchAndUpdate(keyword)
	if api.metrics != nil {
		api.metrics.SearchesTotal.Inc()
	}

	c.JSON(http.StatusOK, SearchResponse{
		QueryID: uuid.NewString(),
		Query:   keyword,
		Hotels:  hotels,
		Count:   len(hotels),
		Took:    time.Since(start).String(),
	})
}

// MultiKeywordSearchHandler searches for hotels matching every
// whitespace-separated keyword of the "keywords" query parameter.
func (api *API) MultiKeywordSearchHandler(c *gin.Context) {
	start := time.Now()
	keywords := c.Query("keywords")

	hotels, err := api.searcher.SearchByKeywords(keywords)
	if err != nil {
		sendError(c, err)
		return
	}
	if api.metrics != nil {
		api.metrics.SearchesTotal.Inc()
	}

	c.JSON(http.StatusOK, SearchResponse{
		QueryID: uuid.NewString(),
		Query:   keywords,
		Hotels:  hotels,
		Count:   len(hotels),
		Took:    time.Since(start).String(),
	})
}

// TopWordsHandler returns the most frequent corpus words. The "n"
// query parameter bounds the list and falls back to the configured
// default.
func (api *API) TopWordsHandler(c *gin.Context) {
	n, err := api.countParam(c, api.cfg.Search.DefaultTopWords)
	if err != nil {
		sendError(c, err)
		return
	}

	words, err := api.freq.TopWords(n)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": words, "count": len(words)})
}

// WordFrequencyHandler returns the corpus count of the "word" query
// parameter.
func (api *API) WordFrequencyHandler(c *gin.Context) {
	word := c.Query("word")

	count, err := api.freq.WordFrequency(word)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word, "count": count})
}

// TopSearchesHandler returns the most searched keywords.
func (api *API) TopSearchesHandler(c *gin.Context) {
	n, err := api.countParam(c, api.cfg.Search.DefaultTopSearches)
	if err != nil {
		sendError(c, err)
		return
	}

	searches, err := api.tracker.TopSearches(n)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": searches, "count": len(searches)})
}

// RecordSearchHandler records one search for the "keyword" query
// parameter and returns its updated count.
func (api *API) RecordSearchHandler(c *gin.Context) {
	keyword := c.Query("keyword")

	count, err := api.tracker.SearchAndUpdate(keyword)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"keyword": keyword, "count": count})
}

// countParam parses the optional "n" query parameter.
func (api *API) countParam(c *gin.Context, fallback int) (int, error) {
	raw := c.Query("n")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("n", "n must be an integer")
	}
	return n, nil
}
