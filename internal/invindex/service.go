// Package invindex implements the prefix inverted index used for
// keyword search over hotel records.
package invindex

import (
	"strings"

	"github.com/charmbracelet/log"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/logger"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/tokenizer"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

// Index maps every prefix of every indexed token to the documents
// containing that token, so keyword lookups resolve in one map access.
// Postings are kept sorted by document ID with no duplicates, which
// makes intersection linear and result order deterministic. After
// Build the index is read-only and safe for concurrent use.
type Index struct {
	docs     []model.Hotel
	postings map[string][]uint32
	logger   *log.Logger
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		postings: make(map[string][]uint32),
		logger:   logger.New("invindex"),
	}
}

// Build indexes the given hotels. Document IDs are assigned by slice
// position, so postings come out sorted as a side effect of insertion
// order.
func (idx *Index) Build(hotels []model.Hotel) {
	for _, hotel := range hotels {
		idx.Add(hotel)
	}
	idx.logger.Info("index built", "documents", len(idx.docs), "prefixes", len(idx.postings))
}

// Add indexes a single hotel under the next document ID.
func (idx *Index) Add(hotel model.Hotel) {
	docID := uint32(len(idx.docs))
	idx.docs = append(idx.docs, hotel)

	for _, value := range hotel {
		for _, tok := range tokenizer.IndexTokens(value) {
			for _, prefix := range tokenizer.PrefixNGrams(tok) {
				list := idx.postings[prefix]
				// Duplicates from repeated tokens are always adjacent.
				if n := len(list); n > 0 && list[n-1] == docID {
					continue
				}
				idx.postings[prefix] = append(list, docID)
			}
		}
	}
}

// SearchByKeyword returns the hotels containing a token that starts
// with keyword, in document order.
func (idx *Index) SearchByKeyword(keyword string) ([]model.Hotel, error) {
	key, err := normalizeKeyword(keyword)
	if err != nil {
		return nil, err
	}
	return idx.resolve(idx.postings[key]), nil
}

// SearchByKeywords splits keywords on whitespace and returns the
// hotels matching every keyword (AND semantics), in document order.
func (idx *Index) SearchByKeywords(keywords string) ([]model.Hotel, error) {
	fields := strings.Fields(keywords)
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("keywords", "at least one keyword is required")
	}

	var result []uint32
	for i, field := range fields {
		key, err := normalizeKeyword(field)
		if err != nil {
			return nil, err
		}
		list := idx.postings[key]
		if i == 0 {
			result = list
		} else {
			result = intersect(result, list)
		}
		if len(result) == 0 {
			break
		}
	}
	return idx.resolve(result), nil
}

func (idx *Index) resolve(ids []uint32) []model.Hotel {
	hotels := make([]model.Hotel, 0, len(ids))
	for _, id := range ids {
		hotels = append(hotels, idx.docs[id])
	}
	return hotels
}

// intersect merges two sorted posting lists.
func intersect(a, b []uint32) []uint32 {
	out := make([]uint32, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func normalizeKeyword(keyword string) (string, error) {
	toks := tokenizer.IndexTokens(keyword)
	if len(toks) != 1 {
		return "", apperrors.NewValidationError("keyword", "keyword must be a single word")
	}
	return toks[0], nil
}
