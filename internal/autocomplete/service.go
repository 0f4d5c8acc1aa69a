// Package autocomplete indexes sanitized hotel field values in a
// prefix tree and completes user-typed prefixes against them.
package autocomplete

import (
	"strings"

	"github.com/charmbracelet/log"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/logger"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/tokenizer"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/trie"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

// Service completes prefixes against whole field values, so a query
// like "gra" can surface "grand hyatt paris". Field values are
// sanitized to the {a-z, space} alphabet before insertion. After Build
// the service is read-only and safe for concurrent use.
type Service struct {
	index          *trie.Trie
	maxSuggestions int
	logger         *log.Logger
}

// New creates an empty Service that returns at most maxSuggestions
// completions per query. maxSuggestions <= 0 means unlimited.
func New(maxSuggestions int) *Service {
	return &Service{
		index:          trie.New(),
		maxSuggestions: maxSuggestions,
		logger:         logger.New("autocomplete"),
	}
}

// Build indexes every field value of every hotel.
func (s *Service) Build(hotels []model.Hotel) {
	for _, hotel := range hotels {
		for _, value := range hotel {
			s.AddValue(value)
		}
	}
	s.logger.Info("index built", "entries", s.index.Len())
}

// AddValue sanitizes value and inserts it as a single completion
// entry. Values that sanitize to the empty string are skipped.
func (s *Service) AddValue(value string) {
	clean := tokenizer.Sanitize(value)
	if clean == "" {
		return
	}
	s.index.Insert(clean)
}

// Suggest returns indexed values starting with prefix. A blank prefix
// is rejected; a prefix that matches nothing, or that contains
// characters outside the indexed alphabet, yields an empty list, not
// an error.
func (s *Service) Suggest(prefix string) ([]string, error) {
	clean := strings.ToLower(strings.TrimSpace(prefix))
	if clean == "" {
		return nil, apperrors.NewValidationError("prefix", "prefix must not be empty")
	}

	matches := s.index.WordsWithPrefix(clean)
	if s.maxSuggestions > 0 && len(matches) > s.maxSuggestions {
		matches = matches[:s.maxSuggestions]
	}
	return matches, nil
}
