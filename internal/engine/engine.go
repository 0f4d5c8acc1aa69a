// Package engine wires the corpus and the search indexes together and
// owns their build lifecycle.
package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Sumandeep-Kaur/Hotel-Hunt/config"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/autocomplete"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/corpus"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/frequency"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/invindex"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/logger"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/metrics"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/ranking"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/spelling"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

// Engine holds every search component. Build populates them once from
// the corpus; afterwards only the search tracker mutates, behind its
// own lock, so the Engine itself needs none.
type Engine struct {
	cfg *config.Config

	Store        *corpus.Store
	Autocomplete *autocomplete.Service
	Spelling     *spelling.Checker
	Index        *invindex.Index
	Frequency    *frequency.Counter
	Tracker      *frequency.Tracker
	PageRanker   *ranking.PageRanker

	logger *log.Logger
}

// New creates an Engine with empty indexes.
func New(cfg *config.Config) *Engine {
	return &Engine{
		cfg:          cfg,
		Autocomplete: autocomplete.New(cfg.Search.MaxCompletions),
		Spelling:     spelling.New(cfg.Search.MaxEditDistance, cfg.Search.MaxCorrections),
		Index:        invindex.New(),
		Frequency:    frequency.NewCounter(cfg.Search.Stopwords),
		Tracker:      frequency.NewTracker(cfg.Search.SeedMinWeight, cfg.Search.SeedMaxWeight),
		logger:       logger.New("engine"),
	}
}

// Build loads the corpus and populates every index. A corpus that
// cannot be loaded is logged and treated as empty rather than aborting
// startup; each index build runs in its own goroutine since the
// loaded hotel slice is read-only.
func (e *Engine) Build(ctx context.Context, m *metrics.Metrics) error {
	start := time.Now()

	store, err := corpus.Load(e.cfg.Data.Dir)
	if err != nil {
		e.logger.Warn("corpus unavailable, starting with empty indexes",
			"dir", e.cfg.Data.Dir, "error", err)
		store = corpus.Empty()
	}
	e.Store = store
	hotels := store.Hotels()

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		e.Autocomplete.Build(hotels)
		return nil
	})
	g.Go(func() error {
		e.Spelling.Build(hotels)
		return nil
	})
	g.Go(func() error {
		e.Index.Build(hotels)
		return nil
	})
	g.Go(func() error {
		e.Frequency.Build(hotels)
		return nil
	})
	g.Go(func() error {
		e.Tracker.SeedFromHotels(hotels, e.cfg.Data.LocationColumn)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// The page ranker reads the frequency counts, so it waits for them.
	e.PageRanker = ranking.New(store.Cities(), e.Frequency.FrequencyMap())

	elapsed := time.Since(start)
	if m != nil {
		m.BuildDuration.Set(elapsed.Seconds())
		m.HotelsLoaded.Set(float64(len(hotels)))
	}
	e.logger.Info("indexes built", "hotels", len(hotels), "took", elapsed)
	return nil
}

// Hotels returns the loaded corpus rows.
func (e *Engine) Hotels() []model.Hotel {
	if e.Store == nil {
		return nil
	}
	return e.Store.Hotels()
}
