package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sumandeep-Kaur/Hotel-Hunt/config"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/engine"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/metrics"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/services"
)

// API holds the dependencies for the HTTP handlers. Handlers talk to
// the engine components through the services interfaces only.
type API struct {
	suggester services.Suggester
	speller   services.SpellChecker
	searcher  services.HotelSearcher
	freq      services.FrequencyRanker
	tracker   services.SearchTracker
	finder    services.HotelFinder
	cities    services.CityRanker

	cfg     *config.Config
	metrics *metrics.Metrics
}

// NewAPI creates the handler structure around a built engine.
func NewAPI(eng *engine.Engine, cfg *config.Config, m *metrics.Metrics) *API {
	return &API{
		suggester: eng.Autocomplete,
		speller:   eng.Spelling,
		searcher:  eng.Index,
		freq:      eng.Frequency,
		tracker:   eng.Tracker,
		finder:    eng.Store,
		cities:    eng.PageRanker,
		cfg:       cfg,
		metrics:   m,
	}
}

// SetupRoutes defines all routes served by the application.
func SetupRoutes(router *gin.Engine, eng *engine.Engine, cfg *config.Config, m *metrics.Metrics) {
	apiHandler := NewAPI(eng, cfg, m)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(cfg.Server.MaxRequestBytes))
	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	router.GET("/health", apiHandler.HealthCheckHandler)

	searchRoutes := router.Group("/api/search")
	{
		searchRoutes.GET("/autocomplete", apiHandler.AutocompleteHandler)
		searchRoutes.GET("/spellcheck", apiHandler.SpellCheckHandler)
		searchRoutes.GET("/keyword", apiHandler.KeywordSearchHandler)
		searchRoutes.GET("/keywords", apiHandler.MultiKeywordSearchHandler)

		searchRoutes.GET("/frequency/top", apiHandler.TopWordsHandler)
		searchRoutes.GET("/frequency/word", apiHandler.WordFrequencyHandler)

		searchRoutes.GET("/searches/top", apiHandler.TopSearchesHandler)
		searchRoutes.POST("/searches", apiHandler.RecordSearchHandler)
	}

	hotelRoutes := router.Group("/api/hotels")
	{
		hotelRoutes.GET("/city", apiHandler.HotelsByCityHandler)
		hotelRoutes.GET("/rating", apiHandler.HotelsByRatingHandler)
		hotelRoutes.GET("/cities/ranked", apiHandler.RankedCitiesHandler)
	}
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
