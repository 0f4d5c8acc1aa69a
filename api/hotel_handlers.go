package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HotelsByCityHandler lists the hotels of the "city" query parameter.
func (api *API) HotelsByCityHandler(c *gin.Context) {
	city := c.Query("city")

	hotels, err := api.finder.HotelsByCity(city)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": city, "hotels": hotels, "count": len(hotels)})
}

// HotelsByRatingHandler lists every hotel ordered by descending
// rating.
func (api *API) HotelsByRatingHandler(c *gin.Context) {
	hotels, err := api.finder.HotelsSortedByRating()
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels, "count": len(hotels)})
}

// RankedCitiesHandler lists the city data files ordered by how often
// the city name appears in the corpus.
func (api *API) RankedCitiesHandler(c *gin.Context) {
	ranked := api.cities.RankedCities()
	c.JSON(http.StatusOK, gin.H{"cities": ranked, "count": len(ranked)})
}
