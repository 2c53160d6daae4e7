package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/dto"
	"github.com/TheKalyaniMohite/TableGrapeAgent/weather"
)

// GetForecastHandler godoc
// @Summary      Get weather forecast
// @Description  Proxies the Open-Meteo daily forecast for the given coordinates.
// @Tags         weather
// @Produce      json
// @Param        lat   query     number  true   "latitude"
// @Param        lon   query     number  true   "longitude"
// @Param        days  query     int     false  "forecast days (default 7)"
// @Success      200   {object}  weather.Forecast
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Router       /weather/forecast [get]
func GetForecastHandler(forecasts *weather.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

		forecast, err := forecasts.GetForecast(c.Request.Context(), lat, lon, days)
		if err != nil {
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "weather_unavailable"})
			return
		}

		c.JSON(http.StatusOK, forecast)
	}
}
