package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/auth"
	"agroadvisor/internal/weather"
)

func parseCoords(c *gin.Context) (lat, lon float64, ok bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		badRequest(c, "lat and lon query parameters are required numbers")
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		badRequest(c, "lat must be in [-90,90] and lon in [-180,180]")
		return 0, 0, false
	}
	return lat, lon, true
}

// CurrentWeather proxies the provider forecast for a coordinate and
// records the fetch.
func (h *Handler) CurrentWeather(c *gin.Context) {
	userID, _ := auth.UserID(c)
	lat, lon, ok := parseCoords(c)
	if !ok {
		return
	}

	payload, err := h.weather.OneCall(c.Request.Context(), weather.Query{
		Lat:   lat,
		Lon:   lon,
		Units: c.Query("units"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if _, err := h.snapshots.CreateWeatherSnapshot(c.Request.Context(), userID, lat, lon, payload); err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

// WeatherAdvisory fetches the forecast for a coordinate and turns it into
// actionable field guidance via the advisory pipeline.
func (h *Handler) WeatherAdvisory(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}
	lat, lon, okCoords := parseCoords(c)
	if !okCoords {
		return
	}

	payload, err := h.weather.OneCall(c.Request.Context(), weather.Query{Lat: lat, Lon: lon})
	if err != nil {
		h.writeError(c, err)
		return
	}
	if _, err := h.snapshots.CreateWeatherSnapshot(c.Request.Context(), userID, lat, lon, payload); err != nil {
		h.writeError(c, err)
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var forecast map[string]any
	if err := json.Unmarshal(payload, &forecast); err != nil {
		h.writeError(c, err)
		return
	}
	pctx := advisor.Context{
		Language: firstNonEmptyString(c.Query("language"), user.Language),
		Crop:     c.Query("crop"),
		Weather:  forecast,
	}

	res, err := h.advisor.WeatherAdvisory(c.Request.Context(), pctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advisory": res.Advisory, "language": res.Language})
}

func firstNonEmptyString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
