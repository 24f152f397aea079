package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/auth"
)

type marketSnapshotRequest struct {
	Region string           `json:"region" binding:"required"`
	Prices []map[string]any `json:"prices" binding:"required"`
	Source string           `json:"source"`
}

// IngestMarketSnapshot stores a regional commodity price series supplied
// by the client (scraped mandi boards, co-op sheets and the like).
func (h *Handler) IngestMarketSnapshot(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}

	var req marketSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if len(req.Prices) == 0 {
		badRequest(c, "prices must not be empty")
		return
	}

	snap, err := h.snapshots.CreateMarketSnapshot(c.Request.Context(), userID,
		strings.TrimSpace(req.Region), req.Prices, strings.TrimSpace(req.Source))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"snapshot": snap})
}

// RegionPrices returns the caller's latest stored price series for a
// region, optionally filtered to one commodity.
func (h *Handler) RegionPrices(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}
	region := strings.TrimSpace(c.Param("region"))
	if region == "" {
		badRequest(c, "region is required")
		return
	}

	snap, err := h.snapshots.LatestMarketSnapshot(c.Request.Context(), userID, region, c.Query("commodity"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": snap})
}

type marketRecommendRequest struct {
	Region   string `json:"region" binding:"required"`
	Language string `json:"language"`
}

// RecommendMarket runs the market pipeline over the caller's latest price
// series for the region.
func (h *Handler) RecommendMarket(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}

	var req marketRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	region := strings.TrimSpace(req.Region)

	snap, err := h.snapshots.LatestMarketSnapshot(c.Request.Context(), userID, region, "")
	if err != nil {
		h.writeError(c, err)
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	pctx := advisor.Context{
		Language:    firstNonEmptyString(req.Language, user.Language),
		Region:      region,
		PriceSeries: snap.Prices,
	}
	res, err := h.advisor.MarketRecommendation(c.Request.Context(), pctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendation": res.Recommendation, "language": res.Language})
}
