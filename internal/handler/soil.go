package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/auth"
)

// AnalyzeSoil accepts a soil report upload (PDF or photo), runs the soil
// pipeline and persists the split result.
func (h *Handler) AnalyzeSoil(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}

	mediaType, data, err := readUpload(c, true)
	if err != nil {
		h.writeError(c, err)
		return
	}

	pctx, err := h.profileContext(c, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	res, err := h.advisor.AnalyzeSoil(c.Request.Context(), mediaType, data, pctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.archiveUpload(c, userID, "soil", mediaType, data)

	rec, err := h.reports.CreateSoilReport(c.Request.Context(), userID, res)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": rec})
}

// ListSoilReports returns the caller's soil analyses, most recent first.
func (h *Handler) ListSoilReports(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}
	recs, err := h.reports.ListSoilReports(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": recs})
}

// profileContext builds the advisory context from the caller's profile,
// letting explicit form fields override stored values.
func (h *Handler) profileContext(c *gin.Context, userID uuid.UUID) (advisor.Context, error) {
	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		return advisor.Context{}, err
	}
	pctx := advisor.Context{
		Language:   user.Language,
		FarmerType: user.FarmerType,
		Location:   user.Location,
	}
	if v := c.PostForm("language"); v != "" {
		pctx.Language = v
	}
	if v := c.PostForm("location"); v != "" {
		pctx.Location = v
	}
	if v := c.PostForm("farmerType"); v != "" {
		pctx.FarmerType = v
	}
	return pctx, nil
}
