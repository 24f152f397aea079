package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agroadvisor/internal/auth"
)

// DiagnoseDisease accepts a crop photo and runs the disease pipeline.
// PDFs are not accepted here; a diagnosis needs an image.
func (h *Handler) DiagnoseDisease(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}

	mediaType, data, err := readUpload(c, false)
	if err != nil {
		h.writeError(c, err)
		return
	}

	pctx, err := h.profileContext(c, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if v := c.PostForm("crop"); v != "" {
		pctx.Crop = v
	}

	res, err := h.advisor.DiagnoseDisease(c.Request.Context(), mediaType, data, pctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.archiveUpload(c, userID, "disease", mediaType, data)

	rec, err := h.reports.CreateDiseaseAnalysis(c.Request.Context(), userID, mediaType, res)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": rec})
}

// ListDiseaseAnalyses returns the caller's diagnoses, most recent first.
func (h *Handler) ListDiseaseAnalyses(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}
	recs, err := h.reports.ListDiseaseAnalyses(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": recs})
}
