package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/auth"
)

type fertilizerPlanRequest struct {
	Crop     string `json:"crop"`
	Stage    string `json:"stage"`
	Language string `json:"language"`
}

// FertilizerPlan produces and stores a fertilizer application plan for a
// crop at a growth stage. Crop and stage validation lives in the domain
// layer so an incomplete request never costs a model call.
func (h *Handler) FertilizerPlan(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthenticated", "error": "missing identity"})
		return
	}

	var req fertilizerPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	crop := strings.TrimSpace(req.Crop)
	stage := strings.TrimSpace(req.Stage)
	pctx := advisor.Context{
		Language: firstNonEmptyString(req.Language, user.Language),
		Crop:     crop,
		Stage:    stage,
	}

	res, err := h.advisor.FertilizerPlan(c.Request.Context(), pctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	rec, err := h.reports.CreateFertilizerPlan(c.Request.Context(), userID, crop, stage, res)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": rec})
}
