package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/repository"
)

// writeError maps domain errors onto HTTP responses. Caller mistakes are
// 4xx; provider and model failures are 502 with distinct codes so clients
// can tell "try again" from "the reply was unusable".
func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		unsupported *advisor.UnsupportedInputError
		missing     *advisor.MissingContextError
		transport   *advisor.TransportError
		unparseable *advisor.UnparseableError
	)
	switch {
	case errors.Is(err, errMissingFile), errors.Is(err, errFileTooLarge):
		badRequest(c, err.Error())
	case errors.As(err, &unsupported):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  "unsupported_input",
			"error": err.Error(),
		})
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":   "missing_context",
			"error":  err.Error(),
			"fields": missing.Fields,
		})
	case errors.Is(err, repository.ErrDuplicateMobile):
		c.JSON(http.StatusConflict, gin.H{
			"code":  "mobile_taken",
			"error": "mobile number already registered",
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"code":  "not_found",
			"error": "not found",
		})
	case errors.As(err, &transport):
		h.log.Warn("upstream call failed", zap.String("provider", transport.Provider), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"code":  "upstream_unavailable",
			"error": "upstream provider call failed",
		})
	case errors.As(err, &unparseable):
		h.log.Warn("model output unusable", zap.Error(err), zap.Int("raw_len", len(unparseable.Raw)))
		c.JSON(http.StatusBadGateway, gin.H{
			"code":  "model_output_unusable",
			"error": "model response could not be interpreted",
		})
	default:
		h.log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  "internal",
			"error": "internal error",
		})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": "bad_request", "error": msg})
}
