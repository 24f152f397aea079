package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"agroadvisor/internal/auth"
	"agroadvisor/internal/handler"
	"agroadvisor/internal/repository"
	"agroadvisor/internal/server/middleware"
)

// NewRouter wires the route table. Everything except registration, login
// and the health probe sits behind the bearer-token guard.
func NewRouter(h *handler.Handler, issuer *auth.Issuer, tokens repository.TokenRepository, logger *zap.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	protected := r.Group("/")
	protected.Use(auth.Middleware(issuer, tokens))
	{
		protected.POST("/auth/logout", h.Logout)
		protected.GET("/auth/me", h.Me)

		protected.POST("/soil/analyze", h.AnalyzeSoil)
		protected.GET("/soil", h.ListSoilReports)

		protected.POST("/disease/diagnose", h.DiagnoseDisease)
		protected.GET("/disease", h.ListDiseaseAnalyses)

		protected.GET("/weather/current", h.CurrentWeather)
		protected.GET("/weather/advisory", h.WeatherAdvisory)

		protected.POST("/market/snapshot", h.IngestMarketSnapshot)
		protected.GET("/market/prices/:region", h.RegionPrices)
		protected.POST("/market/recommend", h.RecommendMarket)

		protected.POST("/fertilizer/plan", h.FertilizerPlan)
	}

	return r
}
