package web

import (
	"github.com/gin-gonic/gin"
)

type ServiceConfig struct {
	IsDev bool
	Port  string
}

// NewRouter builds the gin engine with the full middleware stack and all
// routes registered. Split out from Serve so tests can drive it with httptest.
func NewRouter(cfg ServiceConfig) *gin.Engine {
	if !cfg.IsDev {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	setupMiddlewares(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/trip-value", CalculateHandler)
		api.POST("/trip-value/batch", BatchHandler)
		api.POST("/trip-value/compare", CompareHandler)
	}

	return r
}

func Serve(cfg ServiceConfig) {
	r := NewRouter(cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		panic(err)
	}
}
