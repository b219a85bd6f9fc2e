// README: API gateway; registers HTTP routes and delegates to the prediction service.
package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"farecast/internal/http/handlers"
	"farecast/internal/http/middleware"
	"farecast/internal/modules/predict"
)

type ServerDeps struct {
	Predict   *predict.Service
	StaticDir string
}

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), middleware.CORS())

	h := handlers.NewPredictHandler(deps.Predict)
	r.POST("/predict", h.Predict)
	r.POST("/predict/simple", h.PredictSimple)
	r.GET("/health", h.Health)

	registerStatic(r, deps.StaticDir)
	return r
}

// registerStatic serves the bundled UI when the static directory exists:
// index.html at the root, assets under /static, and a fallback for files the
// page references relatively. Skipped entirely when the directory is absent.
func registerStatic(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return
	}

	r.Static("/static", dir)
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.NoRoute(func(c *gin.Context) {
		p := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			c.File(p)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
