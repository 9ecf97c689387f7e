// Package server exposes the assetdeck HTTP API: organization-scoped CRUD
// for locations and assets, intent-discriminated form posts, paginated
// lists, bulk actions, and image upload.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"assetdeck/internal/blob"
	"assetdeck/internal/config"
	"assetdeck/internal/store"
)

// Server owns the router and its dependencies.
type Server struct {
	cfg    *config.Config
	store  *store.Store
	blobs  *blob.Store
	log    *zap.Logger
	server *http.Server
}

// New assembles the API server.
func New(cfg *config.Config, st *store.Store, blobs *blob.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{cfg: cfg, store: st, blobs: blobs, log: log}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("assetdeckd"))
	router.Use(cors.Default())
	router.Use(s.requestLogger())

	s.registerRoutes(router)

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until Stop is called or the listener fails. Returns
// http.ErrServerClosed after a graceful Stop.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1", s.identity())
	{
		locations := v1.Group("/locations")
		{
			locations.GET("", s.listLocations)
			locations.POST("", s.createLocation)
			locations.POST("/bulk", s.bulkLocations)
			locations.GET("/:id", s.getLocation)
			locations.POST("/:id", s.locationIntent)
		}
		assets := v1.Group("/assets")
		{
			assets.GET("", s.listAssets)
			assets.POST("", s.createAsset)
			assets.POST("/bulk", s.bulkAssets)
			assets.GET("/:id", s.getAsset)
			assets.POST("/:id", s.assetIntent)
		}
		v1.GET("/images/:id", s.serveImage)
	}
}

// requestLogger logs one line per request in the access-log shape.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}

func parseID(c *gin.Context) (uint, error) {
	var id uint
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil || id == 0 {
		return 0, fmt.Errorf("bad id %q", c.Param("id"))
	}
	return id, nil
}
