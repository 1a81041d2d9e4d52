package api

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/nycpoi/poiconcierge/internal/concierge"
	"github.com/nycpoi/poiconcierge/internal/enrich"
	"github.com/nycpoi/poiconcierge/internal/events"
	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories"
)

// Server wires the ranking engine, the POI store, the enrichment source and
// the analytics sink behind the HTTP API.
type Server struct {
	config    *models.Config
	engine    *concierge.Concierge
	repo      repositories.POIRepository
	publisher events.Publisher
	source    enrich.Source
	router    *gin.Engine
}

func NewServer(
	config *models.Config,
	repo repositories.POIRepository,
	publisher events.Publisher,
	source enrich.Source,
) *Server {
	s := &Server{
		config:    config,
		engine:    concierge.New(repo, config.Ranker),
		repo:      repo,
		publisher: publisher,
		source:    source,
	}
	s.router = s.setupRouter()
	return s
}

// Router exposes the configured engine, mainly for httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)

	v1 := router.Group("/v1")
	{
		v1.POST("/pois/search", s.handleSearch)
		v1.POST("/recommendations", s.handleRecommend)
		v1.GET("/pois/:id", s.handleGetPOI)
		v1.GET("/pois/:id/freshness", s.handleFreshness)
		v1.POST("/pois/:id/refresh", s.handleRefresh)
		v1.GET("/neighborhoods", s.handleNeighborhoods)
		v1.GET("/categories", s.handleCategories)
	}

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests within the
// configured shutdown window.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	go func() {
		log.Printf("poi concierge listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("server exited")
	return nil
}
