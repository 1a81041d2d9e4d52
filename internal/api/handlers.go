package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nycpoi/poiconcierge/internal/concierge"
	"github.com/nycpoi/poiconcierge/internal/enrich"
	"github.com/nycpoi/poiconcierge/internal/models"
	"github.com/nycpoi/poiconcierge/internal/repositories"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "poiconcierge",
		"city":    "New York",
		"endpoints": gin.H{
			"health":          "GET /health",
			"search":          "POST /v1/pois/search",
			"recommendations": "POST /v1/recommendations",
			"poi":             "GET /v1/pois/:id",
			"freshness":       "GET /v1/pois/:id/freshness",
			"refresh":         "POST /v1/pois/:id/refresh",
			"neighborhoods":   "GET /v1/neighborhoods",
			"categories":      "GET /v1/categories",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	count, err := s.repo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"store":  s.config.Store.Driver,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"store":     s.config.Store.Driver,
		"poi_count": count,
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	started := time.Now()
	result, err := s.engine.Search(c.Request.Context(), req.toQuery(started))
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.publishSearchEvent(&req, result, time.Since(started))
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleRecommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	started := time.Now()
	result, err := s.engine.Recommend(c.Request.Context(), req.toQuery())
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.publishRecommendationEvent(&req, result, time.Since(started))
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetPOI(c *gin.Context) {
	poi, err := s.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, poi)
}

func (s *Server) handleFreshness(c *gin.Context) {
	poi, err := s.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	status := enrich.CheckFreshness(*poi, s.config.Enrichment.FreshnessWindow, time.Now())
	c.JSON(http.StatusOK, status)
}

func (s *Server) handleRefresh(c *gin.Context) {
	ctx := c.Request.Context()
	poi, err := s.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	update, err := s.source.Lookup(ctx, *poi)
	if err != nil {
		log.Printf("enrichment lookup failed for %s: %v", poi.ID, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "enrichment source unavailable"})
		return
	}

	now := time.Now()
	enrich.Apply(poi, update, now)
	if err := s.repo.Upsert(ctx, poi); err != nil {
		s.respondError(c, err)
		return
	}

	event := models.RefreshEvent{
		BaseEvent: models.NewBaseEvent(models.EventTypeRefresh, now),
		POIID:     poi.ID,
		Changed:   update != nil,
	}
	s.publish(s.config.Kafka.RefreshTopic, event)

	c.JSON(http.StatusOK, gin.H{
		"poi":    poi,
		"status": enrich.CheckFreshness(*poi, s.config.Enrichment.FreshnessWindow, now),
	})
}

func (s *Server) handleNeighborhoods(c *gin.Context) {
	guides := concierge.NeighborhoodGuides()
	c.JSON(http.StatusOK, gin.H{
		"count":         len(guides),
		"neighborhoods": guides,
	})
}

func (s *Server) handleCategories(c *gin.Context) {
	guides := concierge.CategoryGuides()
	c.JSON(http.StatusOK, gin.H{
		"count":      len(guides),
		"categories": guides,
	})
}

// respondError maps engine and store failures onto the API error contract:
// bad input is a 400 with the offending field, a missing record is a 404,
// and anything else means the retrieval backend let us down.
func (s *Server) respondError(c *gin.Context, err error) {
	var verr *concierge.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "poi not found"})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "retrieval backend unavailable"})
	}
}

func (s *Server) publishSearchEvent(req *searchRequest, result *models.SearchResult, took time.Duration) {
	event := models.SearchEvent{
		BaseEvent:    models.NewBaseEvent(models.EventTypeSearch, time.Now()),
		Origin:       req.Origin.toLocation(),
		RadiusMeters: result.RadiusMeters,
		Categories:   req.Categories,
		ResultCount:  len(result.Items),
		TookMs:       took.Milliseconds(),
	}
	if len(result.Items) > 0 {
		event.TopPOIID = result.Items[0].POI.ID
	}
	s.publish(s.config.Kafka.SearchTopic, event)
}

func (s *Server) publishRecommendationEvent(req *recommendRequest, result *models.RecommendationResult, took time.Duration) {
	event := models.RecommendationEvent{
		BaseEvent:    models.NewBaseEvent(models.EventTypeRecommendation, time.Now()),
		Origin:       req.Origin.toLocation(),
		RadiusMeters: result.RadiusMeters,
		Occasion:     models.Occasion(req.Occasion),
		Weather:      models.WeatherCondition(req.Weather),
		TimeOfDay:    result.TimeOfDay,
		GroupSize:    req.GroupSize,
		ResultCount:  len(result.Items),
		TookMs:       took.Milliseconds(),
	}
	if len(result.Items) > 0 {
		event.TopPOIID = result.Items[0].POI.ID
	}
	s.publish(s.config.Kafka.RecommendationTopic, event)
}

// publish is best-effort: a dead analytics sink never fails a request.
func (s *Server) publish(topic string, event interface{}) {
	if err := s.publisher.Publish(topic, event); err != nil {
		log.Printf("failed to publish event to %s: %v", topic, err)
	}
}
