package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "makers-assistant/internal/common/errors"
	"makers-assistant/internal/common/metrics"
	"makers-assistant/internal/recommend"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"products": s.catalog.InventoryStats().TotalProducts,
	})
}

func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    string(apperrors.ErrCodeInvalidRequest),
			Message: "message is required",
		})
		return
	}

	start := time.Now()
	resp, intent := s.engine.Answer(req.Message)

	metrics.ChatMessagesProcessed.WithLabelValues(string(intent.Type)).Inc()
	metrics.ChatMessageDuration.WithLabelValues(string(intent.Type)).Observe(time.Since(start).Seconds())
	s.obs.RecordMessageProcessed(c.Request.Context(), string(intent.Type))
	s.obs.RecordMessageDuration(c.Request.Context(), time.Since(start), string(intent.Type))

	c.JSON(http.StatusOK, ChatResponse{
		ID:               uuid.NewString(),
		Message:          resp.Message,
		SuggestedActions: resp.SuggestedActions,
		Products:         resp.Products,
		Intent:           string(intent.Type),
		Confidence:       intent.Confidence,
	})
}

func (s *Server) handleRecommendations(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    string(apperrors.ErrCodeInvalidRequest),
			Message: "invalid recommendation request",
		})
		return
	}

	metrics.RecommendationRequests.Inc()

	tiers := s.scorer.Recommend(recommend.UserPreferences{
		Budget:   req.Budget,
		Category: req.Category,
		Brand:    req.Brand,
		Usage:    req.Usage,
	})

	c.JSON(http.StatusOK, RecommendationResponse{
		HighlyRecommended: tiers.Highly,
		Recommended:       tiers.Recommended,
		NotRecommended:    tiers.NotRecommended,
	})
}

func (s *Server) handleListProducts(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, s.catalog.ProductsByCategory(category))
		return
	}
	c.JSON(http.StatusOK, s.catalog.AllProducts())
}

func (s *Server) handleProductStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.InventoryStats())
}

func (s *Server) handleSearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    string(apperrors.ErrCodeInvalidRequest),
			Message: "query parameter q is required",
		})
		return
	}

	results := s.catalog.Search(query)
	outcome := "hit"
	if len(results) == 0 {
		outcome = "miss"
	}
	metrics.CatalogSearches.WithLabelValues(outcome).Inc()

	c.JSON(http.StatusOK, results)
}

func (s *Server) handleGetProduct(c *gin.Context) {
	product, ok := s.catalog.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    string(apperrors.ErrCodeProductNotFound),
			Message: "no product with id " + c.Param("id"),
		})
		return
	}
	c.JSON(http.StatusOK, product)
}
