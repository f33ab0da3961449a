package handlers

import (
	"net/http"

	"ai4juris-backend/repository"
	"ai4juris-backend/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles HTTP requests for semantic retrieval
type SearchHandler struct {
	retrievalService *service.RetrievalService
	documentRepo     *repository.DocumentRepository
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(retrievalService *service.RetrievalService, documentRepo *repository.DocumentRepository) *SearchHandler {
	return &SearchHandler{
		retrievalService: retrievalService,
		documentRepo:     documentRepo,
	}
}

// SearchRequest represents the request body for retrieval endpoints
type SearchRequest struct {
	Query         string  `json:"query" binding:"required"`
	TopK          int     `json:"top_k"`
	Source        string  `json:"source"`
	Class         string  `json:"class"`
	MinSimilarity float64 `json:"min_similarity"`
}

func (req *SearchRequest) applyDefaults() {
	if req.TopK <= 0 {
		req.TopK = 5
	}
}

// Search handles POST /api/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}
	req.applyDefaults()

	results, err := h.retrievalService.Retrieve(c.Request.Context(), req.Query, req.TopK, req.Source, req.MinSimilarity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SEARCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"results": results,
			"count":   len(results),
		},
	})
}

// SearchChunks handles POST /api/search/chunks
func (h *SearchHandler) SearchChunks(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}
	req.applyDefaults()

	results, err := h.retrievalService.RetrieveChunks(c.Request.Context(), req.Query, req.TopK, req.Source, req.MinSimilarity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SEARCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"results": results,
			"count":   len(results),
		},
	})
}

// SearchByClass handles POST /api/search/class
func (h *SearchHandler) SearchByClass(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Class == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "query and class are required",
			},
		})
		return
	}
	req.applyDefaults()

	results, err := h.retrievalService.RetrieveByClass(c.Request.Context(), req.Query, req.TopK, req.Class, req.Source, req.MinSimilarity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SEARCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"results": results,
			"count":   len(results),
		},
	})
}

// Stats handles GET /api/stats
func (h *SearchHandler) Stats(c *gin.Context) {
	stats, err := h.documentRepo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STATS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// GetDocument handles GET /api/documents/:id
func (h *SearchHandler) GetDocument(c *gin.Context) {
	var id int64
	if err := parseID(c.Param("id"), &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_DOCUMENT_ID",
				"message": "Invalid document id",
			},
		})
		return
	}

	doc, err := h.documentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DOCUMENT_NOT_FOUND",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}
