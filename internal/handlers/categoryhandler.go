package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobnest/jobnest/internal/services"
)

type CategoryHandler struct {
	Categories *services.CategoryService
}

func NewCategoryHandler(cs *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Categories: cs,
	}
}

// ListCategories is the public GET /categories endpoint.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.Categories.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
