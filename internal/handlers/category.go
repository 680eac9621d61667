package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/nitishdmn/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// GetCategoryMap godoc
// @Summary      List categories as an id to type mapping
// @Tags         categories
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      500 {object} map[string]interface{}
// @Router       /categories [get]
func (h *CategoryHandler) GetCategoryMap(c *gin.Context) {
	categories, err := h.categories.CategoryMap()
	if err != nil {
		log.Printf("list categories: %v", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListCategories godoc
// @Summary      List categories with a total count
// @Tags         categories
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories()
	if err != nil {
		log.Printf("list categories: %v", err)
		internalError(c)
		return
	}
	if len(categories) == 0 {
		badRequest(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"categories":       categories,
		"total_categories": len(categories),
	})
}

type CreateCategoryRequest struct {
	Type string `json:"type"`
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	category, err := h.categories.CreateCategory(req.Type)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryTypeRequired):
			badRequest(c)
		case errors.Is(err, services.ErrCategoryExists):
			conflict(c)
		default:
			// persist failures are reported as a client error
			log.Printf("create category: %v", err)
			badRequest(c)
		}
		return
	}

	categories, err := h.categories.ListCategories()
	if err != nil {
		log.Printf("list categories after create: %v", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":          true,
		"created":          category.ID,
		"category created": category.Type,
		"categories":       categories,
		"total_categories": len(categories),
	})
}
