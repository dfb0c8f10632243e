package controllers

import (
	"net/http"

	"github.com/eventcity-api/apperrors"
	"github.com/eventcity-api/dto"
	"github.com/eventcity-api/repositories"
	"github.com/eventcity-api/services"
	"github.com/gin-gonic/gin"
)

// CategoryController handles HTTP requests for categories
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new category controller instance
func NewCategoryController() *CategoryController {
	return &CategoryController{
		categoryService: services.NewCategoryService(repositories.NewCategoryRepository()),
	}
}

// GetCategories handles GET /api/categories
func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.categoryService.ListCategories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	category, err := c.categoryService.GetCategory(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/categories
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	category, err := c.categoryService.CreateCategory(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/categories/:id
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	category, err := c.categoryService.UpdateCategory(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categories/:id
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.categoryService.DeleteCategory(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
