package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradecademy/marketplace/dto"
	"github.com/tradecademy/marketplace/services"
)

var categoryService = services.NewCategoryService()

// ListCategories godoc
// @Summary List categories
// @Description Returns all categories with their service counts
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func ListCategories(c *gin.Context) {
	categories, err := categoryService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   categories,
	})
}

// GetCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Router /categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, err := categoryService.GetCategory(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   category,
	})
}

// CreateCategory godoc
// @Summary Create a category
// @Description Admin only
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category payload"
// @Success 201 {object} models.Category
// @Router /categories [post]
func CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	category, err := categoryService.CreateCategory(actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   category,
	})
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Admin only
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Category payload"
// @Success 200 {object} models.Category
// @Router /categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	category, err := categoryService.UpdateCategory(actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   category,
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Admin only. Fails while services still reference the category.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 204
// @Router /categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	if err := categoryService.DeleteCategory(actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
