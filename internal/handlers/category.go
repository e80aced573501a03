package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/draftwise/draftwise/internal/models"
	"github.com/draftwise/draftwise/internal/services"
	"github.com/draftwise/draftwise/pkg/httperr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{
		service: services.NewCategoryService(db),
	}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Error(c, httperr.NewBadRequest(err.Error()))
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.service.Create(&category); err != nil {
		if errors.Is(err, services.ErrDuplicateCategoryName) {
			httperr.Error(c, httperr.NewConflict(err.Error()))
			return
		}
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		httperr.Error(c, httperr.NewBadRequest("Invalid skip"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		httperr.Error(c, httperr.NewBadRequest("Invalid limit"))
		return
	}

	categories, err := h.service.List(services.CategoryListParams{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Error(c, httperr.NewBadRequest("Invalid ID"))
		return
	}

	category, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Error(c, httperr.NewNotFound("Category not found"))
			return
		}
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Error(c, httperr.NewBadRequest("Invalid ID"))
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Error(c, httperr.NewBadRequest(err.Error()))
		return
	}

	category, err := h.service.Update(uint(id), &services.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Error(c, httperr.NewNotFound("Category not found"))
			return
		}
		if errors.Is(err, services.ErrDuplicateCategoryName) {
			httperr.Error(c, httperr.NewConflict(err.Error()))
			return
		}
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Error(c, httperr.NewBadRequest("Invalid ID"))
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Error(c, httperr.NewNotFound("Category not found"))
			return
		}
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
