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

type TemplateHandler struct {
	service *services.TemplateService
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{
		service: services.NewTemplateService(db),
	}
}

type templateRequest struct {
	Name       string `json:"name" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CategoryID *uint  `json:"category_id"`
	Tags       string `json:"tags"`
	IsPublic   bool   `json:"is_public"`
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Error(c, httperr.NewBadRequest(err.Error()))
		return
	}

	template := models.EmailTemplate{
		Name:       req.Name,
		Subject:    req.Subject,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		IsPublic:   req.IsPublic,
	}
	if err := h.service.Create(&template); err != nil {
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandler) List(c *gin.Context) {
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

	params := services.TemplateListParams{
		Skip:  skip,
		Limit: limit,
		Tag:   c.Query("tag"),
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil {
			httperr.Error(c, httperr.NewBadRequest("Invalid category_id"))
			return
		}
		id := uint(categoryID)
		params.CategoryID = &id
	}

	if isPublicStr := c.Query("is_public"); isPublicStr != "" {
		isPublic, err := strconv.ParseBool(isPublicStr)
		if err != nil {
			httperr.Error(c, httperr.NewBadRequest("Invalid is_public"))
			return
		}
		params.IsPublic = &isPublic
	}

	templates, err := h.service.List(params)
	if err != nil {
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Error(c, httperr.NewBadRequest("Invalid ID"))
		return
	}

	template, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Error(c, httperr.NewNotFound("Template not found"))
			return
		}
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Error(c, httperr.NewBadRequest("Invalid ID"))
		return
	}

	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Error(c, httperr.NewBadRequest(err.Error()))
		return
	}

	template, err := h.service.Update(uint(id), &services.TemplateUpdate{
		Name:       req.Name,
		Subject:    req.Subject,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		IsPublic:   req.IsPublic,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Error(c, httperr.NewNotFound("Template not found"))
			return
		}
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Error(c, httperr.NewBadRequest("Invalid ID"))
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Error(c, httperr.NewNotFound("Template not found"))
			return
		}
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}
