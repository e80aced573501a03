package handlers

import (
	"net/http"

	"github.com/draftwise/draftwise/internal/services"
	"github.com/draftwise/draftwise/pkg/httperr"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsHandler struct {
	service *services.StatsService
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		service: services.NewStatsService(db),
	}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats()
	if err != nil {
		httperr.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
