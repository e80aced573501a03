package handlers

import (
	"net/http"

	"github.com/draftwise/draftwise/internal/services"
	"github.com/draftwise/draftwise/pkg/httperr"
	"github.com/draftwise/draftwise/pkg/logger"
	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	service *services.EmailService
}

func NewEmailHandler(service *services.EmailService) *EmailHandler {
	return &EmailHandler{service: service}
}

type processEmailRequest struct {
	Content string `json:"content" binding:"required"`
	Tone    string `json:"tone"`
	Length  string `json:"length"`
}

// ProcessEmail relays the email body to the LLM provider and returns the
// three-field improvement result. Every provider failure surfaces as a
// 500 with the specific cause; the distinction lives in logs only.
func (h *EmailHandler) ProcessEmail(c *gin.Context) {
	var req processEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Error(c, httperr.NewBadRequest(err.Error()))
		return
	}

	result, err := h.service.Improve(c.Request.Context(), req.Content, req.Tone, req.Length)
	if err != nil {
		logger.Error().Err(err).Msg("process-email failed")
		httperr.Error(c, httperr.NewServerError("Error processing email: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}
