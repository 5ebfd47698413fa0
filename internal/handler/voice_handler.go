package handler

import (
	"net/http"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/voice"

	"github.com/gin-gonic/gin"
)

type VoiceHandler struct{}

func NewVoiceHandler() *VoiceHandler {
	return &VoiceHandler{}
}

// VoiceQuery maps a finalized transcript to a search query. Apply is false
// when the transcript yields nothing, so the client keeps its current filter.
func (h *VoiceHandler) VoiceQuery(c *gin.Context) {
	var req VoiceQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	query, ok := voice.Normalize(req.Transcript)

	c.JSON(http.StatusOK, VoiceQueryResponse{Query: query, Apply: ok})
}
