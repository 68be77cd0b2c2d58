package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepdeck/interview-api/internal/llm"
	"github.com/prepdeck/interview-api/pkg/response"
	"go.uber.org/zap"
)

// Health reports service readiness
func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{
		"status":              "healthy",
		"model":               h.Config.HF.Model,
		"hf_token_configured": h.Config.HF.Token != "",
		"openai_client_ready": h.LLM != nil,
		"service":             serviceName,
	})
}

// TestAPI issues a tiny probe request to verify upstream connectivity
func (h *Handler) TestAPI(c *gin.Context) {
	if h.LLM == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "OpenAI client not configured",
			"hf_token_set": h.Config.HF.Token != "",
		})
		return
	}

	messages := []llm.Message{{Role: "user", Content: "Say 'API test successful'"}}
	text, err := h.LLM.Chat(c.Request.Context(), messages, 10, 0)
	if err != nil {
		h.Logger.Error("test_api: probe failed", zap.Error(err), zap.Stack("stack"))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      fmt.Sprintf("API test failed: %v", err),
			"error_type": fmt.Sprintf("%T", err),
		})
		return
	}

	response.OK(c, gin.H{
		"status":         "API test successful",
		"model_response": text,
		"model":          h.Config.HF.Model,
	})
}
