package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prepdeck/interview-api/pkg/model"
	"github.com/prepdeck/interview-api/pkg/response"
	"go.uber.org/zap"
)

// GenerateQuestions produces six typed interview questions for a role
func (h *Handler) GenerateQuestions(c *gin.Context) {
	if h.LLM == nil {
		response.InternalError(c, "AI service unavailable. Please check configuration.")
		return
	}

	var req model.GenerateQuestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		response.BadRequest(c, "role is required")
		return
	}

	questions, err := h.LLM.GenerateQuestions(c.Request.Context(), role)
	if err != nil {
		h.Logger.Error("generate_questions: all attempts failed",
			zap.String("role", role),
			zap.Error(err),
		)
		response.InternalError(c, "Failed to generate questions. Please try again.")
		return
	}

	response.OK(c, gin.H{"questions": questions})
}
