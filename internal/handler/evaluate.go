package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prepdeck/interview-api/pkg/model"
	"github.com/prepdeck/interview-api/pkg/response"
)

// Evaluate grades a candidate answer. Once the input passes validation
// this endpoint always answers 200 with a usable evaluation; upstream
// trouble degrades to a canned manual-review result instead of an error.
func (h *Handler) Evaluate(c *gin.Context) {
	if h.LLM == nil {
		response.InternalError(c, "AI service unavailable. Please check configuration.")
		return
	}

	var req model.EvaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" || answer == "" {
		response.BadRequest(c, "question and answer are required")
		return
	}

	evaluation := h.LLM.EvaluateAnswer(c.Request.Context(), question, answer)
	response.OK(c, evaluation)
}
