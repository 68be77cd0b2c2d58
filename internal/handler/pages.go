package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepdeck/interview-api/pkg/response"
	"go.uber.org/zap"
)

// Index renders the landing page
func (h *Handler) Index(c *gin.Context) {
	h.renderPage(c, "index.html")
}

// Interview renders the interview page
func (h *Handler) Interview(c *gin.Context) {
	h.renderPage(c, "interview.html")
}

// Results renders the results page
func (h *Handler) Results(c *gin.Context) {
	h.renderPage(c, "results.html")
}

func (h *Handler) renderPage(c *gin.Context, name string) {
	if h.Templates == nil || h.Templates.Lookup(name) == nil {
		h.Logger.Error("render_page: template missing", zap.String("template", name))
		response.InternalError(c, fmt.Sprintf("template %s not found", name))
		return
	}
	c.HTML(http.StatusOK, name, nil)
}
