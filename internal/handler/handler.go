package handler

import (
	"html/template"

	"github.com/prepdeck/interview-api/internal/config"
	"github.com/prepdeck/interview-api/internal/llm"
	"go.uber.org/zap"
)

const serviceName = "professional-interview-generator"

// Handler carries the process-wide collaborators. LLM is nil when no
// HF_TOKEN was configured; the model endpoints then answer 500 while the
// page routes keep working.
type Handler struct {
	Logger    *zap.Logger
	Config    *config.Config
	LLM       *llm.Client
	Templates *template.Template
}
