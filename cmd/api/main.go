package main

import (
	"html/template"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prepdeck/interview-api/internal/config"
	"github.com/prepdeck/interview-api/internal/handler"
	"github.com/prepdeck/interview-api/internal/llm"
	"github.com/prepdeck/interview-api/internal/logger"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	LLM     *llm.Client
	Handler *handler.Handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s model=%s", cfg.Env, cfg.HF.Model)

	var llmClient *llm.Client
	if cfg.HF.Token != "" {
		llmClient = llm.NewClient(cfg.HF.Token, cfg.HF.Model, cfg.HF.BaseURL, cfg.HF.Timeout, log)
		sugar.Info("model client ready")
	} else {
		sugar.Warn("HF_TOKEN not set: question generation and evaluation are disabled, page routes still serve")
	}

	tmpl, err := template.ParseGlob(cfg.Templates)
	if err != nil {
		sugar.Warnw("templates not loaded, page routes will answer 500", "glob", cfg.Templates, "err", err)
		tmpl = nil
	}

	handlerApp := &handler.Handler{
		Logger:    log,
		Config:    cfg,
		LLM:       llmClient,
		Templates: tmpl,
	}

	app := &application{
		Logger:  log,
		Config:  cfg,
		LLM:     llmClient,
		Handler: handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
