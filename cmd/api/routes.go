package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepdeck/interview-api/pkg/response"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.RequestIDMiddleware())
	r.Use(app.RequestLogMiddleware())
	r.Use(app.CORSMiddleware())
	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	if app.Handler.Templates != nil {
		r.SetHTMLTemplate(app.Handler.Templates)
	}

	// page routes
	r.GET("/", app.Handler.Index)
	r.GET("/interview", app.Handler.Interview)
	r.GET("/results", app.Handler.Results)

	// model routes
	r.POST("/generate_questions", app.Handler.GenerateQuestions)
	r.POST("/evaluate", app.Handler.Evaluate)

	// diagnostics
	r.GET("/health", app.Handler.Health)
	r.GET("/test_api", app.Handler.TestAPI)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "page not found")
	})

	return r
}
