// Package bootstrap wires configuration into services and the HTTP router.
package bootstrap

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/profile"
	"resume-builder/internal/resumes"
	"resume-builder/internal/session"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Store         *session.Store
	LLM           llm.Client
	Profile       *profile.Client
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler

	closers []func() error
}

// Build prepares dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	app := &App{
		Config:  cfg,
		Store:   session.NewStore(),
		Profile: profile.NewClient(cfg.ProfileAPIURL, cfg.ProfileAPIToken),
	}

	app.LLM = llm.Client(llm.Placeholder{})
	if strings.TrimSpace(cfg.GeminiAPIKey) != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		app.LLM = client
		app.closers = append(app.closers, client.Close)
	} else {
		log.Printf("bootstrap: GEMINI_API_KEY empty; resume parsing falls back to heuristics")
	}

	app.ResumeService = &resumes.Service{
		LLM:     app.LLM,
		Profile: app.Profile,
		Store:   app.Store,
	}
	app.ResumeHandler = resumes.NewHandler(app.ResumeService)
	app.Router = server.NewRouter(app.Config, app.ResumeHandler)

	return app, nil
}

// Close releases provider connections.
func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			log.Printf("bootstrap: close: %v", err)
		}
	}
}
