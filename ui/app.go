package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"watermetal/ai"
	"watermetal/app"
	"watermetal/internal"
	"watermetal/internal/session"
	"watermetal/ports"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	store     *session.Store
	pipeline  *app.Pipeline
	reader    ports.TableReader
	assistant *ai.Assistant
	logger    *internal.Logger
	templates *template.Template

	port        string
	maxUploadMB int64
}

// Config holds UI application configuration
type Config struct {
	Port        string
	MaxUploadMB int64
	Store       *session.Store
	Pipeline    *app.Pipeline
	Reader      ports.TableReader
	Assistant   *ai.Assistant
	Logger      *internal.Logger
}

// NewApp creates a new UI application
func NewApp(config Config) (*App, error) {
	if config.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if config.Pipeline == nil {
		return nil, fmt.Errorf("pipeline is required")
	}
	if config.Reader == nil {
		return nil, fmt.Errorf("table reader is required")
	}
	if config.Assistant == nil {
		return nil, fmt.Errorf("assistant is required")
	}
	if config.Logger == nil {
		config.Logger = internal.DefaultLogger
	}
	if config.Port == "" {
		config.Port = "8080"
	}
	if config.MaxUploadMB <= 0 {
		config.MaxUploadMB = 50
	}

	funcMap := template.FuncMap{
		"printFloat": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:      chi.NewRouter(),
		store:       config.Store,
		pipeline:    config.Pipeline,
		reader:      config.Reader,
		assistant:   config.Assistant,
		logger:      config.Logger,
		templates:   templates,
		port:        config.Port,
		maxUploadMB: config.MaxUploadMB,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", http.StripPrefix("/", staticFS))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDashboard)
	a.router.Post("/upload", a.handleUpload)
	a.router.Post("/ask", a.handleAsk)

	// Generated artifacts
	a.router.Get("/download/report.docx", a.handleDownloadDocx)
	a.router.Get("/download/report.pdf", a.handleDownloadPDF)
	a.router.Get("/download/report.xlsx", a.handleDownloadXlsx)
	a.router.Get("/chart/pca.png", a.handleChartPNG)
}

// Router exposes the handler tree for tests and embedding.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	a.logger.Info("Starting WaterMetal Analyzer server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.logger.Error("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
