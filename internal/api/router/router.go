package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quillhq/chatdesk/internal/http/handlers"
	httpmiddleware "github.com/quillhq/chatdesk/internal/http/middleware"
	"github.com/quillhq/chatdesk/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	ChatHandler         *handlers.ChatHandler
	AppointmentsHandler *handlers.AppointmentsHandler
	MetricsHandler      http.Handler
	WidgetFS            fs.FS
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", handlers.HandleRoot)
	r.Get("/test", handlers.HandleTest)

	if cfg.ChatHandler != nil {
		r.Post("/chat", cfg.ChatHandler.HandleChat)
		r.Post("/chat-with-file", cfg.ChatHandler.HandleChatWithFile)
	}
	if cfg.AppointmentsHandler != nil {
		r.Get("/appointments", cfg.AppointmentsHandler.HandleList)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	if cfg.WidgetFS != nil {
		r.Handle("/widget/*", http.StripPrefix("/widget/", http.FileServer(http.FS(cfg.WidgetFS))))
	}

	return r
}
