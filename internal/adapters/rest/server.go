package rest

import (
	"context"
	"net/http"
	"time"

	"househunt-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig,
	propertyHandlers *PropertyHandler,
	inquiryHandlers *InquiryHandler,
	profileHandlers *ProfileHandler,
	dictionariesHandlers *DictionariesHandler,
	auth *AuthMiddleware,
	baseLogger port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger), Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", Health)

	r.Route("/api/v1", func(r chi.Router) {
		// публичные роуты
		r.Get("/properties", propertyHandlers.FetchProperties)
		r.Get("/properties/{propertyID}", propertyHandlers.GetProperty)
		r.Get("/dictionaries", dictionariesHandlers.GetDictionaries)

		// роуты, которым нужен пользователь
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireIdentity)

			r.Get("/me", profileHandlers.GetProfile)
			r.Patch("/me", profileHandlers.UpdateProfile)
			r.Get("/me/properties", propertyHandlers.FetchOwnerProperties)

			r.Post("/properties", propertyHandlers.CreateProperty)
			r.Patch("/properties/{propertyID}", propertyHandlers.UpdateProperty)
			r.Delete("/properties/{propertyID}", propertyHandlers.DeleteProperty)

			r.Get("/inquiries", inquiryHandlers.FetchInquiries)
			r.Post("/inquiries", inquiryHandlers.CreateInquiry)
			r.Patch("/inquiries/{inquiryID}/status", inquiryHandlers.UpdateInquiryStatus)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// Handler отдает роутер целиком, нужен для httptest
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
