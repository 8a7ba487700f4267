// Package httpapi exposes the platform over HTTP: practice test CRUD,
// live-streamed question generation, the tutor chat, study plans and the
// admin key panel.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
	"github.com/Mr-Gerald/graceful-path-web/internal/studyplan"
	"github.com/Mr-Gerald/graceful-path-web/internal/tutor"
)

// Server wires repositories and generation services into an HTTP handler.
type Server struct {
	tests  content.TestRepo
	keys   content.KeyRepo
	events content.EventRepo
	pool   *keypool.Pool
	quiz   *quizgen.Service
	tutor  *tutor.Service
	plans  *studyplan.Service
	log    *zap.SugaredLogger
}

// Config collects the server's dependencies.
type Config struct {
	Tests  content.TestRepo
	Keys   content.KeyRepo
	Events content.EventRepo
	Pool   *keypool.Pool
	Quiz   *quizgen.Service
	Tutor  *tutor.Service
	Plans  *studyplan.Service
	Logger *zap.SugaredLogger
}

// NewServer creates a Server. A nil logger falls back to a no-op logger.
func NewServer(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		tests:  cfg.Tests,
		keys:   cfg.Keys,
		events: cfg.Events,
		pool:   cfg.Pool,
		quiz:   cfg.Quiz,
		tutor:  cfg.Tutor,
		plans:  cfg.Plans,
		log:    log,
	}
}

// Router builds the chi handler with the full route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/tests", func(r chi.Router) {
			r.Get("/", s.listTests)
			r.Post("/", s.createTest)
			r.Route("/{testID}", func(r chi.Router) {
				r.Get("/", s.getTest)
				r.Put("/", s.updateTest)
				r.Delete("/", s.deleteTest)
			})
		})

		// Generation holds the connection open and streams server-sent
		// events, so it sits outside the request timeout applied below.
		r.Post("/generate", s.generate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Post("/chat", s.chat)
			r.Post("/study-plan", s.studyPlan)

			r.Route("/keys", func(r chi.Router) {
				r.Get("/", s.listKeys)
				r.Post("/", s.addKey)
				r.Patch("/{keyID}", s.updateKey)
				r.Delete("/{keyID}", s.deleteKey)
			})

			r.Get("/events", s.listEvents)
		})
	})

	return r
}

// requestLogger records method, path, status and latency for every request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// refreshPool reloads the rotation pool from the active keys in the store.
// The cursor survives reloads so rotation picks up where it left off.
func (s *Server) refreshPool(r *http.Request) error {
	secrets, err := s.keys.ActiveSecrets(r.Context())
	if err != nil {
		return err
	}
	s.pool.Replace(secrets)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
