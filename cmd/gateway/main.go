package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/mathtutor/mathtutor-api/internal/api/http"
	"github.com/mathtutor/mathtutor-api/internal/config"
	"github.com/mathtutor/mathtutor-api/internal/db"
	"github.com/mathtutor/mathtutor-api/internal/llm"
	"github.com/mathtutor/mathtutor-api/internal/problem"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := problem.NewSQLStore(dbh)

	// --- Model gateway ---
	// One explicitly constructed provider, passed into the service; a
	// missing credential surfaces on the first Generate call.
	provider, err := llm.NewProvider(ctx, llm.Config{
		Provider: cfg.LLMProvider,
		Gemini:   llm.GeminiConfig{APIKey: cfg.GeminiKey, Model: cfg.GeminiModel},
		OpenAI:   llm.OpenAIConfig{APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBase},
	})
	if err != nil {
		log.Fatalf("model provider: %v", err)
	}

	svc := problem.NewService(store, provider)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route("/api/math-problem", func(mr chi.Router) {
		mr.Post("/", api.GenerateProblemHandler(svc))
		mr.Post("/hint", api.HintHandler(svc))
		mr.Post("/solution", api.SolutionHandler(svc))
		mr.Post("/submit", api.SubmitAnswerHandler(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Printf("listening on %s (mode=%s, db=%s, model=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, provider.ModelID())
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
