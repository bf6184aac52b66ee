package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/direeo/llm-qa/internal/app"
	"github.com/direeo/llm-qa/internal/httputil"
	"github.com/direeo/llm-qa/internal/normalize"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	UserQuestion      string
	OriginalQuestion  string
	ProcessedQuestion string
	Answer            string
}

type askRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

func main() {
	deps := app.Build()
	if deps.LLMErr != nil {
		deps.Log.Warn("starting degraded: every answer reports the unavailable client", "err", deps.LLMErr)
	}

	r := httputil.NewRouter(deps.Log)
	r.Get("/", indexHandler(deps))
	r.Post("/", askFormHandler(deps))
	r.Post("/api/ask", askAPIHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", deps.Config.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Run the HTTP server
	g.Go(func() error {
		deps.Log.Info("web listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Shut down gracefully on signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("web service stopped", "err", err)
	}
}

func indexHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderIndex(deps, w, pageData{})
	}
}

func askFormHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		question := strings.TrimSpace(r.FormValue("question"))
		if question == "" {
			renderIndex(deps, w, pageData{Answer: "Please enter a question."})
			return
		}

		log := deps.Log.With(
			"exchange_id", uuid.NewString(),
			"request_id", middleware.GetReqID(r.Context()),
		)
		log.Info("question received", "question", normalize.Question(question))

		outcome := deps.QA.Answer(r.Context(), question)
		log.Info("exchange complete", "status", outcome.Status)

		renderIndex(deps, w, pageData{
			UserQuestion:      question,
			OriginalQuestion:  question,
			ProcessedQuestion: normalize.Question(question),
			Answer:            outcome.Display(),
		})
	}
}

// askAPIHandler answers JSON clients. Failures from the model are carried
// in-band in the response body, not as HTTP errors.
func askAPIHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}

		// Validate request
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		question := strings.TrimSpace(req.Question)
		if question == "" {
			httputil.Fail(deps.Log, w, "question must not be blank", nil, http.StatusBadRequest)
			return
		}

		log := deps.Log.With(
			"exchange_id", uuid.NewString(),
			"request_id", middleware.GetReqID(r.Context()),
		)
		log.Info("question received", "question", normalize.Question(question))

		outcome := deps.QA.Answer(r.Context(), question)
		log.Info("exchange complete", "status", outcome.Status)

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"question":            question,
			"normalized_question": normalize.Question(question),
			"answer":              outcome.Display(),
			"status":              outcome.Status,
		})
	}
}

func renderIndex(deps app.Deps, w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		deps.Log.Error("failed to render page", "err", err)
	}
}
