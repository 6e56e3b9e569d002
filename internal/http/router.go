package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"personalcolor-ai/internal/handlers"
	"personalcolor-ai/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService   service.ChatService
	SurveyService service.SurveyService
	Health        http.Handler
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	chat := handlers.NewChatHandler(deps.ChatService)
	survey := handlers.NewSurveyHandler(deps.SurveyService)

	r.Route("/api", func(r chi.Router) {
		r.Route("/chatbot", func(r chi.Router) {
			r.Post("/start", chat.Start)
			r.Post("/analyze", chat.Analyze)
			r.Post("/end/{id}", chat.End)
			r.Post("/report/save", chat.SaveReport)
			r.Get("/history/{id}", chat.History)
		})

		r.Post("/survey/submit", survey.Submit)

		r.Get("/diagnoses", survey.List)
		r.Get("/diagnoses/{id}/report", survey.Report)

		if deps.Health != nil {
			r.Method(http.MethodGet, "/health", deps.Health)
		}
	})

	return r
}
