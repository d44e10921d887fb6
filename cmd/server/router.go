package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskerhq/tasker-api/internal/api"
	"github.com/taskerhq/tasker-api/internal/api/middleware"
	"github.com/taskerhq/tasker-api/internal/api/shared"
)

// setupRouter configures the application router: the request logger
// outermost, the panic recoverer inside it, and every route wrapped by
// the error dispatcher.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	dispatcher := api.NewDispatcher(app.logger)
	requestLogger := middleware.NewRequestLogger(app.logger)

	// Logger first so panics recovered below are still logged and the
	// correlation id exists for everything downstream.
	r.Use(requestLogger.Handler)
	r.Use(dispatcher.Recoverer)

	// Router-level failures flow through the same dispatch chain as
	// handler errors.
	r.NotFound(dispatcher.Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return &shared.HTTPError{Status: http.StatusNotFound, Detail: "Resource not found"}
	}))
	r.MethodNotAllowed(dispatcher.Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return &shared.HTTPError{Status: http.StatusMethodNotAllowed, Detail: "Method not allowed"}
	}))

	healthHandler := api.NewHealthHandler()
	boardHandler := api.NewBoardHandler(app.boardStore, app.logger)
	listHandler := api.NewListHandler(app.listStore, app.logger)
	cardHandler := api.NewCardHandler(app.cardStore, app.logger)

	r.Get("/", dispatcher.Wrap(healthHandler.Welcome))
	r.Get("/health", dispatcher.Wrap(healthHandler.Health))
	r.Get("/status", dispatcher.Wrap(healthHandler.Status))

	r.Route("/api", func(r chi.Router) {
		r.Route("/boards", func(r chi.Router) {
			r.Post("/", dispatcher.Wrap(boardHandler.Create))
			r.Get("/", dispatcher.Wrap(boardHandler.List))
			r.Get("/{id}", dispatcher.Wrap(boardHandler.Get))
			r.Put("/{id}", dispatcher.Wrap(boardHandler.Update))
			r.Delete("/{id}", dispatcher.Wrap(boardHandler.Delete))

			r.Post("/{boardID}/lists", dispatcher.Wrap(listHandler.Create))
			r.Get("/{boardID}/lists", dispatcher.Wrap(listHandler.ListByBoard))
		})

		r.Route("/lists", func(r chi.Router) {
			r.Put("/{id}", dispatcher.Wrap(listHandler.Update))
			r.Delete("/{id}", dispatcher.Wrap(listHandler.Delete))

			r.Post("/{listID}/cards", dispatcher.Wrap(cardHandler.Create))
			r.Get("/{listID}/cards", dispatcher.Wrap(cardHandler.ListByList))
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/{id}", dispatcher.Wrap(cardHandler.Get))
			r.Put("/{id}", dispatcher.Wrap(cardHandler.Update))
			r.Delete("/{id}", dispatcher.Wrap(cardHandler.Delete))
		})
	})

	return r
}
