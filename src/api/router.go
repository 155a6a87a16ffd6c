package api

import (
	db "budget-server/src/db/sql"
	"budget-server/src/errs"
	"budget-server/src/events"
	"budget-server/src/handlers"
	"budget-server/src/middleware"
	"budget-server/src/util"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Pool is what the router needs from the database: queries plus a ping for
// the health check.
type Pool interface {
	db.DBTX
	handlers.Pinger
}

type Options struct {
	Logger             zerolog.Logger
	CORSAllowedOrigins []string
	ReadOnly           bool
}

func NewRouter(pool Pool, summaries handlers.SummaryStore, publisher events.Publisher, opts Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(opts.Logger)...)
	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.CORSMiddleware(opts.CORSAllowedOrigins))
	r.Use(middleware.ReadOnlyMiddleware(opts.ReadOnly))

	r.Get("/health", handlers.Health(pool))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.CreateUser(pool))
		r.Get("/", handlers.GetAllUsers(pool))
		r.Get("/{id}", handlers.GetUser(pool))
		r.Put("/{id}", handlers.UpdateUser(pool))
		r.Delete("/{id}", handlers.DeleteUser(pool, summaries))
	})

	r.Route("/budgets", func(r chi.Router) {
		r.Post("/", handlers.CreateBudget(pool, publisher))
		r.Get("/user/{user_id}", handlers.GetAllBudgetsForUser(pool))
		r.Get("/{id}", handlers.GetBudgetByID(pool))
		r.Put("/{id}", handlers.UpdateBudget(pool))
		r.Delete("/{id}", handlers.DeleteBudget(pool, summaries))
		r.Put("/{id}/achieve", handlers.AchieveBudget(pool, publisher))
		r.Get("/{id}/achieved", handlers.CheckBudgetAchieved(pool))
		// {id} is the user here.
		r.Get("/{id}/{month}/{year}/summary", handlers.GetSpendingSummary(pool, summaries))
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", handlers.CreateTransaction(pool, summaries, publisher))
		r.Get("/budget/{budget_id}", handlers.GetTransactionsForBudget(pool))
		r.Get("/{id}", handlers.GetTransactionByID(pool))
		r.Delete("/{id}", handlers.DeleteTransaction(pool, summaries, publisher))
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", handlers.CreateNotification(pool, publisher))
		r.Get("/user/{user_id}", handlers.GetAllNotificationsForUser(pool))
		// {id} is the user here.
		r.Get("/{id}/{month}/{year}", handlers.GetNotificationsForPeriod(pool))
		r.Put("/{id}", handlers.UpdateNotification(pool))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		util.WriteError(w, errs.NewNotFoundError("Route not found"))
	})

	return r
}
