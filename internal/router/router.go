package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/handlers"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	logmw := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(logmw.LoggerMiddleware)

	ah := handlers.NewAuthHandlers(deps)
	r.Mount("/auth", ah.AuthRoutes())

	// everything below needs a signed-in operator
	sessions := middleware.NewMiddleware(deps.AuthSvc)
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireSession)

		r.Mount("/accounts", handlers.NewAccountHandlers(deps).AccountRoutes())
		r.Mount("/customers", handlers.NewCustomerHandlers(deps).CustomerRoutes())
		r.Mount("/transactions", handlers.NewTransactionHandlers(deps).TransactionRoutes())
		r.Mount("/dashboard", handlers.NewDashboardHandlers(deps).DashboardRoutes())
		r.Mount("/sync", handlers.NewSyncHandlers(deps).SyncRoutes())
		r.Mount("/reports", handlers.NewReportHandlers(deps).ReportRoutes())
	})

	return r
}
