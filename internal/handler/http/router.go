package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type Handlers struct {
	Setting SettingHandler
	Bracket BracketHandler
	Role    RoleHandler
	Rule    RuleHandler
	Holiday HolidayHandler
	Payroll PayrollHandler
	Ledger  LedgerHandler
}

func NewRouter(logger *slog.Logger, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.Setting.GetConfiguration)
			r.Put("/{section}", h.Setting.SaveSection)
			r.Post("/{section}/queue", h.Setting.QueueSection)
		})

		r.Route("/scopes", func(r chi.Router) {
			r.Get("/", h.Setting.ListScopes)
			r.Post("/", h.Setting.SaveScope)
			r.Delete("/{id}", h.Setting.DeleteScope)
		})

		r.Route("/brackets", func(r chi.Router) {
			r.Route("/contributions/{type}", func(r chi.Router) {
				r.Get("/", h.Bracket.ListContribution)
				r.Put("/", h.Bracket.ReplaceContribution)
			})
			r.Route("/tax", func(r chi.Router) {
				r.Get("/", h.Bracket.ListTax)
				r.Put("/", h.Bracket.ReplaceTax)
			})
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", h.Role.List)
			r.Post("/", h.Role.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Role.Get)
				r.Put("/", h.Role.Update)
				r.Delete("/", h.Role.Delete)
				r.Post("/assignments", h.Role.Assign)
				r.Delete("/assignments/{userId}", h.Role.Unassign)
			})
		})
		r.Get("/users/{userId}/roles", h.Role.ListForUser)

		r.Route("/rules", func(r chi.Router) {
			r.Get("/", h.Rule.List)
			r.Post("/", h.Rule.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Rule.Get)
				r.Put("/", h.Rule.Update)
				r.Patch("/toggle", h.Rule.Toggle)
				r.Delete("/", h.Rule.Delete)
			})
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Holiday.List)
			r.Post("/", h.Holiday.Create)
			r.Put("/{id}", h.Holiday.Update)
			r.Delete("/{id}", h.Holiday.Delete)
		})

		r.Post("/payroll/generate", h.Payroll.Generate)

		r.Route("/ledgers", func(r chi.Router) {
			r.Get("/", h.Ledger.List)
			r.Post("/", h.Ledger.Save)
			r.Post("/render", h.Ledger.Render)
			r.Post("/preview", h.Ledger.Preview)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Ledger.Rerender)
				r.Delete("/", h.Ledger.Delete)
			})
		})
	})

	return r
}
