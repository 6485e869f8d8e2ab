package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/config"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/handler/http/middleware"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	shiftHandler ShiftHandler,
	timeEntryHandler TimeEntryHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-shifts"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Get("/{id}", shiftHandler.Get)
				r.Post("/{id}/swap", shiftHandler.RequestSwap)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", shiftHandler.Create)
					r.Post("/bulk", shiftHandler.BulkCreate)
					r.Post("/conflicts", shiftHandler.CheckConflicts)
					r.Put("/{id}", shiftHandler.Update)
					r.Delete("/{id}", shiftHandler.Delete)
					r.Post("/{id}/swap/approve", shiftHandler.ApproveSwap)
					r.Post("/{id}/swap/reject", shiftHandler.RejectSwap)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/clock-in", timeEntryHandler.ClockIn)
				r.Post("/clock-out", timeEntryHandler.ClockOut)
				r.Post("/break/start", timeEntryHandler.StartBreak)
				r.Post("/break/end", timeEntryHandler.EndBreak)
				r.Get("/my", timeEntryHandler.GetMy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", timeEntryHandler.List)
					r.Get("/{id}", timeEntryHandler.Get)
					r.Put("/{id}", timeEntryHandler.Update)
					r.Delete("/{id}", timeEntryHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/my", leaveHandler.GetMy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.List)
					r.Get("/{id}", leaveHandler.Get)
					r.Post("/", leaveHandler.Create)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})
		})
	})

	return r
}
