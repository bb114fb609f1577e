package http

import (
	"log/slog"
	"os"

	"github.com/Aggron2k/nexus-hub-sub000/internal/handler/http/middleware"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	positionHandler PositionHandler,
	scheduleHandler ScheduleHandler,
	shiftRequestHandler ShiftRequestHandler,
	attendanceHandler AttendanceHandler,
	timeOffHandler TimeOffHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nexus-hub"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/dev-token", authHandler.DevToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.GetMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", userHandler.List)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", positionHandler.List)
				r.Get("/{id}", positionHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", positionHandler.Create)
					r.Put("/{id}", positionHandler.Update)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Route("/weeks", func(r chi.Router) {
					r.Get("/", scheduleHandler.ListWeeks)
					r.Get("/{id}", scheduleHandler.GetWeek)
					r.Get("/{id}/attendance", attendanceHandler.ListByWeek)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", scheduleHandler.CreateWeek)
						r.Patch("/{id}/publish", scheduleHandler.Publish)
					})
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/{id}/attendance", attendanceHandler.GetByShift)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", scheduleHandler.CreateShift)
						r.Put("/{id}", scheduleHandler.UpdateShift)
						r.Delete("/{id}", scheduleHandler.DeleteShift)
						r.Post("/{id}/attendance", attendanceHandler.Record)
					})
				})
			})

			r.Route("/shift-requests", func(r chi.Router) {
				r.Post("/", shiftRequestHandler.Submit)
				r.Get("/", shiftRequestHandler.List)
				r.Get("/{id}", shiftRequestHandler.Get)
				r.Put("/{id}", shiftRequestHandler.Edit)
				r.Delete("/{id}", shiftRequestHandler.Withdraw)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/review", shiftRequestHandler.Review)
					r.Post("/{id}/convert", shiftRequestHandler.Convert)
				})
			})

			r.Route("/time-off", func(r chi.Router) {
				r.Post("/", timeOffHandler.Create)
				r.Get("/", timeOffHandler.List)
				r.Get("/balance", timeOffHandler.Balance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/review", timeOffHandler.Review)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/monthly", payrollHandler.Monthly)
				r.Get("/yearly", payrollHandler.Yearly)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/team", payrollHandler.Team)
				})
			})
		})
	})
	return r
}
