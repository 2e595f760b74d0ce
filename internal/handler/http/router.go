package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peopledesk/payroll-backend-go/internal/handler/http/middleware"
	"github.com/peopledesk/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	companyHandler CompanyHandler,
	positionHandler PositionHandler,
	payPeriodHandler PayPeriodHandler,
	paymentHandler PaymentHandler,
	taskHandler TaskHandler,
	masterHandler MasterHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.List)
				r.Post("/", companyHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", companyHandler.GetByID)
					r.Put("/", companyHandler.Update)
					r.Delete("/", companyHandler.Delete)
					r.Post("/calculate", companyHandler.Calculate)

					r.Get("/positions", positionHandler.ListByCompany)
					r.Get("/departments", masterHandler.ListDepartments)
					r.Get("/payments", paymentHandler.ListByCompany)

					r.Route("/pay-periods", func(r chi.Router) {
						r.Get("/", payPeriodHandler.ListByCompany)
						r.Get("/current", payPeriodHandler.Current)
						r.Post("/close", payPeriodHandler.Close)
					})

					r.Route("/tasks", func(r chi.Router) {
						r.Get("/", taskHandler.ListByCompany)
						r.Post("/generate", taskHandler.Generate)
					})

					r.Get("/reports/payment-register", reportHandler.PaymentRegister)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Post("/", positionHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", positionHandler.GetByID)
					r.Put("/", positionHandler.Update)
					r.Delete("/", positionHandler.Delete)
					r.Get("/payrolls", masterHandler.ListPayrolls)
					r.Get("/pay-funds", masterHandler.ListPayFunds)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", paymentHandler.GetByID)
					r.Delete("/", paymentHandler.Delete)
					r.Get("/positions", paymentHandler.Positions)
					r.Patch("/status", paymentHandler.SetStatus)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/{id}/complete", taskHandler.Complete)
				r.Post("/{id}/reopen", taskHandler.Reopen)
			})

			r.Route("/payment-types", func(r chi.Router) {
				r.Get("/", masterHandler.ListPaymentTypes)
				r.Post("/", masterHandler.CreatePaymentType)
				r.Delete("/{id}", masterHandler.DeletePaymentType)
			})

			r.Route("/fund-types", func(r chi.Router) {
				r.Get("/", masterHandler.ListFundTypes)
				r.Post("/", masterHandler.CreateFundType)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Post("/", masterHandler.CreateDepartment)
				r.Delete("/{id}", masterHandler.DeleteDepartment)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/", masterHandler.CreatePayroll)
				r.Delete("/{id}", masterHandler.DeletePayroll)
			})
		})
	})
	return r
}
