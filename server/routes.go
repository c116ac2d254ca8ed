package server

import (
	"net/http"

	"labtrack/models"
	metricsprovider "labtrack/providers/metricsProvider"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metricsprovider.Handler())

	perm := srv.Middleware.RequirePermission

	r.Route("/api", func(api chi.Router) {
		// public routes
		api.Post("/auth/signin", srv.UserHandler.SignIn)
		api.Post("/auth/signup", srv.UserHandler.SignUp)
		api.Post("/auth/signout", srv.UserHandler.SignOut)
		api.Post("/auth/reset", srv.UserHandler.RequestPasswordReset)
		api.Post("/v2/auth/signin", srv.UserHandler.FirebaseSignIn)

		// protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			protected.Get("/me", srv.UserHandler.Me)

			protected.Route("/equipment", func(equipment chi.Router) {
				equipment.With(perm(models.EquipmentRead)).Get("/", srv.EquipmentHandler.ListEquipment)
				equipment.With(perm(models.EquipmentRead)).Get("/categories", srv.EquipmentHandler.ListCategories)
				equipment.With(perm(models.EquipmentCreate)).Post("/", srv.EquipmentHandler.CreateEquipment)
				equipment.With(perm(models.EquipmentRead)).Get("/{id}", srv.EquipmentHandler.GetEquipment)
				equipment.With(perm(models.EquipmentUpdate)).Put("/{id}", srv.EquipmentHandler.UpdateEquipment)
				equipment.With(perm(models.EquipmentUpdate)).Post("/{id}/retire", srv.EquipmentHandler.RetireEquipment)
				equipment.With(perm(models.EquipmentDelete)).Delete("/{id}", srv.EquipmentHandler.DeleteEquipment)
				equipment.With(perm(models.MaintenanceRead)).Get("/{id}/maintenance", srv.MaintenanceHandler.ListHistory)
			})

			protected.Route("/maintenance", func(maintenance chi.Router) {
				maintenance.With(perm(models.MaintenanceRead)).Get("/", srv.MaintenanceHandler.ListAllHistory)
				maintenance.With(perm(models.MaintenanceCreate)).Post("/", srv.MaintenanceHandler.RecordMaintenance)
				maintenance.With(perm(models.MaintenanceRead)).Get("/{id}", srv.MaintenanceHandler.GetRecord)
				maintenance.With(perm(models.MaintenanceUpdate)).Put("/{id}", srv.MaintenanceHandler.UpdateRecord)
				maintenance.With(perm(models.MaintenanceAssign)).Post("/{id}/assign", srv.MaintenanceHandler.AssignTechnician)
			})

			protected.Route("/alerts", func(alerts chi.Router) {
				alerts.With(perm(models.EquipmentRead)).Get("/", srv.AlertHandler.ListAlerts)
				alerts.With(perm(models.MaintenanceUpdate)).Post("/evaluate", srv.AlertHandler.EvaluateTriggers)
				alerts.With(perm(models.MaintenanceCreate)).Post("/issue", srv.AlertHandler.RaiseIssue)
				alerts.With(perm(models.MaintenanceUpdate)).Post("/{id}/acknowledge", srv.AlertHandler.Acknowledge)
				alerts.With(perm(models.MaintenanceUpdate)).Post("/{id}/resolve", srv.AlertHandler.Resolve)
				alerts.With(perm(models.AlertsManage)).Delete("/{id}", srv.AlertHandler.Dismiss)
			})

			protected.Route("/reports", func(reports chi.Router) {
				reports.With(perm(models.ReportsView)).Get("/dashboard", srv.ReportHandler.Dashboard)
				reports.With(perm(models.ReportsExport)).Get("/equipment.xlsx", srv.ReportHandler.ExportEquipment)
			})

			// admin routes
			protected.Route("/admin", func(admin chi.Router) {
				admin.Use(srv.Middleware.RequireRole(models.AdminRole))
				admin.Use(perm(models.UsersManage))
				admin.Get("/users", srv.UserHandler.ListUsers)
				admin.Put("/users/{id}/role", srv.UserHandler.ChangeUserRole)
				admin.Post("/users/{id}/deactivate", srv.UserHandler.DeactivateUser)
			})
		})
	})

	return r
}
