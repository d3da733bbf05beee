package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Empleados-api/internal/application/analytics"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/directory"
	"github.com/jhoicas/Empleados-api/internal/application/export"
	"github.com/jhoicas/Empleados-api/internal/application/view"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store     *directory.EmployeeStore
	Session   *auth.SessionGate
	ListView  *view.ListView
	Dashboard *analytics.DashboardUseCase
	Export    *export.ExportUseCase
	SaveDelay time.Duration
	Log       zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	api := app.Group("/api")

	// Auth y catálogo (público)
	authHandler := NewAuthHandler(deps.Session, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)
	api.Get("/catalog", Catalog)

	// Rutas protegidas (requieren Bearer Token de la sesión abierta)
	protected := api.Group("/", AuthMiddleware(deps.Session))
	protected.Post("/auth/logout", authHandler.Logout)

	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Directorio: nada responde hasta que el store termina de cargar
	employees := protected.Group("/employees", RequireStoreReady(deps.Store))
	employeeHandler := NewEmployeeHandler(deps.Store, deps.ListView, deps.SaveDelay, deps.Log)
	viewHandler := NewViewHandler(deps.Store, deps.ListView)
	exportHandler := NewExportHandler(deps.Export, deps.Log)

	// rutas fijas antes de /:id
	employees.Get("/export/pdf", exportHandler.DirectoryPDF)
	employees.Get("/export/xlsx", exportHandler.DirectoryXLSX)
	employees.Put("/filters", viewHandler.SetFilters)
	employees.Delete("/filters", viewHandler.ClearFilters)
	employees.Put("/view", viewHandler.SetView)
	employees.Put("/selection", viewHandler.SetSelection)
	employees.Delete("/selection/items", viewHandler.DeleteSelected)
	employees.Post("/selection/:id", viewHandler.ToggleSelection)
	employees.Post("/bulk-delete", employeeHandler.BulkDelete)

	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Patch("/:id/status", employeeHandler.ToggleStatus)
	employees.Get("/:id/pdf", exportHandler.EmployeePDF)
}
