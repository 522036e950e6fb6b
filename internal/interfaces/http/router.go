package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/frota-api/internal/application/analytics"
	"github.com/jhoicas/frota-api/internal/application/auth"
	"github.com/jhoicas/frota-api/internal/application/fleet"
	"github.com/jhoicas/frota-api/internal/application/inventory"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/schedule"
	"github.com/jhoicas/frota-api/internal/application/sheet"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	MaterialUC     *inventory.MaterialUseCase
	MovementUC     *inventory.MovementUseCase
	VehicleUC      *fleet.VehicleUseCase
	ScheduleUC     *schedule.UseCase
	PavUC          *fleet.PavUseCase
	SubstitutionUC *fleet.SubstitutionUseCase
	Reports        *report.UseCase
	DashboardUC    *analytics.DashboardUseCase
	SheetReader    sheet.Reader
	JWTSecret      string
}

// Router registra las rutas de la API.
// Las rutas fijas (/import, /export, /report, /batch...) van antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Resumen
	protected.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).Summary)

	// Materiales
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.Reports, deps.SheetReader)
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Create)
	materials.Post("/import", materialHandler.Import)
	materials.Get("/export", materialHandler.Export)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Movimientos de stock
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.Reports)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Get("/export", movementHandler.ExportXLSX)
	movements.Get("/report", movementHandler.ExportPDF)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Viaturas
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC, deps.Reports, deps.SheetReader)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Post("/import", vehicleHandler.Import)
	vehicles.Get("/export", vehicleHandler.Export)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Agenda
	schedules := protected.Group("/schedules")
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC, deps.Reports)
	schedules.Get("/", scheduleHandler.List)
	schedules.Post("/", scheduleHandler.Create)
	schedules.Post("/batch", scheduleHandler.CreateBatch)
	schedules.Post("/reassign-vehicle", scheduleHandler.ReassignVehicle)
	schedules.Post("/reassign-time", scheduleHandler.ReassignTime)
	schedules.Post("/delete-many", scheduleHandler.DeleteMany)
	schedules.Get("/export", scheduleHandler.ExportXLSX)
	schedules.Get("/report", scheduleHandler.ExportPDF)
	schedules.Put("/:id", scheduleHandler.Update)
	schedules.Delete("/:id", scheduleHandler.Delete)

	// Procesos PAV
	pav := protected.Group("/pav")
	pavHandler := NewPavHandler(deps.PavUC, deps.Reports, deps.SheetReader)
	pav.Get("/", pavHandler.List)
	pav.Post("/", pavHandler.Create)
	pav.Post("/import", pavHandler.Import)
	pav.Get("/export", pavHandler.ExportXLSX)
	pav.Get("/report", pavHandler.ExportPDF)
	pav.Put("/:id", pavHandler.Update)
	pav.Delete("/:id", pavHandler.Delete)

	// Sustituciones de flota
	substitutions := protected.Group("/substitutions")
	substitutionHandler := NewSubstitutionHandler(deps.SubstitutionUC, deps.Reports, deps.SheetReader)
	substitutions.Get("/", substitutionHandler.List)
	substitutions.Post("/", substitutionHandler.Create)
	substitutions.Post("/import", substitutionHandler.Import)
	substitutions.Get("/export", substitutionHandler.Export)
	substitutions.Put("/:id", substitutionHandler.Update)
	substitutions.Delete("/:id", substitutionHandler.Delete)
}
