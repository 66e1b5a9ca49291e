package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/analytics"
	"github.com/jhoicas/Piscinas-api/internal/application/auth"
	"github.com/jhoicas/Piscinas-api/internal/application/comms"
	"github.com/jhoicas/Piscinas-api/internal/application/reports"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	ClientUC      *usecase.ClientUseCase
	ProjectUC     *usecase.ProjectUseCase
	PhaseUC       *usecase.PhaseUseCase
	DocumentUC    *usecase.DocumentUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	RepairUC      *usecase.RepairUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	PurchasingUC  *usecase.PurchasingUseCase
	ComplianceUC  *usecase.ComplianceUseCase
	CommsUC       *comms.UseCase
	DashboardUC   *analytics.DashboardUseCase
	ReportsUC     *reports.UseCase
	AuthUC        *auth.AuthUseCase
	OAuthUC       *auth.OAuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api", MetricsMiddleware())

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.OAuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/prepare-oauth", authHandler.PrepareOAuth)
	authGroup.Post("/google", authHandler.GoogleCallback)
	// Alias histórico del frontend
	api.Post("/login", authHandler.Login)

	// Companies (alta inicial, público)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/session", authHandler.Session)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Patch("/:id", projectHandler.Update)
	projects.Post("/:id/archive", projectHandler.ToggleArchive)
	projects.Get("/:id/deletion-preview", projectHandler.DeletionPreview)
	projects.Delete("/:id", RequireRole(entity.RoleAdmin), projectHandler.Delete)

	// Phases (anidadas bajo el proyecto, planas por ID propio)
	phaseHandler := NewPhaseHandler(deps.PhaseUC)
	projects.Get("/:id/phases", phaseHandler.ListByProject)
	projects.Post("/:id/phases", phaseHandler.Create)
	phases := protected.Group("/project-phases")
	phases.Get("/:id", phaseHandler.GetByID)
	phases.Patch("/:id", phaseHandler.Update)
	phases.Delete("/:id", phaseHandler.Delete)

	// Documents
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	projects.Get("/:id/documents", documentHandler.ListByProject)
	projects.Post("/:id/documents", documentHandler.Upload)
	projects.Post("/:id/documents/sign-upload", documentHandler.SignUpload)
	documents := protected.Group("/documents")
	documents.Patch("/:id", documentHandler.Update)
	documents.Delete("/:id", documentHandler.Delete)

	// Maintenances
	maintenances := protected.Group("/maintenances")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Post("/", maintenanceHandler.Create)
	maintenances.Get("/:id", maintenanceHandler.GetByID)
	maintenances.Patch("/:id", maintenanceHandler.Update)
	maintenances.Get("/:id/report", maintenanceHandler.GetServiceReport)
	maintenances.Delete("/:id", maintenanceHandler.Delete)

	// Repairs
	repairs := protected.Group("/repairs")
	repairHandler := NewRepairHandler(deps.RepairUC)
	repairs.Get("/", repairHandler.List)
	repairs.Post("/", repairHandler.Create)
	repairs.Get("/:id", repairHandler.GetByID)
	repairs.Patch("/:id", repairHandler.Update)
	repairs.Delete("/:id", repairHandler.Delete)

	// Business (finanzas; admin y oficina)
	business := protected.Group("/business", RequireRole(entity.RoleAdmin, entity.RoleOficina))

	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := business.Group("/expenses")
	expenses.Get("/", expenseHandler.ListExpenses)
	expenses.Post("/", expenseHandler.CreateExpense)
	expenses.Get("/:id", expenseHandler.GetExpense)
	expenses.Patch("/:id", expenseHandler.UpdateExpense)
	expenses.Delete("/:id", expenseHandler.DeleteExpense)

	vendors := business.Group("/vendors")
	vendors.Get("/", expenseHandler.ListVendors)
	vendors.Post("/", expenseHandler.CreateVendor)
	vendors.Get("/:id", expenseHandler.GetVendor)
	vendors.Patch("/:id", expenseHandler.UpdateVendor)
	vendors.Delete("/:id", expenseHandler.DeleteVendor)

	purchasingHandler := NewPurchasingHandler(deps.PurchasingUC)
	pos := business.Group("/purchase-orders")
	pos.Get("/", purchasingHandler.ListPurchaseOrders)
	pos.Post("/", purchasingHandler.CreatePurchaseOrder)
	pos.Get("/:id", purchasingHandler.GetPurchaseOrder)
	pos.Patch("/:id", purchasingHandler.UpdatePurchaseOrder)
	pos.Delete("/:id", purchasingHandler.DeletePurchaseOrder)

	inventory := business.Group("/inventory")
	inventory.Get("/", purchasingHandler.ListInventory)
	inventory.Post("/", purchasingHandler.CreateInventoryItem)
	inventory.Get("/:id", purchasingHandler.GetInventoryItem)
	inventory.Patch("/:id", purchasingHandler.UpdateInventoryItem)
	inventory.Delete("/:id", purchasingHandler.DeleteInventoryItem)

	complianceHandler := NewComplianceHandler(deps.ComplianceUC)
	licenses := business.Group("/licenses")
	licenses.Get("/", complianceHandler.ListLicenses)
	licenses.Post("/", complianceHandler.CreateLicense)
	licenses.Get("/:id", complianceHandler.GetLicense)
	licenses.Patch("/:id", complianceHandler.UpdateLicense)
	licenses.Delete("/:id", complianceHandler.DeleteLicense)

	insurance := business.Group("/insurance")
	insurance.Get("/", complianceHandler.ListInsurance)
	insurance.Post("/", complianceHandler.CreateInsurance)
	insurance.Get("/:id", complianceHandler.GetInsurance)
	insurance.Patch("/:id", complianceHandler.UpdateInsurance)
	insurance.Delete("/:id", complianceHandler.DeleteInsurance)

	// Reports (bajo /business, mismos roles)
	reportHandler := NewReportHandler(deps.ReportsUC)
	business.Get("/reports", reportHandler.Monthly)
	business.Get("/reports/export", reportHandler.Export)
	business.Get("/reports/pdf", reportHandler.ExportPDF)

	// Communications
	commsHandler := NewCommsHandler(deps.CommsUC)
	providers := protected.Group("/communication-providers")
	providers.Get("/", commsHandler.ListProviders)
	providers.Post("/", commsHandler.CreateProvider)
	providers.Get("/:id", commsHandler.GetProvider)
	providers.Patch("/:id", commsHandler.UpdateProvider)
	providers.Delete("/:id", commsHandler.DeleteProvider)

	emails := protected.Group("/emails")
	emails.Get("/", commsHandler.ListEmails)
	emails.Post("/send", commsHandler.Send)
	emails.Post("/sync", commsHandler.Sync)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
