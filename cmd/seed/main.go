// seed puebla la base con datos de demostración: una empresa, un usuario
// admin, clientes con piscina y una obra con fases.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración de entorno que el API (DATABASE_URL, etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Piscinas-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}
	ctx := context.Background()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		fail("migraciones", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	now := time.Now()

	// Empresa demo
	companyRepo := postgres.NewCompanyRepository(pool)
	company := &entity.Company{
		Name:      "AquaPro Piscinas Demo",
		TaxID:     "900123456-7",
		Address:   "Calle 10 # 42-28, Medellín",
		Phone:     "+57 300 000 0000",
		Email:     "demo@aquapro.example",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(ctx, company); err != nil {
		fail("crear empresa", err)
	}
	fmt.Printf("empresa %d: %s\n", company.ID, company.Name)

	// Usuario admin (password: admin1234)
	userRepo := postgres.NewUserRepository(pool)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña", err)
	}
	admin := &entity.User{
		CompanyID:    company.ID,
		Email:        "admin@aquapro.example",
		PasswordHash: string(hash),
		Name:         "Admin Demo",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		fail("crear usuario admin", err)
	}
	fmt.Printf("usuario %d: %s (password admin1234)\n", admin.ID, admin.Email)

	// Clientes con piscina
	clientRepo := postgres.NewClientRepository(pool)
	clients := []*entity.Client{
		{
			CompanyID:      company.ID,
			Name:           "Familia Restrepo",
			Email:          "restrepo@example.com",
			Phone:          "+57 301 111 1111",
			ServiceAddress: "Carrera 35 # 8A-120, El Poblado",
			PoolType:       "inground",
			PoolVolumeL:    48000,
			Status:         "active",
			Notes:          "Piscina de 8x5, clorada",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			CompanyID:      company.ID,
			Name:           "Hotel Mirador del Río",
			Email:          "mantenimiento@miradordelrio.example",
			Phone:          "+57 604 222 2222",
			ServiceAddress: "Km 4 vía Las Palmas",
			PoolType:       "commercial",
			PoolVolumeL:    210000,
			Status:         "active",
			Notes:          "Dos vasos; revisar cuarto de máquinas en cada visita",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
	for _, cl := range clients {
		if err := clientRepo.Create(ctx, cl); err != nil {
			fail("crear cliente", err)
		}
		fmt.Printf("cliente %d: %s\n", cl.ID, cl.Name)
	}

	// Obra con fases
	projectRepo := postgres.NewProjectRepository(pool)
	start := now.AddDate(0, 0, -30)
	end := now.AddDate(0, 2, 0)
	budget := decimal.NewFromInt(85_000_000)
	project := &entity.Project{
		CompanyID:       company.ID,
		ClientID:        clients[1].ID,
		Name:            "Renovación vaso principal",
		Description:     "Cambio de enchape, iluminación y sistema de filtrado",
		Status:          entity.StatusInProgress,
		StartDate:       &start,
		EndDate:         &end,
		Budget:          budget,
		PercentComplete: 35,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := projectRepo.Create(ctx, project); err != nil {
		fail("crear proyecto", err)
	}
	fmt.Printf("proyecto %d: %s\n", project.ID, project.Name)

	phaseRepo := postgres.NewPhaseRepository(pool)
	phases := []*entity.ProjectPhase{
		{ProjectID: project.ID, Name: "Demolición y retiro", Status: entity.StatusCompleted, PercentComplete: 100, SortOrder: 1, CreatedAt: now, UpdatedAt: now},
		{ProjectID: project.ID, Name: "Enchape", Status: entity.StatusInProgress, PercentComplete: 40, SortOrder: 2, CreatedAt: now, UpdatedAt: now},
		{ProjectID: project.ID, Name: "Puesta en marcha", Status: entity.StatusPlanning, PercentComplete: 0, SortOrder: 3, CreatedAt: now, UpdatedAt: now},
	}
	for _, ph := range phases {
		if err := phaseRepo.Create(ctx, ph); err != nil {
			fail("crear fase", err)
		}
	}
	fmt.Printf("%d fases creadas\n", len(phases))

	// Visita de mantenimiento programada para mañana
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	visit := &entity.Maintenance{
		CompanyID:     company.ID,
		ClientID:      clients[0].ID,
		ScheduledDate: now.AddDate(0, 0, 1),
		Frequency:     entity.FrequencyWeekly,
		Status:        entity.MaintenanceScheduled,
		TechnicianID:  &admin.ID,
		Notes:         "Visita semanal de rutina",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := maintenanceRepo.Create(ctx, visit); err != nil {
		fail("crear mantenimiento", err)
	}
	fmt.Printf("mantenimiento %d programado\n", visit.ID)

	fmt.Println("seed completado")
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
