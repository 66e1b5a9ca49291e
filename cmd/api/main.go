package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Piscinas-api/internal/application/analytics"
	"github.com/jhoicas/Piscinas-api/internal/application/auth"
	appcomms "github.com/jhoicas/Piscinas-api/internal/application/comms"
	"github.com/jhoicas/Piscinas-api/internal/application/reports"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/infrastructure/cache"
	infracomms "github.com/jhoicas/Piscinas-api/internal/infrastructure/comms"
	infraexcel "github.com/jhoicas/Piscinas-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Piscinas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Piscinas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Piscinas-api/internal/infrastructure/queue"
	"github.com/jhoicas/Piscinas-api/internal/infrastructure/scheduler"
	infrastorage "github.com/jhoicas/Piscinas-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Piscinas-api/internal/interfaces/http"
	"github.com/jhoicas/Piscinas-api/pkg/config"
	"github.com/jhoicas/Piscinas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Migraciones embebidas antes de abrir el pool de trabajo
	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	phaseRepo := postgres.NewPhaseRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	serviceReportRepo := postgres.NewServiceReportRepository(pool)
	repairRepo := postgres.NewRepairRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	insuranceRepo := postgres.NewInsuranceRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	emailRepo := postgres.NewEmailRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Object storage (GCS)
	gcs, err := infrastorage.NewGCS(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage")
	}
	defer gcs.Close()

	// Cache del dashboard: Redis si está configurado, si no cache nulo
	var dashCache appanalytics.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		dashCache = redisCache
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: dashboard sin cache")
	}

	// Broker de eventos: RabbitMQ si está configurado
	var publisher appcomms.EventPublisher = queue.Noop{}
	if cfg.Queue.URL != "" {
		pub, err := queue.NewPublisher(cfg.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer pub.Close()
		publisher = pub
	} else {
		log.Warn().Msg("AMQP_URL vacío: eventos de mensajería desactivados")
	}

	// Casos de uso
	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, jwtCfg)
	oauthUC := auth.NewOAuthUseCase(userRepo, jwtCfg, auth.OAuthConfig{
		GoogleClientID: cfg.OAuth.GoogleClientID,
		RedirectURL:    cfg.OAuth.RedirectURL,
		StateTTL:       time.Duration(cfg.OAuth.StateTTLMin) * time.Minute,
	})

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo)
	phaseUC := usecase.NewPhaseUseCase(phaseRepo, projectRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo, projectRepo, gcs,
		time.Duration(cfg.Storage.URLTTLMinutes)*time.Minute)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, serviceReportRepo, clientRepo, txRunner)
	repairUC := usecase.NewRepairUseCase(repairRepo, clientRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, vendorRepo)
	purchasingUC := usecase.NewPurchasingUseCase(poRepo, inventoryRepo, vendorRepo)
	complianceUC := usecase.NewComplianceUseCase(licenseRepo, insuranceRepo)

	commsUC := appcomms.NewUseCase(providerRepo, emailRepo, infracomms.NewHTTPProviderClient(), publisher, log)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, dashCache, log)
	reportsUC := reports.NewUseCase(companyRepo, dashboardRepo, licenseRepo, insuranceRepo,
		map[string]reports.Exporter{
			"xlsx": infraexcel.NewReportExporter(),
			"pdf":  infrapdf.NewReportExporter(),
		})

	// Tareas periódicas
	sched, err := scheduler.New(cfg.Sync, maintenanceUC, commsUC, log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	sched.Start()
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AquaPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		ClientUC:      clientUC,
		ProjectUC:     projectUC,
		PhaseUC:       phaseUC,
		DocumentUC:    documentUC,
		MaintenanceUC: maintenanceUC,
		RepairUC:      repairUC,
		ExpenseUC:     expenseUC,
		PurchasingUC:  purchasingUC,
		ComplianceUC:  complianceUC,
		CommsUC:       commsUC,
		DashboardUC:   dashboardUC,
		ReportsUC:     reportsUC,
		AuthUC:        authUC,
		OAuthUC:       oauthUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
