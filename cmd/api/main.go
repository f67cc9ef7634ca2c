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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Facturation-api/internal/application/analytics"
	"github.com/jhoicas/Facturation-api/internal/application/billing"
	"github.com/jhoicas/Facturation-api/internal/application/hr"
	"github.com/jhoicas/Facturation-api/internal/application/inventory"
	hrrules "github.com/jhoicas/Facturation-api/internal/domain/hr"
	"github.com/jhoicas/Facturation-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Facturation-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Facturation-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Facturation-api/internal/interfaces/http"
	"github.com/jhoicas/Facturation-api/pkg/clock"
	"github.com/jhoicas/Facturation-api/pkg/config"
	"github.com/jhoicas/Facturation-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("currency", cfg.Business.Currency).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.MigrateUp(pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		version, dirty, _ := postgres.MigrationVersion(pool)
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migraciones aplicadas")
	}

	holidays := hrrules.DefaultHolidays
	if len(cfg.HR.Holidays) > 0 {
		holidays, err = hrrules.ParseHolidays(cfg.HR.Holidays)
		if err != nil {
			log.Fatal().Err(err).Msg("HR_HOLIDAYS")
		}
	}
	calendar := hrrules.NewHolidayCalendar(holidays)
	log.Info().Int("holidays", calendar.Len()).Msg("calendario de festivos cargado")

	// Las interfaces de métricas quedan nil (no un *Recorder nil) si están desactivadas.
	var (
		recorder       *metrics.Recorder
		billingMetrics billing.Metrics
		hrMetrics      hr.Metrics
	)
	if cfg.Metrics.Enabled {
		recorder = metrics.New(prometheus.DefaultRegisterer)
		billingMetrics, hrMetrics = recorder, recorder
	}

	clk := clock.System{}
	settings := billing.Settings{
		Currency:          cfg.Business.Currency,
		InvoicePrefix:     cfg.Business.InvoicePrefix,
		PaymentDays:       cfg.Business.PaymentDays,
		QuoteValidityDays: cfg.Business.QuoteValidityDays,
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	leaveRepo := postgres.NewLeaveRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, clientRepo, settings, billingMetrics, clk)
	quoteUC := billing.NewQuoteUseCase(txRunner, quoteRepo, clientRepo, settings, billingMetrics, clk)
	settingsUC := billing.NewSettingsUseCase(txRunner, companyRepo, settings, clk)
	clientUC := billing.NewClientUseCase(clientRepo, clk)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, quoteRepo, companyRepo, clientRepo, infrapdf.NewMarotoRenderer(), settings)

	productUC := inventory.NewProductUseCase(productRepo, clk)
	stockUC := inventory.NewStockUseCase(productRepo, reportRepo, cfg.Business.Currency)

	employeeUC := hr.NewEmployeeUseCase(employeeRepo, clk)
	leaveUC := hr.NewLeaveUseCase(leaveRepo, employeeRepo, hrrules.NewWorkingDayCalculator(calendar), hrMetrics, clk)

	reportUC := analytics.NewReportUseCase(reportRepo, stockUC, cfg.Business.Currency, clk)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturation API",
	}))

	deps := httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		SettingsUC: settingsUC,
		ClientUC:   clientUC,
		ProductUC:  productUC,
		StockUC:    stockUC,
		InvoiceUC:  invoiceUC,
		QuoteUC:    quoteUC,
		PDFUC:      pdfUC,
		EmployeeUC: employeeUC,
		LeaveUC:    leaveUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
	}
	if recorder != nil {
		deps.Metrics = recorder
		deps.Gatherer = prometheus.DefaultGatherer
	}
	httpRouter.Router(app, deps)

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
