package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps dependencias para el router. Metrics y Gatherer son opcionales.
type RouterDeps struct {
	AppName    string
	SettingsUC settingsService
	ClientUC   clientService
	ProductUC  productService
	StockUC    stockService
	InvoiceUC  invoiceService
	QuoteUC    quoteService
	PDFUC      pdfService
	EmployeeUC employeeService
	LeaveUC    leaveService
	ReportUC   reportService
	Metrics    requestObserver
	Gatherer   prometheus.Gatherer
	JWTSecret  string
	JWTIssuer  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
	}

	// Público
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Settings
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/numbering", settingsHandler.GetNumbering)
	settings.Put("/numbering", settingsHandler.UpdateNumbering)
	settings.Get("/company", settingsHandler.GetCompany)
	settings.Put("/company", settingsHandler.UpdateCompany)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Products y stock
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	api.Get("/stock", productHandler.Stock)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.GetPDF)

	// Quotes (devis)
	quotes := api.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.PDFUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Patch("/:id/status", quoteHandler.UpdateStatus)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Post("/:id/convert", quoteHandler.Convert)
	quotes.Get("/:id/pdf", quoteHandler.GetPDF)

	// RH
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)

	leaves := api.Group("/leaves")
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	// preview antes de /:id para que no se interprete como id
	leaves.Get("/preview", leaveHandler.Preview)
	leaves.Post("/", leaveHandler.Create)
	leaves.Get("/", leaveHandler.List)
	leaves.Get("/:id", leaveHandler.GetByID)
	leaves.Put("/:id", leaveHandler.Update)
	leaves.Patch("/:id/status", leaveHandler.UpdateStatus)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/summary", reportHandler.Summary)
}
