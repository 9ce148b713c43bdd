package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/beauty-site/internal/audit"
	"github.com/BruksfildServices01/beauty-site/internal/beauty"
	"github.com/BruksfildServices01/beauty-site/internal/config"
	"github.com/BruksfildServices01/beauty-site/internal/confirmation"
	"github.com/BruksfildServices01/beauty-site/internal/handlers"
	infraRepo "github.com/BruksfildServices01/beauty-site/internal/infra/repository"
	"github.com/BruksfildServices01/beauty-site/internal/middleware"
	"github.com/BruksfildServices01/beauty-site/internal/notify"
	"github.com/BruksfildServices01/beauty-site/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/beauty-site/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/beauty-site/internal/usecase/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/web"
)

// Dependencies reúne a infraestrutura montada no main.
type Dependencies struct {
	Config   *config.Config
	Profile  *config.Profile
	Backend  beauty.Backend
	Services *ucCatalog.ListServices
	DB       *gorm.DB
	Audit    *audit.Dispatcher
	Notifier notify.Notifier
	Clock    *timezone.Clock
	Logger   *zap.Logger
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	logger := deps.Logger

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.ThemeMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	signer := confirmation.NewSigner(cfg.JWTSecret, confirmation.DefaultTTL)
	limiter := middleware.NewIPRateLimiter(cfg.AppointmentRatePerMin, 2)

	var auditRepo handlers.AuditLogLister
	if deps.DB != nil {
		auditRepo = infraRepo.NewAuditLogGormRepository(deps.DB)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	getServiceUC := ucCatalog.NewGetService(deps.Services, deps.Backend)

	submitAppointmentUC := ucAppointment.NewSubmitAppointment(
		deps.Backend,
		deps.Audit,
		deps.Notifier,
		logger,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	page := handlers.NewPageRenderer(
		deps.Services,
		getServiceUC,
		deps.Profile,
		deps.Clock,
		cfg.CarouselInterval,
		logger,
	)

	catalogWebHandler := handlers.NewCatalogWebHandler(page, signer, cfg.CarouselInterval, logger)
	appointmentWebHandler := handlers.NewAppointmentWebHandler(page, submitAppointmentUC, signer, logger)
	contactHandler := handlers.NewContactHandler(deps.Profile)

	publicHandler := handlers.NewPublicHandler(
		deps.Services,
		getServiceUC,
		submitAppointmentUC,
		deps.Profile,
		logger,
	)

	adminAuthHandler := handlers.NewAdminAuthHandler(cfg.AdminPasswordHash, cfg.JWTSecret, logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo, logger)
	catalogAdminHandler := handlers.NewCatalogAdminHandler(deps.Services, logger)
	healthHandler := handlers.NewHealthHandler(deps.Backend, cfg.Version, cfg.StaticMode(), logger)

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/health", healthHandler.Check)

	r.GET("/", catalogWebHandler.Home)
	r.GET("/servicos/:id", catalogWebHandler.ServiceModal)
	r.GET(handlers.CarouselStreamPath, catalogWebHandler.CarouselStream)
	r.POST("/contato", contactHandler.Submit)
	r.POST("/agendamento",
		middleware.RateLimitMiddleware(limiter, appointmentWebHandler.TooManyRequests),
		appointmentWebHandler.Submit,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/services", publicHandler.ListServices)
		api.GET("/services/:id", publicHandler.GetService)
		api.GET("/whatsapp", publicHandler.WhatsApp)
		api.POST("/appointments",
			middleware.RateLimitMiddleware(limiter, nil),
			publicHandler.CreateAppointment,
		)

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		api.POST("/admin/login", adminAuthHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(cfg.JWTSecret))
		{
			admin.GET("/audit-logs", auditLogsHandler.List)
			admin.POST("/catalog/refresh", catalogAdminHandler.Refresh)
		}
	}
}
