package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/lahermandad/internal/audit"
	"github.com/BruksfildServices01/lahermandad/internal/config"
	"github.com/BruksfildServices01/lahermandad/internal/domain/fitting"
	"github.com/BruksfildServices01/lahermandad/internal/handlers"
	"github.com/BruksfildServices01/lahermandad/internal/imageproc"
	"github.com/BruksfildServices01/lahermandad/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/lahermandad/internal/infra/repository"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	"github.com/BruksfildServices01/lahermandad/internal/storage"
	"github.com/BruksfildServices01/lahermandad/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/lahermandad/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/lahermandad/internal/usecase/catalog"
	ucDashboard "github.com/BruksfildServices01/lahermandad/internal/usecase/dashboard"
	ucSettings "github.com/BruksfildServices01/lahermandad/internal/usecase/settings"
)

// Infra holds the process-wide singletons built in main.
type Infra struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Storage storage.FactoryResult
	Audit   *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) {

	// ======================================================
	// INFRA
	// ======================================================
	db := infra.DB
	loc := timezone.Location(cfg.ShopTimezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	productRepo := infraRepo.NewProductGormRepository(db)
	bannerRepo := infraRepo.NewBannerGormRepository(db)
	settingsRepo := infraRepo.NewSettingsGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	auditRepo := infraRepo.NewAuditLogGormRepository(db)

	settingsCache := cache.NewSettingsRedisCache(infra.Redis)

	images := ucCatalog.NewImages(infra.Storage.Storage, imageproc.Options{
		MaxDimension: cfg.Image.MaxDimension,
		Quality:      cfg.Image.Quality,
	})

	registry := fitting.NewRegistry(cfg.SessionTTL)
	codec := &middleware.SessionCodec{
		Secret: []byte(cfg.SessionSecret),
		Secure: cfg.IsProduction(),
		MaxAge: cfg.SessionTTL,
	}
	fittingSession := middleware.FittingSession(registry, codec)

	// ======================================================
	// USE CASES
	// ======================================================
	products := ucCatalog.NewProducts(productRepo, images, infra.Audit)
	banners := ucCatalog.NewBanners(bannerRepo, images, infra.Audit)
	settings := ucSettings.NewService(settingsRepo, settingsCache, infra.Audit)

	submitUC := ucAppointment.NewSubmitAppointment(appointmentRepo, infra.Audit, loc, time.Now)
	availabilityUC := ucAppointment.NewCheckAvailability(appointmentRepo, loc, time.Now)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, infra.Audit)
	toggleUC := ucAppointment.NewToggleBlockedDates(appointmentRepo, infra.Audit)

	summaryUC := ucDashboard.NewGetSummary(appointmentRepo, productRepo, bannerRepo, settingsRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg, infra.Audit)
	publicHandler := handlers.NewPublicHandler(products, banners, settings, appointmentRepo, submitUC, availabilityUC)
	fittingHandler := handlers.NewFittingRoomHandler(productRepo)
	appointmentHandler := handlers.NewAppointmentHandler(listUC, updateStatusUC, toggleUC, appointmentRepo, loc)
	productHandler := handlers.NewProductHandler(products)
	bannerHandler := handlers.NewBannerHandler(banners)
	settingsHandler := handlers.NewSettingsHandler(settings)
	dashboardHandler := handlers.NewDashboardHandler(summaryUC)
	calculatorHandler := handlers.NewCalculatorHandler(productRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo)

	// ======================================================
	// HEALTH / STATIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"storage":       infra.Storage.Driver,
			"fitting_rooms": registry.Len(),
		})
	})

	if infra.Storage.Driver == "local" {
		r.Static(cfg.Storage.LocalURLPrefix, cfg.Storage.LocalDir)
	}

	api := r.Group("/api")

	// ======================================================
	// AUTH
	// ======================================================
	api.POST("/auth/login",
		middleware.RateLimit(cfg.RateLimit, infra.Redis, "login"),
		authHandler.Login,
	)

	// ======================================================
	// PUBLIC (STOREFRONT)
	// ======================================================
	public := api.Group("/public")
	public.Use(fittingSession)
	{
		public.GET("/home", publicHandler.Home)
		public.GET("/how-it-works", publicHandler.HowItWorks)
		public.GET("/settings", publicHandler.Settings)
		public.GET("/products", publicHandler.Products)
		public.GET("/categories", publicHandler.Categories)

		public.GET("/fitting-room", fittingHandler.Get)
		public.POST("/fitting-room/items", fittingHandler.AddItem)
		public.DELETE("/fitting-room/items/:fittingId", fittingHandler.RemoveItem)
		public.DELETE("/fitting-room", fittingHandler.Clear)

		public.GET("/blocked-dates", publicHandler.BlockedDates)
		public.GET("/availability", publicHandler.Availability)
		public.POST("/appointments",
			middleware.RateLimit(cfg.RateLimit, infra.Redis, "appointments"),
			publicHandler.CreateAppointment,
		)
	}

	// ======================================================
	// ADMIN (JWT)
	// ======================================================
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/me", authHandler.Me)
		admin.GET("/dashboard", dashboardHandler.Summary)

		admin.GET("/settings", settingsHandler.Get)
		admin.PUT("/settings", settingsHandler.Update)

		admin.GET("/products", productHandler.List)
		admin.GET("/products/:id", productHandler.Get)
		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.GET("/banners", bannerHandler.List)
		admin.POST("/banners", bannerHandler.Create)
		admin.PUT("/banners/:id", bannerHandler.Update)
		admin.DELETE("/banners/:id", bannerHandler.Delete)

		admin.GET("/appointments", appointmentHandler.List)
		admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

		admin.GET("/blocked-dates", appointmentHandler.BlockedDates)
		admin.POST("/blocked-dates/toggle", appointmentHandler.ToggleBlockedDates)
		admin.POST("/blocked-dates/preview", appointmentHandler.PreviewToggle)

		admin.POST("/calculator", calculatorHandler.Calculate)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
