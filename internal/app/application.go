package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront-catalog/internal/config"
	"storefront-catalog/internal/handlers"
	"storefront-catalog/internal/hooks"
	"storefront-catalog/internal/middleware"
	"storefront-catalog/internal/models"
	"storefront-catalog/internal/repository"
	"storefront-catalog/internal/seed"
	"storefront-catalog/internal/service"
	"storefront-catalog/pkg/cache"
	"storefront-catalog/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db    *gorm.DB
	cache *cache.Cache

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer
	hooks        *hooks.Registry

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Category repository.CategoryRepository
	Product  repository.ProductRepository
	Customer repository.CustomerRepository
}

type serviceContainer struct {
	Category *service.CategoryService
	Search   *service.ProductSearchService
	Listing  *service.ListingService
	Links    *service.LinkService
	Images   *service.ImageService
	Viewers  *service.ViewerService
}

type handlerContainer struct {
	Category *handlers.CategoryHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}

	app.initRepositories()
	app.initServices()
	app.initHandlers()

	if err := seed.EnsureShopRoot(app.db); err != nil {
		return nil, err
	}
	if cfg.IsDevelopment() {
		if err := seed.EnsureDemoCatalog(app.db); err != nil {
			logger.Error(err, "Failed to seed demo catalog", nil)
		}
	}

	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

// Hooks exposes the content filter registry so extensions can attach their
// category content filters during startup.
func (a *Application) Hooks() *hooks.Registry {
	return a.hooks
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.Category{},
		&models.CategoryTranslation{},
		&models.CustomerGroup{},
		&models.Customer{},
		&models.Product{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_categories_parent_active ON categories(parent_id) WHERE active = true",
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id) WHERE active = true",
		"CREATE INDEX IF NOT EXISTS idx_products_position ON products(position ASC)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() error {
	enabled := a.cfg.EnableCache && a.cfg.EnableRedis

	cacheService, err := cache.NewCache(a.cfg.RedisURL, enabled)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	a.cache = cacheService
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Category: repository.NewCategoryRepository(a.db),
		Product:  repository.NewProductRepository(a.db),
		Customer: repository.NewCustomerRepository(a.db),
	}
}

func (a *Application) initServices() {
	a.hooks = hooks.NewRegistry()

	links := service.NewLinkService(a.cfg.SiteURL)
	images := service.NewImageService(a.cfg.MediaBaseURL)
	presenter := service.NewCategoryPresenter(links, images)

	categoryService := service.NewCategoryService(a.repositories.Category, a.cache, a.cfg.MaxTreeDepth)
	searchService := service.NewProductSearchService(a.repositories.Product, a.cache, links, images)
	viewerService := service.NewViewerService(a.repositories.Customer)

	a.services = serviceContainer{
		Category: categoryService,
		Search:   searchService,
		Links:    links,
		Images:   images,
		Viewers:  viewerService,
		Listing: service.NewListingService(
			categoryService,
			searchService,
			presenter,
			links,
			a.hooks,
			viewerService,
			a.cfg.SiteName,
			a.cfg.SiteURL,
		),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Category: handlers.NewCategoryHandler(a.services.Listing, a.cfg),
	}
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Link"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", middleware.NoIndexMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", middleware.NoIndexMiddleware(), gin.WrapH(promhttp.Handler()))
	}

	catalog := router.Group("")
	catalog.Use(middleware.ViewerMiddleware(a.cfg))
	catalog.Use(middleware.PaginationMiddleware())
	{
		catalog.GET("/category/:id", a.handlers.Category.Show)
		catalog.GET("/category", a.handlers.Category.Show)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}
