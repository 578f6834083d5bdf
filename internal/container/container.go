package container

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/go-travel-intelligence/app/db"
	"github.com/FACorreiaa/go-travel-intelligence/config"
	"github.com/FACorreiaa/go-travel-intelligence/internal/attractions"
	"github.com/FACorreiaa/go-travel-intelligence/internal/budget"
	"github.com/FACorreiaa/go-travel-intelligence/internal/events"
	"github.com/FACorreiaa/go-travel-intelligence/internal/history"
	"github.com/FACorreiaa/go-travel-intelligence/internal/planner"
	"github.com/FACorreiaa/go-travel-intelligence/internal/pricing"
	"github.com/FACorreiaa/go-travel-intelligence/internal/ratelimit"
	"github.com/FACorreiaa/go-travel-intelligence/internal/resultcache"
	"github.com/FACorreiaa/go-travel-intelligence/internal/sources"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *slog.Logger
	Pool           *pgxpool.Pool
	Limiter        ratelimit.Limiter
	Cache          *resultcache.Cache
	PlannerHandler *planner.Handler
}

// NewContainer initializes and returns a new dependency container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	// Initialize database
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	// Shared plumbing: one limiter and one result cache for all pipelines.
	limiter := ratelimit.NewLimiter(map[string]int{
		"geoapify":     cfg.Sources.Geoapify.Quota,
		"foursquare":   cfg.Sources.Foursquare.Quota,
		"ticketmaster": cfg.Sources.Ticketmaster.Quota,
	}, cfg.Sources.Window, logger)
	cache := resultcache.New(cfg.Cache.AttractionsTTL, cfg.Cache.EventsTTL)

	// Source adapters
	geoapify := sources.NewGeoapifySource(cfg.Sources.Geoapify, limiter, logger)
	foursquare := sources.NewFoursquareSource(cfg.Sources.Foursquare, limiter, logger)
	ticketmaster := sources.NewTicketmasterSource(cfg.Sources.Ticketmaster, limiter, logger)
	weather := sources.NewOpenMeteoSource(cfg.Sources.Weather.GeocodeURL, cfg.Sources.Weather.ForecastURL, logger)

	// Pipeline services
	attractionService := attractions.NewServiceImpl([]sources.PlaceSource{geoapify, foursquare}, cache, logger)
	eventService := events.NewServiceImpl(ticketmaster, cache, logger)
	pricingService := pricing.NewServiceImpl(foursquare, logger)
	budgetService := budget.NewServiceImpl(logger)
	plannerService := planner.NewServiceImpl(attractionService, eventService, logger)

	historyRepo := history.NewPostgresRepository(pool, logger)

	plannerHandler := planner.NewHandler(plannerService, weather, pricingService, budgetService, historyRepo, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		Pool:           pool,
		Limiter:        limiter,
		Cache:          cache,
		PlannerHandler: plannerHandler,
	}, nil
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}

// RunMigrations runs database migrations
func (c *Container) RunMigrations(connectionURL string) error {
	return database.RunMigrations(connectionURL, c.Logger)
}
