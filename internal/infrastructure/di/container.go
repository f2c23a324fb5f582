package di

import (
	"fmt"
	"time"

	"github.com/mf-advisor/advisor_service/internal/domain/services/catalog"
	"github.com/mf-advisor/advisor_service/internal/domain/services/investment"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/config"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/dataset"
	"github.com/mf-advisor/advisor_service/pkg/health"
	"github.com/mf-advisor/advisor_service/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *logger.Logger

	// Dataset
	Store    *dataset.Store
	Loader   *dataset.Loader
	Reloader *dataset.Reloader

	// Domain Services
	CatalogService    *catalog.Service
	InvestmentService *investment.Service

	// Health
	HealthChecker *health.HealthChecker
}

// NewContainer loads the datasets and wires all application dependencies
func NewContainer(cfg *config.Config, log *logger.Logger) (*Container, error) {
	loader := dataset.NewLoader(cfg.Dataset.MetricsFile, cfg.Dataset.NavFile, log)

	snap, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}
	store := dataset.NewStore(snap)

	reloader := dataset.NewReloader(loader, store, cfg.Dataset.ReloadSchedule, log)

	catalogService := catalog.NewService(store, cfg.Investment.SearchMaxHits, log)
	investmentService := investment.NewService(store, cfg.Investment, log)

	healthChecker := health.NewHealthChecker(5 * time.Second)
	healthChecker.Register(health.NewDatasetChecker("dataset", func() health.SnapshotInfo {
		return store.Snapshot()
	}, 48*time.Hour))

	return &Container{
		Config:            cfg,
		Logger:            log,
		Store:             store,
		Loader:            loader,
		Reloader:          reloader,
		CatalogService:    catalogService,
		InvestmentService: investmentService,
		HealthChecker:     healthChecker,
	}, nil
}

// Close gracefully shuts down all container resources
func (c *Container) Close() error {
	c.Reloader.Stop()

	if c.Logger != nil {
		c.Logger.Sync()
	}
	return nil
}
