package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fundaevento/plataforma/internal/common"
	"fundaevento/plataforma/internal/config"
	"fundaevento/plataforma/internal/db/repositories"
	"fundaevento/plataforma/internal/metrics"
	"fundaevento/plataforma/internal/services"
)

type Repositories struct {
	Users         *repositories.UserRepository
	Events        *repositories.EventRepository
	Registrations *repositories.RegistrationRepository
	BudgetConfig  *repositories.BudgetConfigRepository
	Categories    *repositories.CategoryRepository
	Reports       *repositories.ReportRepository
}

type Services struct {
	Identity      *services.IdentityService
	Events        *services.EventService
	Registrations *services.RegistrationService
	Reports       *services.ReportService
	Dashboard     *services.DashboardService
	Session       *common.SessionService
	Verifier      *common.IdentityVerifier
	Cache         common.CacheInterface
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services. gormDB backs CRUD,
// sqlxDB backs the report queries, redisClient backs sessions.
func InitDependencies(cfg *config.Config, gormDB *gorm.DB, sqlxDB *sqlx.DB, redisClient *redis.Client, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Users:         repositories.NewUserRepository(gormDB),
		Events:        repositories.NewEventRepository(gormDB),
		Registrations: repositories.NewRegistrationRepository(gormDB),
		BudgetConfig:  repositories.NewBudgetConfigRepository(gormDB),
		Categories:    repositories.NewCategoryRepository(gormDB),
		Reports:       repositories.NewReportRepository(sqlxDB),
	}

	cacheSvc := common.NewCacheService(time.Minute, 10*time.Minute)

	registrationSvc := services.NewRegistrationService(repos.Registrations, repos.Events, cfg.EnforceCapacity)
	reportSvc := services.NewReportService(repos.Reports)

	svcs := &Services{
		Identity:      services.NewIdentityService(repos.Users),
		Events:        services.NewEventService(repos.Events, repos.Registrations, repos.Categories),
		Registrations: registrationSvc,
		Reports:       reportSvc,
		Dashboard:     services.NewDashboardService(reportSvc, registrationSvc, repos.Users, repos.BudgetConfig),
		Session:       common.NewSessionService(redisClient, cfg.SessionTTL),
		Verifier:      common.NewIdentityVerifier([]byte(cfg.IdentitySecret)),
		Cache:         cacheSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
