package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ArturCreativeLab/studio-api/config"
	"github.com/ArturCreativeLab/studio-api/internal/adapters/orcid"
	"github.com/ArturCreativeLab/studio-api/internal/data"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Profiles  *service.ProfileService
	Projects  *service.ProjectService
	Offerings *service.OfferingService
	Resources *service.ResourceService
	Research  *service.ResearchService
	Briefings *service.BriefingService
	Dashboard *service.DashboardService
}

// BuildServicesConfig contains dependencies for building services.
// DB may be nil; the container then runs in degraded guest-only mode with
// content and profile operations unavailable at the repository level.
type BuildServicesConfig struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires repositories and services from the given dependencies.
func BuildServices(cfg BuildServicesConfig) ServiceContainer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var accounts service.AccountDeps
	var container ServiceContainer

	if cfg.DB != nil {
		profileRepo := data.NewProfileRepo(cfg.DB)
		projectRepo := data.NewProjectRepo(cfg.DB)
		offeringRepo := data.NewOfferingRepo(cfg.DB)
		resourceRepo := data.NewResourceRepo(cfg.DB)
		researchRepo := data.NewResearchRepo(cfg.DB)
		briefingRepo := data.NewBriefingRepo(cfg.DB)

		accounts = service.AccountDeps{Profiles: profileRepo, Credentials: profileRepo}

		verifier := orcid.NewClient(orcid.Config{BaseURL: cfg.Config.Orcid.BaseURL})

		container.Profiles = service.NewProfileService(service.ProfileServiceOptions{
			Profiles:   profileRepo,
			Verifier:   verifier,
			AdminOrcid: orcid.OverrideID(),
			Logger:     logger,
		})
		container.Projects = service.NewProjectService(service.ProjectServiceOptions{Projects: projectRepo})
		container.Offerings = service.NewOfferingService(service.OfferingServiceOptions{Offerings: offeringRepo})
		container.Resources = service.NewResourceService(service.ResourceServiceOptions{Resources: resourceRepo})
		container.Research = service.NewResearchService(service.ResearchServiceOptions{Articles: researchRepo})
		container.Briefings = service.NewBriefingService(service.BriefingServiceOptions{Briefings: briefingRepo})
		container.Dashboard = service.NewDashboardService(service.DashboardServiceOptions{
			Projects:  projectRepo,
			Offerings: offeringRepo,
			Resources: resourceRepo,
			Articles:  researchRepo,
			Briefings: briefingRepo,
		})
	} else {
		logger.Warn("database not configured, running guest-only")
	}

	container.Auth = BuildAuthService(AuthBuildConfig{
		Auth:        cfg.Config.Auth,
		RedisClient: cfg.RedisClient,
		Accounts:    accounts,
		Logger:      logger,
	})

	return container
}
