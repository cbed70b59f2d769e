package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ArturCreativeLab/studio-api/config"
	"github.com/ArturCreativeLab/studio-api/internal/adapters/devauth"
	"github.com/ArturCreativeLab/studio-api/internal/adapters/disabledauth"
	"github.com/ArturCreativeLab/studio-api/internal/adapters/memstore"
	"github.com/ArturCreativeLab/studio-api/internal/adapters/oidc"
	redisadapter "github.com/ArturCreativeLab/studio-api/internal/adapters/redis"
	"github.com/ArturCreativeLab/studio-api/internal/ports"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// AuthBuildConfig contains configuration for the auth service.
type AuthBuildConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Accounts    service.AccountDeps
	Logger      *slog.Logger
}

// BuildAuthService creates the auth service. It never returns nil: when the
// identity provider or Redis is unavailable the service is built with a
// disabled provider and an in-memory session store, which degrades the
// deployment to guest-only access instead of failing startup.
func BuildAuthService(cfg AuthBuildConfig) *service.AuthService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var sessions ports.SessionStore
	if cfg.RedisClient != nil {
		sessions = redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	} else {
		logger.Warn("redis not configured, sessions held in memory")
		sessions = memstore.NewSessionStore()
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:        buildProvider(cfg, logger),
		Sessions:        sessions,
		Accounts:        cfg.Accounts,
		SessionDuration: cfg.Auth.SessionDuration,
		Logger:          logger,
	})
}

// buildProvider selects the identity provider from the configured auth mode.
func buildProvider(cfg AuthBuildConfig, logger *slog.Logger) ports.AuthProvider {
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			UserID:          cfg.Auth.DevAuth.UserID,
			Name:            cfg.Auth.DevAuth.Name,
			Email:           cfg.Auth.DevAuth.Email,
			SessionDuration: cfg.Auth.SessionDuration,
		})
		if err != nil {
			logger.Warn("failed to create dev auth provider, sign-in disabled", "error", err)
			return disabledauth.NewProvider()
		}
		return prov

	case config.AuthModeOAuth:
		oauth := cfg.Auth.OAuth
		if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
			logger.Warn("oauth selected but required config missing, sign-in disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
			return disabledauth.NewProvider()
		}
		prov, err := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     oauth.ClientID,
			ClientSecret: oauth.ClientSecret,
			RedirectURL:  oauth.RedirectURL,
			Scope:        oauth.Scope,
			DiscoveryURL: oauth.DiscoveryURL,
		})
		if err != nil {
			logger.Warn("failed to create OIDC provider, sign-in disabled", "error", err)
			return disabledauth.NewProvider()
		}
		return prov

	default:
		return disabledauth.NewProvider()
	}
}
