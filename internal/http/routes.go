package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Profiles  *service.ProfileService
	Projects  *service.ProjectService
	Offerings *service.OfferingService
	Resources *service.ResourceService
	Research  *service.ResearchService
	Briefings *service.BriefingService
	Dashboard *service.DashboardService

	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
// Content reads are open to any session (guests included); content writes,
// profile management, and role changes require the admin role.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: logger}
	registerAuthRoutes(mux, authHandlers, OptionalAuth(services.Auth))

	// Without a database the content and profile services are absent; their
	// routes answer 503 instead of dereferencing nil handlers.
	gate := func(h http.Handler) http.Handler {
		if services.Profiles != nil {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, ErrorParams{
				Code:    http.StatusServiceUnavailable,
				ErrCode: "backend_unavailable",
				Err:     errors.New("backend storage is not configured"),
			})
		})
	}

	authed := func(h http.Handler) http.Handler {
		return RequireAuth(services.Auth)(gate(h))
	}
	adminOnly := func(h http.Handler) http.Handler {
		return RequireRole(services.Auth, domainauth.RoleAdmin)(gate(h))
	}

	registerProfileRoutes(mux, &ProfileHandlers{Svc: services.Profiles}, adminOnly)

	projectHandlers := &ProjectHandlers{Svc: services.Projects}
	registerCRUD(mux, crudRoutes{
		Base:    "/api/projects",
		Create:  projectHandlers.Create,
		List:    projectHandlers.List,
		GetByID: projectHandlers.GetByID,
		Delete:  projectHandlers.Delete,
		Read:    authed,
		Write:   adminOnly,
	})

	offeringHandlers := &OfferingHandlers{Svc: services.Offerings}
	registerCRUD(mux, crudRoutes{
		Base:    "/api/services",
		Create:  offeringHandlers.Create,
		List:    offeringHandlers.List,
		GetByID: offeringHandlers.GetByID,
		Delete:  offeringHandlers.Delete,
		Read:    authed,
		Write:   adminOnly,
	})

	resourceHandlers := &ResourceHandlers{Svc: services.Resources}
	registerCRUD(mux, crudRoutes{
		Base:    "/api/resources",
		Create:  resourceHandlers.Create,
		List:    resourceHandlers.List,
		GetByID: resourceHandlers.GetByID,
		Delete:  resourceHandlers.Delete,
		Read:    authed,
		Write:   adminOnly,
	})

	researchHandlers := &ResearchHandlers{Svc: services.Research}
	registerCRUD(mux, crudRoutes{
		Base:    "/api/research-articles",
		Create:  researchHandlers.Create,
		List:    researchHandlers.List,
		GetByID: researchHandlers.GetByID,
		Delete:  researchHandlers.Delete,
		Read:    authed,
		Write:   adminOnly,
	})

	briefingHandlers := &BriefingHandlers{Svc: services.Briefings}
	registerCRUD(mux, crudRoutes{
		Base:    "/api/briefings",
		Create:  briefingHandlers.Create,
		List:    briefingHandlers.List,
		GetByID: briefingHandlers.GetByID,
		Delete:  briefingHandlers.Delete,
		Read:    authed,
		Write:   adminOnly,
	})

	dashboardHandlers := &DashboardHandlers{Svc: services.Dashboard}
	mux.Handle("GET /api/dashboard/counts", authed(http.HandlerFunc(dashboardHandlers.Counts)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

// crudRoutes describes standard CRUD routes for a resource base path.
// Read wraps list/get, Write wraps create/delete; either may be nil.
type crudRoutes struct {
	Base    string
	Create  http.HandlerFunc
	List    http.HandlerFunc
	GetByID http.HandlerFunc
	Delete  http.HandlerFunc
	Read    func(http.Handler) http.Handler
	Write   func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil || cfg.List == nil || cfg.GetByID == nil || cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(mw func(http.Handler) http.Handler, h http.HandlerFunc) http.Handler {
		if mw != nil {
			return mw(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Write, cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.Read, cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.Read, cfg.GetByID))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Write, cfg.Delete))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, optional func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/guest", h.Guest)
	mux.HandleFunc("POST /auth/signup", h.SignUp)
	mux.HandleFunc("POST /auth/signin", h.SignIn)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	// Status answers 200 either way; the middleware only resolves the session.
	mux.Handle("GET /auth/status", optional(http.HandlerFunc(h.Status)))
}

func registerProfileRoutes(mux *http.ServeMux, h *ProfileHandlers, adminOnly func(http.Handler) http.Handler) {
	mux.Handle("GET /api/profiles", adminOnly(http.HandlerFunc(h.List)))
	mux.Handle("PUT /api/profiles/{id}/role", adminOnly(http.HandlerFunc(h.SetRole)))
	mux.Handle("PUT /api/profiles/{id}", adminOnly(http.HandlerFunc(h.UpdateProfile)))
	mux.Handle("POST /api/profiles/verify-orcid", adminOnly(http.HandlerFunc(h.VerifyOrcid)))
}
