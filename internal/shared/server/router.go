package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/jobs"
	"resume-matcher/internal/matches"
	"resume-matcher/internal/profiles"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/storage/db"
	"resume-matcher/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// One shared bucket per client across all routes.
	rateRule := middleware.RateLimitRule{Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(rateRule, middleware.NewRateLimiter(nil)),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Error("db.connect_failed", map[string]any{"error": err.Error()})
		} else if err := db.RunMigrations(context.Background(), conn); err != nil {
			telemetry.Error("db.migrate_failed", map[string]any{"error": err.Error()})
		} else {
			sqlDB = conn
		}
	}
	if sqlDB == nil {
		telemetry.Info("storage.memory", map[string]any{
			"reason": "no usable database, falling back to in-memory repositories",
		})
	}

	var profileRepo profiles.Repo
	if sqlDB != nil {
		profileRepo = &profiles.PGRepo{DB: sqlDB}
	} else {
		profileRepo = profiles.NewMemoryRepo()
	}
	profileSvc := &profiles.Service{Repo: profileRepo}
	profileHandler := profiles.NewHandler(profileSvc, cfg.MaxUploadBytes)

	var matchRepo matches.Repo
	if sqlDB != nil {
		matchRepo = &matches.PGRepo{DB: sqlDB}
	} else {
		matchRepo = matches.NewMemoryRepo()
	}
	matchSvc := &matches.Service{Repo: matchRepo, Profiles: profileSvc}
	matchHandler := matches.NewHandler(matchSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	profileHandler.RegisterRoutes(api)
	matchHandler.RegisterRoutes(api)
	jobs.NewHandler().RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
