package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/startide-game/engine/internal/adapters/cache"
	"github.com/startide-game/engine/internal/adapters/database"
	"github.com/startide-game/engine/internal/adapters/userrepository"
	"github.com/startide-game/engine/internal/afk"
	"github.com/startide-game/engine/internal/app"
	"github.com/startide-game/engine/internal/badges"
	"github.com/startide-game/engine/internal/config"
	"github.com/startide-game/engine/internal/gametype"
	"github.com/startide-game/engine/internal/leaderboard"
	"github.com/startide-game/engine/internal/levels"
	"github.com/startide-game/engine/internal/players"
	"github.com/startide-game/engine/internal/ports"
	"github.com/startide-game/engine/internal/rating"
	"github.com/startide-game/engine/internal/reporting"
	"github.com/startide-game/engine/internal/specialists"
	"github.com/startide-game/engine/internal/stats"
	"github.com/startide-game/engine/internal/technology"
	"github.com/startide-game/engine/internal/telemetry"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "startide.io"
const STAGING_DOMAIN_SUFFIX = "staging.startide.io"

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	// Local development reads its environment from .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Info("Not loading .env", "reason", err.Error())
	}

	conf, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", conf.NonSensitiveString())

	ctx := context.Background()

	otelShutdown, err := telemetry.SetupOTelSDK(ctx, "startide-engine")
	if err != nil {
		fail("Failed to initialize OpenTelemetry", "error", err.Error())
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Error("Failed to shut down OpenTelemetry", "error", err.Error())
		}
	}()

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(conf)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	logger.Info("Initializing database connection")
	db, err := database.NewConfiguredPostgresDatabase(conf)
	if err != nil {
		fail("Failed to initialize database connection", "error", err.Error())
	}
	logger.Info("Initialized database connection")

	schemaName := database.GetSchemaName(!conf.IsProduction())

	err = database.NewDatabaseMigrator(db, logger.With("component", "migrator")).Migrate(ctx, schemaName)
	if err != nil {
		fail("Failed to migrate database", "error", err.Error())
	}

	userRepo := userrepository.NewPostgres(db, schemaName)
	logger.Info("Initialized UserRepository")

	service := leaderboard.NewService(
		gametype.NewClassifier(),
		players.NewLookup(),
		stats.NewProvider(),
		afk.NewClassifier(),
		levels.NewLookup(),
		rating.NewElo(),
		badges.NewAwarder(),
	)

	leaderboardCache := cache.NewTTLLeaderboardCache(1 * time.Minute)

	allowedOrigins, err := ports.NewDomainSuffixes(PROD_DOMAIN_SUFFIX, STAGING_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	getLeaderboard := app.BuildGetLeaderboardWithCache(leaderboardCache, service)
	finalizeGame := app.BuildFinalizeGame(service, userRepo)
	evaluateCombat := app.BuildEvaluateCombat(technology.NewService(specialists.NewLookup()))

	http.HandleFunc(
		"OPTIONS /v1/leaderboard",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"POST /v1/leaderboard",
		ports.MakeGetLeaderboardHandler(
			getLeaderboard,
			allowedOrigins,
			logger.With("port", "leaderboard"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"POST /v1/games/finalize",
		ports.MakeFinalizeGameHandler(
			finalizeGame,
			logger.With("port", "finalizegame"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /v1/combat",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"POST /v1/combat",
		ports.MakeEvaluateCombatHandler(
			evaluateCombat,
			allowedOrigins,
			logger.With("port", "combat"),
			sentryMiddleware,
		),
	)

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", conf.Port()), nil)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
