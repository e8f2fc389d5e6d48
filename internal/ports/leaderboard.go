package ports

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/startide-game/engine/internal/app"
	"github.com/startide-game/engine/internal/leaderboard"
	"github.com/startide-game/engine/internal/logging"
	"github.com/startide-game/engine/internal/ratelimiting"
	"github.com/startide-game/engine/internal/reporting"
)

func MakeGetLeaderboardHandler(
	getLeaderboard app.GetLeaderboard,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(4),
		ratelimiting.BurstSize(80),
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)
	gameIDLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(2),
		ratelimiting.BurstSize(20),
	)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware(),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer r.Body.Close()
		body, err := io.ReadAll(r.Body)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to read request body: %w", err))
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		request := struct {
			Game    gamePayload `json:"game"`
			SortKey string      `json:"sortKey"`
		}{}
		err = json.Unmarshal(body, &request)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to parse request body: %w", err))
			http.Error(w, "Failed to parse request body", http.StatusBadRequest)
			return
		}

		// NOTE: Rate limiting based on user controlled value
		if !consumeGameIDLimit(ctx, w, gameIDLimiter, request.Game.ID) {
			return
		}

		game, err := gameFromPayload(&request.Game)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("invalid game snapshot: %w", err), map[string]string{
				"gameId": request.Game.ID,
			})
			http.Error(w, fmt.Sprintf("Invalid game snapshot: %s", err), http.StatusBadRequest)
			return
		}

		sortKey := leaderboard.SortKey(request.SortKey)
		if sortKey != "" && !sortKey.Valid() {
			http.Error(w, fmt.Sprintf("Unknown sort key: %q", request.SortKey), http.StatusBadRequest)
			return
		}

		ctx = reporting.AddExtrasToContext(ctx, map[string]string{
			"gameId":  game.ID,
			"sortKey": request.SortKey,
		})
		ctx = logging.AddMetaToContext(ctx,
			slog.String("gameId", game.ID),
			slog.String("sortKey", request.SortKey),
		)

		lb, err := getLeaderboard(ctx, game, sortKey)
		if err != nil {
			http.Error(w, "Failed to compute leaderboard", http.StatusInternalServerError)
			return
		}

		marshalled, err := json.Marshal(leaderboardToResponse(lb))
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to marshal response: %w", err))
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(marshalled)
	}

	return middleware(handler)
}
