package ports

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/startide-game/engine/internal/app"
	"github.com/startide-game/engine/internal/logging"
	"github.com/startide-game/engine/internal/ratelimiting"
	"github.com/startide-game/engine/internal/reporting"
)

func MakeEvaluateCombatHandler(
	evaluateCombat app.EvaluateCombat,
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
			Game               gamePayload `json:"game"`
			DefendingStarID    *string     `json:"defendingStarId"`
			DefenderCarrierIDs []string    `json:"defenderCarrierIds"`
			AttackerCarrierIDs []string    `json:"attackerCarrierIds"`
		}{}
		err = json.Unmarshal(body, &request)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to parse request body: %w", err))
			http.Error(w, "Failed to parse request body", http.StatusBadRequest)
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

		strength, err := evaluateCombat(ctx, game, request.DefendingStarID, request.DefenderCarrierIDs, request.AttackerCarrierIDs)
		if err != nil {
			// NOTE: EvaluateCombat only fails on unresolvable ids, which
			// is the caller's data being inconsistent.
			http.Error(w, fmt.Sprintf("Failed to evaluate combat: %s", err), http.StatusBadRequest)
			return
		}

		response := struct {
			DefenderWeapons int `json:"defenderWeapons"`
			AttackerWeapons int `json:"attackerWeapons"`
		}{
			DefenderWeapons: strength.DefenderWeapons,
			AttackerWeapons: strength.AttackerWeapons,
		}

		marshalled, err := json.Marshal(response)
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
