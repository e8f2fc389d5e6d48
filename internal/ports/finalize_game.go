package ports

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/startide-game/engine/internal/app"
	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/logging"
	"github.com/startide-game/engine/internal/ratelimiting"
	"github.com/startide-game/engine/internal/reporting"
)

func MakeFinalizeGameHandler(
	finalizeGame app.FinalizeGame,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	gameIDLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(1),
		ratelimiting.BurstSize(5),
	)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware(),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
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
			Game         gamePayload `json:"game"`
			AwardCredits *bool       `json:"awardCredits"`
		}{}
		err = json.Unmarshal(body, &request)
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to parse request body: %w", err))
			http.Error(w, "Failed to parse request body", http.StatusBadRequest)
			return
		}

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

		ctx = reporting.AddExtrasToContext(ctx, map[string]string{
			"gameId": game.ID,
		})
		ctx = logging.AddMetaToContext(ctx,
			slog.String("gameId", game.ID),
		)

		awardCredits := true
		if request.AwardCredits != nil {
			awardCredits = *request.AwardCredits
		}

		result, err := finalizeGame(ctx, game, awardCredits)
		if errors.Is(err, domain.ErrGameNotFinished) {
			logging.FromContext(ctx).Info("Game has not finished", "gameId", game.ID)
			http.Error(w, "Game has not finished", http.StatusConflict)
			return
		}
		if err != nil {
			http.Error(w, "Failed to finalize game", http.StatusInternalServerError)
			return
		}

		marshalled, err := json.Marshal(finalizeGameToResponse(result))
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
