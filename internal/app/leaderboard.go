package app

import (
	"context"
	"fmt"

	"github.com/startide-game/engine/internal/adapters/cache"
	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/leaderboard"
	"github.com/startide-game/engine/internal/logging"
	"github.com/startide-game/engine/internal/reporting"
)

type GetLeaderboard func(ctx context.Context, game *domain.Game, sortKey leaderboard.SortKey) (*domain.PlayerLeaderboard, error)

func BuildGetLeaderboardWithCache(
	leaderboardCache cache.LeaderboardCache,
	service *leaderboard.Service,
) GetLeaderboard {
	return func(ctx context.Context, game *domain.Game, sortKey leaderboard.SortKey) (*domain.PlayerLeaderboard, error) {
		if sortKey != "" && !sortKey.Valid() {
			logging.FromContext(ctx).Error("Unknown leaderboard sort key", "sortKey", string(sortKey))
			err := fmt.Errorf("unknown leaderboard sort key: %q", sortKey)
			reporting.Report(ctx, err)
			return nil, err
		}

		// Snapshots are immutable per tick, so game+tick+sortKey fully
		// identifies the computed ordering.
		key := fmt.Sprintf("%s:%d:%s", game.ID, game.State.Tick, sortKey)

		result, _, err := cache.GetOrCreate(ctx, leaderboardCache, key, func() (*domain.PlayerLeaderboard, error) {
			return service.ComputeLeaderboard(game, sortKey), nil
		})
		if err != nil {
			// NOTE: GetOrCreate only returns an error if create() fails,
			// and ComputeLeaderboard cannot fail.
			return nil, fmt.Errorf("failed to cache.GetOrCreate leaderboard: %w", err)
		}

		return result, nil
	}
}
