package cache

import (
	"time"

	"github.com/startide-game/engine/internal/domain"
)

// LeaderboardCache caches computed leaderboards per game, tick and sort
// key so repeated display requests within a tick don't recompute the
// ranking.
type LeaderboardCache = Cache[*domain.PlayerLeaderboard]

func NewTTLLeaderboardCache(ttl time.Duration) LeaderboardCache {
	return NewTTLCache[*domain.PlayerLeaderboard](ttl)
}
