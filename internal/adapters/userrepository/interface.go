package userrepository

import (
	"context"

	"github.com/startide-game/engine/internal/domain"
)

// UserRepository loads and persists the account documents the outcome
// engine mutates when a game finishes.
type UserRepository interface {
	// GetByIDs returns the non-deleted users among ids, keyed by ID.
	// Missing users are simply absent from the map.
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)

	// SaveAchievements writes back the achievement fields, credits and
	// established-player flag for each user.
	SaveAchievements(ctx context.Context, users []*domain.User) error
}
