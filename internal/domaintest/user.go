package domaintest

import (
	"fmt"

	"github.com/startide-game/engine/internal/domain"
)

type userBuilder struct {
	user *domain.User
}

func (ub *userBuilder) WithRank(rank int) *userBuilder {
	ub.user.Achievements.Rank = rank
	return ub
}

func (ub *userBuilder) WithEloRating(rating int) *userBuilder {
	ub.user.Achievements.EloRating = &rating
	return ub
}

func (ub *userBuilder) WithCredits(credits int) *userBuilder {
	ub.user.Credits = credits
	return ub
}

func (ub *userBuilder) Deleted() *userBuilder {
	ub.user.Deleted = true
	return ub
}

func (ub *userBuilder) Build() *domain.User {
	return ub.user
}

func NewUserBuilder(id string) *userBuilder {
	return &userBuilder{
		user: &domain.User{
			ID:       id,
			Username: fmt.Sprintf("User %s", id),
		},
	}
}

// UsersForPlayers builds one fresh user per player that has a user
// reference, keyed by user ID.
func UsersForPlayers(players ...*domain.Player) map[string]*domain.User {
	users := map[string]*domain.User{}
	for _, player := range players {
		if player.UserID == nil {
			continue
		}
		users[*player.UserID] = NewUserBuilder(*player.UserID).Build()
	}
	return users
}
