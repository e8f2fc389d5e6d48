package rating_test

import (
	"testing"

	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/rating"
	"github.com/stretchr/testify/require"
)

func userWithRating(r int) *domain.User {
	return &domain.User{Achievements: domain.UserAchievements{EloRating: &r}}
}

func TestRecalculateEqualRatings(t *testing.T) {
	t.Parallel()

	winner := userWithRating(1200)
	loser := userWithRating(1200)

	rating.NewElo().Recalculate(winner, loser, true)

	require.Equal(t, 1216, winner.EloRating())
	require.Equal(t, 1184, loser.EloRating())
}

func TestRecalculateUpsetWin(t *testing.T) {
	t.Parallel()

	winner := userWithRating(1200)
	loser := userWithRating(1400)

	rating.NewElo().Recalculate(winner, loser, true)

	// The lower-rated player gains more for beating a stronger opponent.
	require.Equal(t, 1224, winner.EloRating())
	require.Equal(t, 1376, loser.EloRating())
}

func TestRecalculateDefaultsMissingRatings(t *testing.T) {
	t.Parallel()

	winner := &domain.User{}
	loser := &domain.User{}

	rating.NewElo().Recalculate(winner, loser, true)

	require.Equal(t, 1216, winner.EloRating())
	require.Equal(t, 1184, loser.EloRating())
}

func TestRecalculateUnrankedGameIsANoop(t *testing.T) {
	t.Parallel()

	winner := userWithRating(1300)
	loser := userWithRating(1100)

	rating.NewElo().Recalculate(winner, loser, false)

	require.Equal(t, 1300, winner.EloRating())
	require.Equal(t, 1100, loser.EloRating())
}

func TestRecalculateNilLoser(t *testing.T) {
	t.Parallel()

	winner := userWithRating(1200)

	rating.NewElo().Recalculate(winner, nil, true)

	require.Equal(t, 1216, winner.EloRating())
}
