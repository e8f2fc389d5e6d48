package rating

import (
	"math"

	"github.com/startide-game/engine/internal/domain"
)

// kFactor matches the rating update used for ranked 1v1 games.
const kFactor = 32

// Elo performs the standard Elo rating update, writing the new ratings
// back onto the users' achievements.
type Elo struct{}

func NewElo() *Elo {
	return &Elo{}
}

// Recalculate updates both users' stored ratings from the outcome of a
// single game won by winner. Missing ratings default to
// domain.DefaultEloRating. Unranked games leave ratings untouched.
// Either user may be nil (deleted account); the other side is still
// updated against the default rating.
func (e *Elo) Recalculate(winner, loser *domain.User, ranked bool) {
	if !ranked {
		return
	}

	winnerRating := winner.EloRating()
	loserRating := loser.EloRating()

	newWinnerRating := winnerRating + delta(winnerRating, loserRating, 1)
	newLoserRating := loserRating + delta(loserRating, winnerRating, 0)

	if winner != nil {
		winner.Achievements.EloRating = &newWinnerRating
	}
	if loser != nil {
		loser.Achievements.EloRating = &newLoserRating
	}
}

// delta is the rating change for a player with the given rating against
// an opponent, where score is 1 for a win and 0 for a loss.
func delta(rating, opponentRating, score int) int {
	expected := 1.0 / (1.0 + math.Pow(10, float64(opponentRating-rating)/400.0))
	return int(math.Round(kFactor * (float64(score) - expected)))
}
