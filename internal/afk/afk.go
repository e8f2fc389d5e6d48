package afk

import (
	"github.com/startide-game/engine/internal/domain"
)

// Classifier decides whether a player slot is effectively run by the AI.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// IsAIControlled reports whether the player's slot is controlled by the
// AI: defeated, flagged AFK, or never claimed by a user. When
// includePseudoAfk is set, players who have missed enough consecutive
// turns to be on the verge of going AFK count as well.
func (c *Classifier) IsAIControlled(game *domain.Game, player *domain.Player, includePseudoAfk bool) bool {
	if player.Defeated || player.AFK || player.UserID == nil {
		return true
	}

	if includePseudoAfk {
		limit := game.Settings.Player.MissedTurnLimit
		if limit > 0 && player.MissedTurns >= limit {
			return true
		}
	}

	return false
}
