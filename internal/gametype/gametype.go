package gametype

import (
	"strings"

	"github.com/startide-game/engine/internal/domain"
)

// Classifier answers questions about a game's configured type and mode.
// All checks are pure reads of the settings.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

func (c *Classifier) IsKingOfTheHillMode(game *domain.Game) bool {
	return game.Settings.General.Mode == domain.GameModeKingOfTheHill
}

func (c *Classifier) IsConquestMode(game *domain.Game) bool {
	return game.Settings.General.Mode == domain.GameModeConquest ||
		game.Settings.General.Mode == domain.GameModeTeamConquest
}

func (c *Classifier) IsTeamConquestMode(game *domain.Game) bool {
	return game.Settings.General.Mode == domain.GameModeTeamConquest
}

// IsSpecialGameMode reports whether the game is one of the rotating
// special official games, which award double rank.
func (c *Classifier) IsSpecialGameMode(game *domain.Game) bool {
	return strings.HasPrefix(string(game.Settings.General.Type), "special_")
}

func (c *Classifier) Is1v1Game(game *domain.Game) bool {
	t := game.Settings.General.Type
	return t == domain.GameType1v1RT || t == domain.GameType1v1TB
}

func (c *Classifier) Is32PlayerGame(game *domain.Game) bool {
	return game.Settings.General.PlayerLimit == 32
}
