package players

import (
	"github.com/startide-game/engine/internal/domain"
)

// Lookup resolves players within a game snapshot.
type Lookup struct{}

func NewLookup() *Lookup {
	return &Lookup{}
}

func (l *Lookup) ByID(game *domain.Game, playerID string) *domain.Player {
	for _, player := range game.Galaxy.Players {
		if player.ID == playerID {
			return player
		}
	}
	return nil
}

// KingOfTheHillPlayer is the current owner of the hill star, or nil
// while the hill is unclaimed.
func (l *Lookup) KingOfTheHillPlayer(game *domain.Game) *domain.Player {
	for _, star := range game.Galaxy.Stars {
		if !star.IsKingOfTheHill {
			continue
		}
		if star.OwnedByPlayerID == nil {
			return nil
		}
		return l.ByID(game, *star.OwnedByPlayerID)
	}
	return nil
}

// TeamOf returns the team the player belongs to, or nil.
func (l *Lookup) TeamOf(game *domain.Game, playerID string) *domain.Team {
	for _, team := range game.Galaxy.Teams {
		for _, member := range team.Players {
			if member == playerID {
				return team
			}
		}
	}
	return nil
}
