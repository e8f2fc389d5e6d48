package stats

import (
	"math"

	"github.com/startide-game/engine/internal/domain"
)

// Provider recomputes a player's aggregate stats from the galaxy
// snapshot. The computation is pure; callers may cache the result on
// the player for the remainder of an evaluation.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

// Stats returns the player's cached aggregate if present, otherwise
// computes it fresh from the galaxy.
func (p *Provider) Stats(game *domain.Game, player *domain.Player) domain.PlayerStats {
	if player.Stats != nil {
		return *player.Stats
	}
	return p.Compute(game, player)
}

func (p *Provider) Compute(game *domain.Game, player *domain.Player) domain.PlayerStats {
	var stats domain.PlayerStats
	var newShipsActual float64

	for _, star := range game.Galaxy.Stars {
		if star.OwnedByPlayerID == nil || *star.OwnedByPlayerID != player.ID {
			continue
		}

		stats.TotalStars++
		if star.IsHomeStar {
			stats.TotalHomeStars++
		}
		if star.Warpgate {
			stats.Warpgates++
		}
		if star.SpecialistID != nil {
			stats.TotalStarSpecialists++
		}

		stats.TotalShips += star.Ships
		// Ships under construction accumulate fractionally on each star.
		newShipsActual += star.ShipsActual - math.Floor(star.ShipsActual)

		stats.TotalEconomy += star.Infrastructure.Economy
		stats.TotalIndustry += star.Infrastructure.Industry
		stats.TotalScience += star.Infrastructure.Science
	}

	for _, carrier := range game.Galaxy.Carriers {
		if carrier.OwnedByPlayerID != player.ID {
			continue
		}

		stats.TotalCarriers++
		stats.TotalShips += carrier.Ships
		if carrier.SpecialistID != nil {
			stats.TotalCarrierSpecialists++
		}
	}

	stats.NewShips = int(newShipsActual)
	stats.TotalSpecialists = stats.TotalStarSpecialists + stats.TotalCarrierSpecialists

	return stats
}
