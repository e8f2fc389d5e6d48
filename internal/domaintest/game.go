package domaintest

import (
	"fmt"

	"github.com/startide-game/engine/internal/domain"
)

type gameBuilder struct {
	game *domain.Game
}

func (gb *gameBuilder) WithMode(mode domain.GameMode) *gameBuilder {
	gb.game.Settings.General.Mode = mode
	return gb
}

func (gb *gameBuilder) WithType(gameType domain.GameType) *gameBuilder {
	gb.game.Settings.General.Type = gameType
	return gb
}

func (gb *gameBuilder) WithAwardRankTo(awardRankTo domain.AwardRankTo) *gameBuilder {
	gb.game.Settings.General.AwardRankTo = awardRankTo
	return gb
}

func (gb *gameBuilder) WithPlayerLimit(limit int) *gameBuilder {
	gb.game.Settings.General.PlayerLimit = limit
	return gb
}

func (gb *gameBuilder) WithVictoryCondition(condition domain.VictoryCondition) *gameBuilder {
	gb.game.Settings.Conquest.VictoryCondition = condition
	return gb
}

func (gb *gameBuilder) WithStarsForVictory(stars int) *gameBuilder {
	gb.game.State.StarsForVictory = stars
	return gb
}

func (gb *gameBuilder) WithRankRewardMultiplier(multiplier float64) *gameBuilder {
	gb.game.Constants.Player.RankRewardMultiplier = multiplier
	return gb
}

func (gb *gameBuilder) WithWinner(playerID string) *gameBuilder {
	gb.game.State.Winner = &playerID
	return gb
}

func (gb *gameBuilder) WithTicksToEnd(ticks int) *gameBuilder {
	gb.game.State.TicksToEnd = &ticks
	return gb
}

func (gb *gameBuilder) WithDefenderBonus(enabled bool) *gameBuilder {
	if enabled {
		gb.game.Settings.SpecialGalaxy.DefenderBonus = domain.Enabled
	} else {
		gb.game.Settings.SpecialGalaxy.DefenderBonus = domain.Disabled
	}
	return gb
}

func (gb *gameBuilder) WithPlayers(players ...*domain.Player) *gameBuilder {
	gb.game.Galaxy.Players = players
	return gb
}

func (gb *gameBuilder) WithTeams(teams ...*domain.Team) *gameBuilder {
	gb.game.Galaxy.Teams = teams
	return gb
}

func (gb *gameBuilder) WithStars(stars ...*domain.Star) *gameBuilder {
	gb.game.Galaxy.Stars = stars
	return gb
}

func (gb *gameBuilder) WithCarriers(carriers ...*domain.Carrier) *gameBuilder {
	gb.game.Galaxy.Carriers = carriers
	return gb
}

func (gb *gameBuilder) Build() *domain.Game {
	return gb.game
}

// NewGameBuilder returns a minimal standard-mode game with sensible
// defaults for outcome evaluation tests.
func NewGameBuilder() *gameBuilder {
	return &gameBuilder{
		game: &domain.Game{
			ID: "game-1",
			Settings: domain.GameSettings{
				General: domain.GeneralSettings{
					Mode:        domain.GameModeStandard,
					Type:        domain.GameTypeStandardRT,
					AwardRankTo: domain.AwardRankToAll,
					PlayerLimit: 4,
				},
				Conquest: domain.ConquestSettings{
					VictoryCondition: domain.VictoryConditionStarCount,
				},
				SpecialGalaxy: domain.SpecialGalaxySettings{
					DefenderBonus: domain.Disabled,
				},
			},
			Constants: domain.GameConstants{
				Player: domain.PlayerConstants{
					RankRewardMultiplier: 1,
				},
			},
		},
	}
}

type starBuilder struct {
	star *domain.Star
}

func (sb *starBuilder) OwnedBy(playerID string) *starBuilder {
	sb.star.OwnedByPlayerID = &playerID
	return sb
}

func (sb *starBuilder) WithSpecialist(specialistID int) *starBuilder {
	sb.star.SpecialistID = &specialistID
	return sb
}

func (sb *starBuilder) WithShips(ships int, shipsActual float64) *starBuilder {
	sb.star.Ships = ships
	sb.star.ShipsActual = shipsActual
	return sb
}

func (sb *starBuilder) WithInfrastructure(economy, industry, science int) *starBuilder {
	sb.star.Infrastructure = domain.Infrastructure{
		Economy:  economy,
		Industry: industry,
		Science:  science,
	}
	return sb
}

func (sb *starBuilder) HomeStar() *starBuilder {
	sb.star.IsHomeStar = true
	return sb
}

func (sb *starBuilder) AsteroidField() *starBuilder {
	sb.star.IsAsteroidField = true
	return sb
}

func (sb *starBuilder) KingOfTheHill() *starBuilder {
	sb.star.IsKingOfTheHill = true
	return sb
}

func (sb *starBuilder) WithWarpgate() *starBuilder {
	sb.star.Warpgate = true
	return sb
}

func (sb *starBuilder) Build() *domain.Star {
	return sb.star
}

func NewStarBuilder(id string) *starBuilder {
	return &starBuilder{
		star: &domain.Star{
			ID:   id,
			Name: fmt.Sprintf("Star %s", id),
		},
	}
}
