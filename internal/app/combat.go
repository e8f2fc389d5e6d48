package app

import (
	"context"
	"fmt"

	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/reporting"
	"github.com/startide-game/engine/internal/technology"
)

// CombatStrength is the effective weapons level of each side of an
// impending combat, as shown to players before the tick resolves.
type CombatStrength struct {
	DefenderWeapons int
	AttackerWeapons int
}

type EvaluateCombat func(
	ctx context.Context,
	game *domain.Game,
	defendingStarID *string,
	defenderCarrierIDs []string,
	attackerCarrierIDs []string,
) (*CombatStrength, error)

// BuildEvaluateCombat computes both sides' weapons levels for a combat
// at a star (carrier-to-star) or in open space (carrier-to-carrier).
func BuildEvaluateCombat(tech *technology.Service) EvaluateCombat {
	return func(
		ctx context.Context,
		game *domain.Game,
		defendingStarID *string,
		defenderCarrierIDs []string,
		attackerCarrierIDs []string,
	) (*CombatStrength, error) {
		attackerCarriers, err := resolveCarriers(game, attackerCarrierIDs)
		if err != nil {
			reporting.Report(ctx, err, map[string]string{"gameId": game.ID})
			return nil, err
		}
		if len(attackerCarriers) == 0 {
			err := fmt.Errorf("no attacking carriers")
			reporting.Report(ctx, err, map[string]string{"gameId": game.ID})
			return nil, err
		}

		defenderCarriers, err := resolveCarriers(game, defenderCarrierIDs)
		if err != nil {
			reporting.Report(ctx, err, map[string]string{"gameId": game.ID})
			return nil, err
		}

		attackerPlayers := carrierOwners(game, attackerCarriers)

		if defendingStarID != nil {
			star := starByID(game, *defendingStarID)
			if star == nil {
				err := fmt.Errorf("unknown star: %q", *defendingStarID)
				reporting.Report(ctx, err, map[string]string{"gameId": game.ID})
				return nil, err
			}

			var defender *domain.Player
			if star.OwnedByPlayerID != nil {
				defender = playerByID(game, *star.OwnedByPlayerID)
			}

			return &CombatStrength{
				DefenderWeapons: tech.StarEffectiveWeaponsLevel(game, defender, star, attackerCarriers),
				AttackerWeapons: tech.CarriersEffectiveWeaponsLevel(game, attackerPlayers, attackerCarriers, true),
			}, nil
		}

		if len(defenderCarriers) == 0 {
			err := fmt.Errorf("no defending carriers")
			reporting.Report(ctx, err, map[string]string{"gameId": game.ID})
			return nil, err
		}

		defenderPlayers := carrierOwners(game, defenderCarriers)

		return &CombatStrength{
			DefenderWeapons: tech.CarriersEffectiveWeaponsLevel(game, defenderPlayers, defenderCarriers, false),
			AttackerWeapons: tech.CarriersEffectiveWeaponsLevel(game, attackerPlayers, attackerCarriers, false),
		}, nil
	}
}

func resolveCarriers(game *domain.Game, ids []string) ([]*domain.Carrier, error) {
	carriers := make([]*domain.Carrier, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, carrier := range game.Galaxy.Carriers {
			if carrier.ID == id {
				carriers = append(carriers, carrier)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown carrier: %q", id)
		}
	}
	return carriers, nil
}

func carrierOwners(game *domain.Game, carriers []*domain.Carrier) []*domain.Player {
	seen := make(map[string]bool, len(carriers))
	owners := make([]*domain.Player, 0, len(carriers))
	for _, carrier := range carriers {
		if seen[carrier.OwnedByPlayerID] {
			continue
		}
		seen[carrier.OwnedByPlayerID] = true
		if player := playerByID(game, carrier.OwnedByPlayerID); player != nil {
			owners = append(owners, player)
		}
	}
	return owners
}

func starByID(game *domain.Game, id string) *domain.Star {
	for _, star := range game.Galaxy.Stars {
		if star.ID == id {
			return star
		}
	}
	return nil
}

func playerByID(game *domain.Game, id string) *domain.Player {
	for _, player := range game.Galaxy.Players {
		if player.ID == id {
			return player
		}
	}
	return nil
}
