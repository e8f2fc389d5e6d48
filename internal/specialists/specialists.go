package specialists

import (
	"github.com/startide-game/engine/internal/domain"
)

func intPtr(i int) *int { return &i }

// catalog is the static specialist roster. Only combat-relevant
// modifiers are carried here; economic modifiers live with the
// infrastructure engine.
var starCatalog = map[int]*domain.Specialist{
	1: {
		ID:   1,
		Name: "Orbital Cannon",
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{Weapons: intPtr(1)},
		},
	},
	2: {
		ID:   2,
		Name: "Space Dock",
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{Weapons: intPtr(2)},
		},
	},
	3: {
		ID:   3,
		Name: "War Machine",
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{Weapons: intPtr(3)},
		},
	},
}

var carrierCatalog = map[int]*domain.Specialist{
	1: {
		ID:   1,
		Name: "Lieutenant",
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{Weapons: intPtr(1)},
		},
	},
	2: {
		ID:   2,
		Name: "Destroyer",
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{
				CarrierToStarCombat:    &domain.CombatModifiers{Weapons: intPtr(2)},
				CarrierToCarrierCombat: &domain.CombatModifiers{Weapons: intPtr(1)},
			},
		},
	},
	3: {
		ID:   3,
		Name: "Marauder",
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{
				CarrierToStarCombat: &domain.CombatModifiers{Weapons: intPtr(3)},
			},
		},
	},
	4: {
		ID:   4,
		Name: "Infiltrator",
		Modifiers: domain.SpecialistModifiers{
			Special: &domain.SpecialModifiers{DeductEnemyWeapons: intPtr(1)},
		},
	},
	5: {
		ID:   5,
		Name: "Saboteur",
		Modifiers: domain.SpecialistModifiers{
			Special: &domain.SpecialModifiers{DeductEnemyWeapons: intPtr(2)},
		},
	},
}

// Lookup resolves specialist IDs on stars and carriers against the
// static catalog. An unknown or absent ID resolves to nil.
type Lookup struct{}

func NewLookup() *Lookup {
	return &Lookup{}
}

func (l *Lookup) StarSpecialist(star *domain.Star) *domain.Specialist {
	if star == nil || star.SpecialistID == nil {
		return nil
	}
	return starCatalog[*star.SpecialistID]
}

func (l *Lookup) CarrierSpecialist(carrier *domain.Carrier) *domain.Specialist {
	if carrier == nil || carrier.SpecialistID == nil {
		return nil
	}
	return carrierCatalog[*carrier.SpecialistID]
}
