package technology

import (
	"github.com/startide-game/engine/internal/domain"
)

// SpecialistLookup resolves the specialist assigned to a star or
// carrier, or nil when none is assigned.
type SpecialistLookup interface {
	StarSpecialist(star *domain.Star) *domain.Specialist
	CarrierSpecialist(carrier *domain.Carrier) *domain.Specialist
}

// Service computes effective combat strength from base research,
// specialist modifiers and environmental bonuses, and answers which
// research tracks a game has enabled.
type Service struct {
	specialists SpecialistLookup
}

func NewService(specialists SpecialistLookup) *Service {
	return &Service{specialists: specialists}
}

// EnabledTechnologies returns the research tracks that are switched on
// for the game: a starting level above zero and a research cost that is
// not locked.
func (s *Service) EnabledTechnologies(game *domain.Game) []domain.TechKey {
	enabled := make([]domain.TechKey, 0, len(domain.TechKeys))
	for _, key := range domain.TechKeys {
		if s.IsTechnologyEnabled(game, key) && s.IsTechnologyResearchable(game, key) {
			enabled = append(enabled, key)
		}
	}
	return enabled
}

func (s *Service) IsTechnologyEnabled(game *domain.Game, key domain.TechKey) bool {
	return game.Settings.Technology.StartingTechnologyLevel[key] > 0
}

func (s *Service) IsTechnologyResearchable(game *domain.Game, key domain.TechKey) bool {
	return game.Settings.Technology.ResearchCosts[key] != domain.ResearchCostNone
}

// PlayerEffectiveTechnologyLevels returns the player's level on each
// track, defaulting untouched research to the baseline level of 1.
func (s *Service) PlayerEffectiveTechnologyLevels(game *domain.Game, player *domain.Player) domain.TechnologyLevels {
	level := func(key domain.TechKey) int {
		if player == nil {
			return 1
		}
		if tech, ok := player.Research[key]; ok && tech.Level > 0 {
			return tech.Level
		}
		return 1
	}

	return domain.TechnologyLevels{
		Scanning:        level(domain.TechScanning),
		Hyperspace:      level(domain.TechHyperspace),
		Terraforming:    level(domain.TechTerraforming),
		Experimentation: level(domain.TechExperimentation),
		Weapons:         level(domain.TechWeapons),
		Banking:         level(domain.TechBanking),
		Manufacturing:   level(domain.TechManufacturing),
		Specialists:     level(domain.TechSpecialists),
	}
}

// DefenderBonus is the flat bonus applied to the owning side when
// defending a star; doubled on asteroid fields.
func (s *Service) DefenderBonus(game *domain.Game, star *domain.Star) int {
	if game.Settings.SpecialGalaxy.DefenderBonus != domain.Enabled {
		return 0
	}

	if star.IsAsteroidField {
		return 2
	}
	return 1
}

// StarEffectiveWeaponsLevel is the weapons level a star defends with:
// the owner's researched weapons plus the defender bonus and the star
// specialist's buff, minus suppression from enemy carriers in orbit.
func (s *Service) StarEffectiveWeaponsLevel(game *domain.Game, defender *domain.Player, star *domain.Star, carriersInOrbit []*domain.Carrier) int {
	weapons := s.PlayerEffectiveTechnologyLevels(game, defender).Weapons

	weapons += s.DefenderBonus(game, star)
	weapons += s.StarWeaponsBuff(star)
	weapons -= s.CarriersWeaponsDebuff(carriersInOrbit)

	return weapons
}

// CarriersEffectiveWeaponsLevel is the weapons level a fleet fights
// with: the best researched weapons among the combatant players, plus
// every carrier specialist's buff for the combat context.
func (s *Service) CarriersEffectiveWeaponsLevel(game *domain.Game, players []*domain.Player, carriers []*domain.Carrier, isCarrierToStarCombat bool) int {
	weapons := 1
	for _, player := range players {
		level := s.PlayerEffectiveTechnologyLevels(game, player).Weapons
		if level > weapons {
			weapons = level
		}
	}

	for _, carrier := range carriers {
		weapons += s.CarrierWeaponsBuff(carrier, isCarrierToStarCombat)
	}

	return weapons
}

// CarrierWeaponsBuff is a single carrier specialist's weapons
// contribution. A context-specific modifier matching the combat context
// wins; the generic weapons modifier only applies when the specialist
// carries no context-specific modifier at all.
func (s *Service) CarrierWeaponsBuff(carrier *domain.Carrier, isCarrierToStarCombat bool) int {
	specialist := s.specialists.CarrierSpecialist(carrier)
	if specialist == nil || specialist.Modifiers.Local == nil {
		return 0
	}

	local := specialist.Modifiers.Local

	if isCarrierToStarCombat {
		if local.CarrierToStarCombat != nil {
			return intValue(local.CarrierToStarCombat.Weapons)
		}
	} else {
		if local.CarrierToCarrierCombat != nil {
			return intValue(local.CarrierToCarrierCombat.Weapons)
		}
	}

	// A modifier for the other combat context suppresses the generic
	// fallback; see the combat engine tests before changing this.
	if local.CarrierToStarCombat != nil || local.CarrierToCarrierCombat != nil {
		return 0
	}

	return intValue(local.Weapons)
}

// CarriersWeaponsDebuff sums the weapons suppression of the given
// carriers' specialists against the star they orbit.
func (s *Service) CarriersWeaponsDebuff(carriers []*domain.Carrier) int {
	debuff := 0
	for _, carrier := range carriers {
		specialist := s.specialists.CarrierSpecialist(carrier)
		if specialist == nil || specialist.Modifiers.Special == nil {
			continue
		}
		debuff += intValue(specialist.Modifiers.Special.DeductEnemyWeapons)
	}
	return debuff
}

// StarWeaponsBuff is the display-only variant of the star specialist's
// weapons modifier, without the defender bonus.
func (s *Service) StarWeaponsBuff(star *domain.Star) int {
	specialist := s.specialists.StarSpecialist(star)
	if specialist == nil || specialist.Modifiers.Local == nil {
		return 0
	}
	return intValue(specialist.Modifiers.Local.Weapons)
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
