package technology_test

import (
	"testing"

	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/technology"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

// fakeSpecialists returns the configured specialist for every star or
// carrier that has a specialist ID assigned.
type fakeSpecialists struct {
	star    *domain.Specialist
	carrier *domain.Specialist
}

func (f *fakeSpecialists) StarSpecialist(star *domain.Star) *domain.Specialist {
	if star == nil || star.SpecialistID == nil {
		return nil
	}
	return f.star
}

func (f *fakeSpecialists) CarrierSpecialist(carrier *domain.Carrier) *domain.Specialist {
	if carrier == nil || carrier.SpecialistID == nil {
		return nil
	}
	return f.carrier
}

func newService(star, carrier *domain.Specialist) *technology.Service {
	return technology.NewService(&fakeSpecialists{star: star, carrier: carrier})
}

func gameWithTechnology(startingLevels map[domain.TechKey]int, researchCosts map[domain.TechKey]domain.ResearchCost) *domain.Game {
	return &domain.Game{
		Settings: domain.GameSettings{
			Technology: domain.TechnologySettings{
				StartingTechnologyLevel: startingLevels,
				ResearchCosts:           researchCosts,
			},
		},
	}
}

func gameWithDefenderBonus(enabled domain.EnabledDisabled) *domain.Game {
	return &domain.Game{
		Settings: domain.GameSettings{
			SpecialGalaxy: domain.SpecialGalaxySettings{DefenderBonus: enabled},
		},
	}
}

func playerWithWeapons(level int) *domain.Player {
	return &domain.Player{
		Research: map[domain.TechKey]domain.PlayerTechnology{
			domain.TechWeapons: {Level: level},
		},
	}
}

func TestEnabledTechnologies(t *testing.T) {
	t.Parallel()

	game := gameWithTechnology(
		map[domain.TechKey]int{
			domain.TechScanning:   1,
			domain.TechHyperspace: 0,
			domain.TechWeapons:    1000,
		},
		map[domain.TechKey]domain.ResearchCost{
			domain.TechScanning:   "standard",
			domain.TechHyperspace: "standard",
			domain.TechWeapons:    "expensive",
		},
	)

	enabled := newService(nil, nil).EnabledTechnologies(game)

	require.Len(t, enabled, 2)
	require.Contains(t, enabled, domain.TechScanning)
	require.Contains(t, enabled, domain.TechWeapons)
}

func TestIsTechnologyResearchable(t *testing.T) {
	t.Parallel()

	service := newService(nil, nil)

	researchable := gameWithTechnology(nil, map[domain.TechKey]domain.ResearchCost{
		domain.TechScanning: "standard",
	})
	require.True(t, service.IsTechnologyResearchable(researchable, domain.TechScanning))

	locked := gameWithTechnology(nil, map[domain.TechKey]domain.ResearchCost{
		domain.TechScanning: domain.ResearchCostNone,
	})
	require.False(t, service.IsTechnologyResearchable(locked, domain.TechScanning))
}

func TestIsTechnologyEnabled(t *testing.T) {
	t.Parallel()

	service := newService(nil, nil)

	enabled := gameWithTechnology(map[domain.TechKey]int{domain.TechScanning: 1}, nil)
	require.True(t, service.IsTechnologyEnabled(enabled, domain.TechScanning))

	disabled := gameWithTechnology(map[domain.TechKey]int{domain.TechScanning: 0}, nil)
	require.False(t, service.IsTechnologyEnabled(disabled, domain.TechScanning))
}

func TestDefenderBonus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enabled  domain.EnabledDisabled
		asteroid bool
		expected int
	}{
		{"enabled", domain.Enabled, false, 1},
		{"disabled", domain.Disabled, false, 0},
		{"enabled asteroid field", domain.Enabled, true, 2},
		{"disabled asteroid field", domain.Disabled, true, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			game := gameWithDefenderBonus(tt.enabled)
			star := &domain.Star{IsAsteroidField: tt.asteroid}
			require.Equal(t, tt.expected, newService(nil, nil).DefenderBonus(game, star))
		})
	}
}

func TestStarEffectiveWeaponsLevel(t *testing.T) {
	t.Parallel()

	starSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{Weapons: intPtr(1)},
		},
	}
	debuffSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Special: &domain.SpecialModifiers{DeductEnemyWeapons: intPtr(1)},
		},
	}

	tests := []struct {
		name            string
		defenderBonus   domain.EnabledDisabled
		starSpecialist  *domain.Specialist
		orbitSpecialist *domain.Specialist
		hasStarSpec     bool
		carriersInOrbit int
		asteroidField   bool
		baseWeapons     int
		expected        int
	}{
		{
			name:          "no carriers no specs no defender bonus",
			defenderBonus: domain.Disabled,
			baseWeapons:   1,
			expected:      1,
		},
		{
			name:          "defender bonus only",
			defenderBonus: domain.Enabled,
			baseWeapons:   1,
			expected:      2,
		},
		{
			name:           "star specialist buff",
			defenderBonus:  domain.Disabled,
			starSpecialist: starSpecialist,
			hasStarSpec:    true,
			baseWeapons:    1,
			expected:       2,
		},
		{
			name:            "enemy carrier without deduction",
			defenderBonus:   domain.Disabled,
			orbitSpecialist: starSpecialist,
			carriersInOrbit: 1,
			baseWeapons:     2,
			expected:        2,
		},
		{
			name:            "enemy carrier deduction",
			defenderBonus:   domain.Disabled,
			orbitSpecialist: debuffSpecialist,
			carriersInOrbit: 1,
			baseWeapons:     3,
			expected:        2,
		},
		{
			name:          "asteroid field defender bonus",
			defenderBonus: domain.Enabled,
			asteroidField: true,
			baseWeapons:   3,
			expected:      5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			game := gameWithDefenderBonus(tt.defenderBonus)
			player := playerWithWeapons(tt.baseWeapons)

			star := &domain.Star{IsAsteroidField: tt.asteroidField}
			if tt.hasStarSpec {
				star.SpecialistID = intPtr(1)
			}

			var carriers []*domain.Carrier
			for i := 0; i < tt.carriersInOrbit; i++ {
				carriers = append(carriers, &domain.Carrier{SpecialistID: intPtr(1)})
			}

			service := newService(tt.starSpecialist, tt.orbitSpecialist)
			require.Equal(t, tt.expected, service.StarEffectiveWeaponsLevel(game, player, star, carriers))
		})
	}
}

func TestCarrierWeaponsBuff(t *testing.T) {
	t.Parallel()

	genericSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{Weapons: intPtr(1)},
		},
	}
	starCombatSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{
				CarrierToStarCombat: &domain.CombatModifiers{Weapons: intPtr(5)},
			},
		},
	}
	carrierCombatSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{
				CarrierToCarrierCombat: &domain.CombatModifiers{Weapons: intPtr(5)},
			},
		},
	}
	mixedSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{
				Weapons:             intPtr(2),
				CarrierToStarCombat: &domain.CombatModifiers{Weapons: intPtr(5)},
			},
		},
	}

	tests := []struct {
		name                  string
		specialist            *domain.Specialist
		hasSpecialist         bool
		isCarrierToStarCombat bool
		expected              int
	}{
		{
			name:     "no specialist",
			expected: 0,
		},
		{
			name:          "generic weapons modifier",
			specialist:    genericSpecialist,
			hasSpecialist: true,
			expected:      1,
		},
		{
			name:                  "star combat modifier in star combat",
			specialist:            starCombatSpecialist,
			hasSpecialist:         true,
			isCarrierToStarCombat: true,
			expected:              5,
		},
		{
			name:          "star combat modifier in carrier combat",
			specialist:    starCombatSpecialist,
			hasSpecialist: true,
			expected:      0,
		},
		{
			name:          "carrier combat modifier in carrier combat",
			specialist:    carrierCombatSpecialist,
			hasSpecialist: true,
			expected:      5,
		},
		{
			name:                  "carrier combat modifier in star combat",
			specialist:            carrierCombatSpecialist,
			hasSpecialist:         true,
			isCarrierToStarCombat: true,
			expected:              0,
		},
		{
			// The generic modifier must not kick in for the context the
			// specific modifier does not cover.
			name:          "context modifier suppresses generic fallback",
			specialist:    mixedSpecialist,
			hasSpecialist: true,
			expected:      0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			carrier := &domain.Carrier{}
			if tt.hasSpecialist {
				carrier.SpecialistID = intPtr(1)
			}

			service := newService(nil, tt.specialist)
			require.Equal(t, tt.expected, service.CarrierWeaponsBuff(carrier, tt.isCarrierToStarCombat))
		})
	}
}

func TestCarriersEffectiveWeaponsLevel(t *testing.T) {
	t.Parallel()

	genericSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{Weapons: intPtr(1)},
		},
	}

	t.Run("single player single carrier", func(t *testing.T) {
		t.Parallel()

		players := []*domain.Player{playerWithWeapons(1)}
		carriers := []*domain.Carrier{{}}

		service := newService(nil, nil)
		require.Equal(t, 1, service.CarriersEffectiveWeaponsLevel(&domain.Game{}, players, carriers, true))
	})

	t.Run("multiple players take the best research", func(t *testing.T) {
		t.Parallel()

		players := []*domain.Player{playerWithWeapons(1), playerWithWeapons(2)}
		carriers := []*domain.Carrier{{}}

		service := newService(nil, nil)
		require.Equal(t, 2, service.CarriersEffectiveWeaponsLevel(&domain.Game{}, players, carriers, true))
	})

	t.Run("carrier specialist buff added", func(t *testing.T) {
		t.Parallel()

		players := []*domain.Player{playerWithWeapons(1)}
		carriers := []*domain.Carrier{{SpecialistID: intPtr(1)}}

		service := newService(nil, genericSpecialist)
		require.Equal(t, 2, service.CarriersEffectiveWeaponsLevel(&domain.Game{}, players, carriers, true))
	})

	t.Run("player without research defaults to level one", func(t *testing.T) {
		t.Parallel()

		players := []*domain.Player{{}}
		carriers := []*domain.Carrier{{}}

		service := newService(nil, nil)
		require.Equal(t, 1, service.CarriersEffectiveWeaponsLevel(&domain.Game{}, players, carriers, false))
	})
}

func TestCarriersWeaponsDebuff(t *testing.T) {
	t.Parallel()

	deductSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Special: &domain.SpecialModifiers{DeductEnemyWeapons: intPtr(1)},
		},
	}
	otherSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Special: &domain.SpecialModifiers{},
		},
	}

	t.Run("no carriers", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0, newService(nil, nil).CarriersWeaponsDebuff(nil))
	})

	t.Run("single carrier with deduction", func(t *testing.T) {
		t.Parallel()
		carriers := []*domain.Carrier{{SpecialistID: intPtr(1)}}
		require.Equal(t, 1, newService(nil, deductSpecialist).CarriersWeaponsDebuff(carriers))
	})

	t.Run("single carrier without deduction", func(t *testing.T) {
		t.Parallel()
		carriers := []*domain.Carrier{{SpecialistID: intPtr(1)}}
		require.Equal(t, 0, newService(nil, otherSpecialist).CarriersWeaponsDebuff(carriers))
	})

	t.Run("deductions sum across carriers", func(t *testing.T) {
		t.Parallel()
		carriers := []*domain.Carrier{{SpecialistID: intPtr(1)}, {SpecialistID: intPtr(1)}}
		require.Equal(t, 2, newService(nil, deductSpecialist).CarriersWeaponsDebuff(carriers))
	})
}

func TestStarWeaponsBuff(t *testing.T) {
	t.Parallel()

	starSpecialist := &domain.Specialist{
		Modifiers: domain.SpecialistModifiers{
			Local: &domain.LocalModifiers{Weapons: intPtr(1)},
		},
	}

	t.Run("no specialist", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0, newService(nil, nil).StarWeaponsBuff(&domain.Star{}))
	})

	t.Run("specialist with local weapons", func(t *testing.T) {
		t.Parallel()
		star := &domain.Star{SpecialistID: intPtr(1)}
		require.Equal(t, 1, newService(starSpecialist, nil).StarWeaponsBuff(star))
	})
}

func TestPlayerEffectiveTechnologyLevels(t *testing.T) {
	t.Parallel()

	service := newService(nil, nil)

	t.Run("unknown research levels default to one", func(t *testing.T) {
		t.Parallel()

		levels := service.PlayerEffectiveTechnologyLevels(&domain.Game{}, &domain.Player{})

		require.Equal(t, domain.TechnologyLevels{
			Scanning:        1,
			Hyperspace:      1,
			Terraforming:    1,
			Experimentation: 1,
			Weapons:         1,
			Banking:         1,
			Manufacturing:   1,
			Specialists:     1,
		}, levels)
	})

	t.Run("stored levels pass through", func(t *testing.T) {
		t.Parallel()

		player := &domain.Player{
			Research: map[domain.TechKey]domain.PlayerTechnology{
				domain.TechScanning:        {Level: 1},
				domain.TechHyperspace:      {Level: 2},
				domain.TechTerraforming:    {Level: 3},
				domain.TechExperimentation: {Level: 4},
				domain.TechWeapons:         {Level: 5},
				domain.TechBanking:         {Level: 6},
				domain.TechManufacturing:   {Level: 7},
				domain.TechSpecialists:     {Level: 8},
			},
		}

		levels := service.PlayerEffectiveTechnologyLevels(&domain.Game{}, player)

		require.Equal(t, domain.TechnologyLevels{
			Scanning:        1,
			Hyperspace:      2,
			Terraforming:    3,
			Experimentation: 4,
			Weapons:         5,
			Banking:         6,
			Manufacturing:   7,
			Specialists:     8,
		}, levels)
	})

	t.Run("nil player defaults to one", func(t *testing.T) {
		t.Parallel()

		levels := service.PlayerEffectiveTechnologyLevels(&domain.Game{}, nil)
		require.Equal(t, 1, levels.Weapons)
	})
}
