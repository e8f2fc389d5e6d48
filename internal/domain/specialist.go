package domain

// Specialist is an entity-attached modifier bundle. All modifier fields
// are optional; absence means no effect.
type Specialist struct {
	ID        int
	Name      string
	Modifiers SpecialistModifiers
}

type SpecialistModifiers struct {
	Local   *LocalModifiers
	Special *SpecialModifiers
}

type LocalModifiers struct {
	Weapons *int

	// Context-specific weapons modifiers. When either is present the
	// generic Weapons value no longer applies in combat, even for the
	// context the specific modifier does not match.
	CarrierToStarCombat    *CombatModifiers
	CarrierToCarrierCombat *CombatModifiers
}

type CombatModifiers struct {
	Weapons *int
}

type SpecialModifiers struct {
	DeductEnemyWeapons *int
}
