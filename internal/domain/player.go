package domain

import (
	"time"
)

type TechKey string

const (
	TechScanning        TechKey = "scanning"
	TechHyperspace      TechKey = "hyperspace"
	TechTerraforming    TechKey = "terraforming"
	TechExperimentation TechKey = "experimentation"
	TechWeapons         TechKey = "weapons"
	TechBanking         TechKey = "banking"
	TechManufacturing   TechKey = "manufacturing"
	TechSpecialists     TechKey = "specialists"
)

// TechKeys lists the eight research tracks in display order.
var TechKeys = []TechKey{
	TechScanning,
	TechHyperspace,
	TechTerraforming,
	TechExperimentation,
	TechWeapons,
	TechBanking,
	TechManufacturing,
	TechSpecialists,
}

type PlayerTechnology struct {
	Level int
}

type Player struct {
	ID     string
	Alias  string
	UserID *string
	TeamID *string

	Defeated     bool
	DefeatedDate *time.Time
	AFK          bool

	// HasFilledAfkSlot marks a player who took over a slot vacated by an
	// AFK player mid-game.
	HasFilledAfkSlot bool

	ReadyToQuit bool
	MissedTurns int

	Research map[TechKey]PlayerTechnology

	// Stats is the cached aggregate, recomputed lazily when absent.
	Stats *PlayerStats
}

// PlayerStats is the aggregate snapshot the leaderboard sorts on.
type PlayerStats struct {
	TotalStars              int
	TotalHomeStars          int
	TotalCarriers           int
	TotalShips              int
	TotalEconomy            int
	TotalIndustry           int
	TotalScience            int
	NewShips                int
	Warpgates               int
	TotalStarSpecialists    int
	TotalCarrierSpecialists int
	TotalSpecialists        int
}

// TechnologyLevels holds a player's effective level per research track.
// Levels are never below 1.
type TechnologyLevels struct {
	Scanning        int
	Hyperspace      int
	Terraforming    int
	Experimentation int
	Weapons         int
	Banking         int
	Manufacturing   int
	Specialists     int
}
