package domain

// Game is a full in-memory snapshot of a single game, as loaded by the
// tick worker. The engine reads it and only ever mutates State and the
// User objects it is handed alongside it.
type Game struct {
	ID        string
	Settings  GameSettings
	Constants GameConstants
	State     GameState
	Galaxy    Galaxy
}

type Galaxy struct {
	Players  []*Player
	Teams    []*Team
	Stars    []*Star
	Carriers []*Carrier
}

type Team struct {
	ID      string
	Name    string
	Players []string
}

type GameMode string

const (
	GameModeStandard      GameMode = "standard"
	GameModeConquest      GameMode = "conquest"
	GameModeTeamConquest  GameMode = "teamConquest"
	GameModeKingOfTheHill GameMode = "kingOfTheHill"
	GameModeBattleRoyale  GameMode = "battleRoyale"
)

type GameType string

const (
	GameTypeCustom        GameType = "custom"
	GameTypeStandardRT    GameType = "standard_rt"
	GameTypeStandardTB    GameType = "standard_tb"
	GameTypeNewPlayerRT   GameType = "new_player_rt"
	GameType1v1RT         GameType = "1v1_rt"
	GameType1v1TB         GameType = "1v1_tb"
	GameType32PlayerRT    GameType = "32_player_rt"
	GameTypeSpecialDark   GameType = "special_dark"
	GameTypeSpecialFog    GameType = "special_fog"
	GameTypeSpecialUltra  GameType = "special_ultra_dark"
	GameTypeSpecialOrbit  GameType = "special_orbital"
	GameTypeSpecialHome   GameType = "special_homeStar"
	GameTypeSpecialAnon   GameType = "special_anonymous"
	GameTypeSpecialKOTH   GameType = "special_kingOfTheHill"
	GameTypeSpecialTiny   GameType = "special_tinyGalaxy"
	GameTypeSpecialFreeze GameType = "special_freeForAll"
	GameTypeSpecialArcade GameType = "special_arcade"
)

type AwardRankTo string

const (
	AwardRankToAll    AwardRankTo = "all"
	AwardRankToFirst  AwardRankTo = "first"
	AwardRankToTeams  AwardRankTo = "teams"
	AwardRankToWinner AwardRankTo = "winner"
)

type VictoryCondition string

const (
	VictoryConditionStarCount          VictoryCondition = "starCount"
	VictoryConditionHomeStarPercentage VictoryCondition = "homeStarPercentage"
)

type EnabledDisabled string

const (
	Enabled  EnabledDisabled = "enabled"
	Disabled EnabledDisabled = "disabled"
)

type GameSettings struct {
	General       GeneralSettings
	Conquest      ConquestSettings
	Diplomacy     DiplomacySettings
	SpecialGalaxy SpecialGalaxySettings
	Technology    TechnologySettings
	Player        PlayerSettings
}

type GeneralSettings struct {
	Mode        GameMode
	Type        GameType
	AwardRankTo AwardRankTo
	PlayerLimit int
}

type ConquestSettings struct {
	VictoryCondition       VictoryCondition
	VictoryPercentage      int
	CapitalStarElimination EnabledDisabled
}

type DiplomacySettings struct {
	Enabled EnabledDisabled
}

type SpecialGalaxySettings struct {
	DefenderBonus EnabledDisabled
}

// ResearchCost of "none" marks a technology as locked for research.
type ResearchCost string

const ResearchCostNone ResearchCost = "none"

type TechnologySettings struct {
	StartingTechnologyLevel map[TechKey]int
	ResearchCosts           map[TechKey]ResearchCost
}

type PlayerSettings struct {
	MissedTurnLimit int
}

type GameConstants struct {
	Player PlayerConstants
}

type PlayerConstants struct {
	RankRewardMultiplier float64
}

// GameState is the mutable, per-tick portion of a game document.
type GameState struct {
	Tick            int
	StarsForVictory int

	// Winner is the player ID selected by the victory evaluator, set by
	// the tick worker once the game ends.
	Winner *string

	// WinningTeam is set instead of Winner for team victories.
	WinningTeam *string

	// Leaderboard is the last computed ranking (player IDs in order),
	// persisted across ticks for position lookups.
	Leaderboard []string

	// TicksToEnd is the end countdown: active when non-nil, elapsed when
	// it has counted down to zero or below.
	TicksToEnd *int
}

type Infrastructure struct {
	Economy  int
	Industry int
	Science  int
}

type Star struct {
	ID              string
	Name            string
	OwnedByPlayerID *string
	SpecialistID    *int
	Ships           int
	ShipsActual     float64
	Infrastructure  Infrastructure
	IsHomeStar      bool
	IsAsteroidField bool
	IsKingOfTheHill bool
	Warpgate        bool
}

type Carrier struct {
	ID              string
	OwnedByPlayerID string
	OrbitingStarID  *string
	SpecialistID    *int
	Ships           int
}
