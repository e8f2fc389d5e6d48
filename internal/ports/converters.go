package ports

import (
	"fmt"
	"time"

	"github.com/startide-game/engine/internal/app"
	"github.com/startide-game/engine/internal/domain"
)

// The wire format mirrors the game server's document shape: camelCase
// keys, optional fields as pointers.

type gamePayload struct {
	ID        string           `json:"id"`
	Settings  settingsPayload  `json:"settings"`
	Constants constantsPayload `json:"constants"`
	State     statePayload     `json:"state"`
	Galaxy    galaxyPayload    `json:"galaxy"`
}

type settingsPayload struct {
	General struct {
		Mode        string `json:"mode"`
		Type        string `json:"type"`
		AwardRankTo string `json:"awardRankTo"`
		PlayerLimit int    `json:"playerLimit"`
	} `json:"general"`
	Conquest struct {
		VictoryCondition       string `json:"victoryCondition"`
		VictoryPercentage      int    `json:"victoryPercentage"`
		CapitalStarElimination string `json:"capitalStarElimination"`
	} `json:"conquest"`
	Diplomacy struct {
		Enabled string `json:"enabled"`
	} `json:"diplomacy"`
	SpecialGalaxy struct {
		DefenderBonus string `json:"defenderBonus"`
	} `json:"specialGalaxy"`
	Technology struct {
		StartingTechnologyLevel map[string]int    `json:"startingTechnologyLevel"`
		ResearchCosts           map[string]string `json:"researchCosts"`
	} `json:"technology"`
	Player struct {
		MissedTurnLimit int `json:"missedTurnLimit"`
	} `json:"player"`
}

type constantsPayload struct {
	Player struct {
		RankRewardMultiplier float64 `json:"rankRewardMultiplier"`
	} `json:"player"`
}

type statePayload struct {
	Tick            int      `json:"tick"`
	StarsForVictory int      `json:"starsForVictory"`
	Winner          *string  `json:"winner"`
	WinningTeam     *string  `json:"winningTeam"`
	Leaderboard     []string `json:"leaderboard"`
	TicksToEnd      *int     `json:"ticksToEnd"`
}

type galaxyPayload struct {
	Players  []playerPayload  `json:"players"`
	Teams    []teamPayload    `json:"teams"`
	Stars    []starPayload    `json:"stars"`
	Carriers []carrierPayload `json:"carriers"`
}

type playerPayload struct {
	ID               string                     `json:"id"`
	Alias            string                     `json:"alias"`
	UserID           *string                    `json:"userId"`
	TeamID           *string                    `json:"teamId"`
	Defeated         bool                       `json:"defeated"`
	DefeatedDate     *time.Time                 `json:"defeatedDate"`
	AFK              bool                       `json:"afk"`
	HasFilledAfkSlot bool                       `json:"hasFilledAfkSlot"`
	ReadyToQuit      bool                       `json:"readyToQuit"`
	MissedTurns      int                        `json:"missedTurns"`
	Research         map[string]researchPayload `json:"research"`
	Stats            *statsPayload              `json:"stats"`
}

type researchPayload struct {
	Level int `json:"level"`
}

type statsPayload struct {
	TotalStars              int `json:"totalStars"`
	TotalHomeStars          int `json:"totalHomeStars"`
	TotalCarriers           int `json:"totalCarriers"`
	TotalShips              int `json:"totalShips"`
	TotalEconomy            int `json:"totalEconomy"`
	TotalIndustry           int `json:"totalIndustry"`
	TotalScience            int `json:"totalScience"`
	NewShips                int `json:"newShips"`
	Warpgates               int `json:"warpgates"`
	TotalStarSpecialists    int `json:"totalStarSpecialists"`
	TotalCarrierSpecialists int `json:"totalCarrierSpecialists"`
	TotalSpecialists        int `json:"totalSpecialists"`
}

type teamPayload struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

type starPayload struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	OwnedByPlayerID *string `json:"ownedByPlayerId"`
	SpecialistID    *int    `json:"specialistId"`
	Ships           int     `json:"ships"`
	ShipsActual     float64 `json:"shipsActual"`
	Infrastructure  struct {
		Economy  int `json:"economy"`
		Industry int `json:"industry"`
		Science  int `json:"science"`
	} `json:"infrastructure"`
	IsHomeStar      bool `json:"homeStar"`
	IsAsteroidField bool `json:"isAsteroidField"`
	IsKingOfTheHill bool `json:"isKingOfTheHill"`
	Warpgate        bool `json:"warpGate"`
}

type carrierPayload struct {
	ID              string  `json:"id"`
	OwnedByPlayerID string  `json:"ownedByPlayerId"`
	OrbitingStarID  *string `json:"orbiting"`
	SpecialistID    *int    `json:"specialistId"`
	Ships           int     `json:"ships"`
}

var validGameModes = map[domain.GameMode]bool{
	domain.GameModeStandard:      true,
	domain.GameModeConquest:      true,
	domain.GameModeTeamConquest:  true,
	domain.GameModeKingOfTheHill: true,
	domain.GameModeBattleRoyale:  true,
}

// gameFromPayload converts and validates an incoming game snapshot.
// This is the only place snapshot validation happens; the domain
// packages trust what they are handed.
func gameFromPayload(payload *gamePayload) (*domain.Game, error) {
	if payload.ID == "" {
		return nil, fmt.Errorf("missing game id")
	}

	mode := domain.GameMode(payload.Settings.General.Mode)
	if !validGameModes[mode] {
		return nil, fmt.Errorf("unknown game mode: %q", payload.Settings.General.Mode)
	}

	if payload.Settings.General.PlayerLimit <= 0 {
		return nil, fmt.Errorf("invalid player limit: %d", payload.Settings.General.PlayerLimit)
	}

	if len(payload.Galaxy.Players) == 0 {
		return nil, fmt.Errorf("galaxy has no players")
	}

	players := make([]*domain.Player, 0, len(payload.Galaxy.Players))
	seenPlayerIDs := make(map[string]bool, len(payload.Galaxy.Players))
	for _, p := range payload.Galaxy.Players {
		if p.ID == "" {
			return nil, fmt.Errorf("missing player id")
		}
		if seenPlayerIDs[p.ID] {
			return nil, fmt.Errorf("duplicate player id: %q", p.ID)
		}
		seenPlayerIDs[p.ID] = true

		players = append(players, playerFromPayload(&p))
	}

	teams := make([]*domain.Team, 0, len(payload.Galaxy.Teams))
	for _, t := range payload.Galaxy.Teams {
		if t.ID == "" {
			return nil, fmt.Errorf("missing team id")
		}
		teams = append(teams, &domain.Team{
			ID:      t.ID,
			Name:    t.Name,
			Players: t.Players,
		})
	}

	stars := make([]*domain.Star, 0, len(payload.Galaxy.Stars))
	for _, s := range payload.Galaxy.Stars {
		if s.ID == "" {
			return nil, fmt.Errorf("missing star id")
		}
		if s.OwnedByPlayerID != nil && !seenPlayerIDs[*s.OwnedByPlayerID] {
			return nil, fmt.Errorf("star %q owned by unknown player %q", s.ID, *s.OwnedByPlayerID)
		}
		stars = append(stars, &domain.Star{
			ID:              s.ID,
			Name:            s.Name,
			OwnedByPlayerID: s.OwnedByPlayerID,
			SpecialistID:    s.SpecialistID,
			Ships:           s.Ships,
			ShipsActual:     s.ShipsActual,
			Infrastructure: domain.Infrastructure{
				Economy:  s.Infrastructure.Economy,
				Industry: s.Infrastructure.Industry,
				Science:  s.Infrastructure.Science,
			},
			IsHomeStar:      s.IsHomeStar,
			IsAsteroidField: s.IsAsteroidField,
			IsKingOfTheHill: s.IsKingOfTheHill,
			Warpgate:        s.Warpgate,
		})
	}

	carriers := make([]*domain.Carrier, 0, len(payload.Galaxy.Carriers))
	for _, c := range payload.Galaxy.Carriers {
		if c.ID == "" {
			return nil, fmt.Errorf("missing carrier id")
		}
		if !seenPlayerIDs[c.OwnedByPlayerID] {
			return nil, fmt.Errorf("carrier %q owned by unknown player %q", c.ID, c.OwnedByPlayerID)
		}
		carriers = append(carriers, &domain.Carrier{
			ID:              c.ID,
			OwnedByPlayerID: c.OwnedByPlayerID,
			OrbitingStarID:  c.OrbitingStarID,
			SpecialistID:    c.SpecialistID,
			Ships:           c.Ships,
		})
	}

	return &domain.Game{
		ID:        payload.ID,
		Settings:  settingsFromPayload(&payload.Settings),
		Constants: constantsFromPayload(&payload.Constants),
		State: domain.GameState{
			Tick:            payload.State.Tick,
			StarsForVictory: payload.State.StarsForVictory,
			Winner:          payload.State.Winner,
			WinningTeam:     payload.State.WinningTeam,
			Leaderboard:     payload.State.Leaderboard,
			TicksToEnd:      payload.State.TicksToEnd,
		},
		Galaxy: domain.Galaxy{
			Players:  players,
			Teams:    teams,
			Stars:    stars,
			Carriers: carriers,
		},
	}, nil
}

func settingsFromPayload(payload *settingsPayload) domain.GameSettings {
	var startingLevels map[domain.TechKey]int
	if len(payload.Technology.StartingTechnologyLevel) > 0 {
		startingLevels = make(map[domain.TechKey]int, len(payload.Technology.StartingTechnologyLevel))
		for key, level := range payload.Technology.StartingTechnologyLevel {
			startingLevels[domain.TechKey(key)] = level
		}
	}

	var researchCosts map[domain.TechKey]domain.ResearchCost
	if len(payload.Technology.ResearchCosts) > 0 {
		researchCosts = make(map[domain.TechKey]domain.ResearchCost, len(payload.Technology.ResearchCosts))
		for key, cost := range payload.Technology.ResearchCosts {
			researchCosts[domain.TechKey(key)] = domain.ResearchCost(cost)
		}
	}

	return domain.GameSettings{
		General: domain.GeneralSettings{
			Mode:        domain.GameMode(payload.General.Mode),
			Type:        domain.GameType(payload.General.Type),
			AwardRankTo: domain.AwardRankTo(payload.General.AwardRankTo),
			PlayerLimit: payload.General.PlayerLimit,
		},
		Conquest: domain.ConquestSettings{
			VictoryCondition:       domain.VictoryCondition(payload.Conquest.VictoryCondition),
			VictoryPercentage:      payload.Conquest.VictoryPercentage,
			CapitalStarElimination: domain.EnabledDisabled(payload.Conquest.CapitalStarElimination),
		},
		Diplomacy: domain.DiplomacySettings{
			Enabled: domain.EnabledDisabled(payload.Diplomacy.Enabled),
		},
		SpecialGalaxy: domain.SpecialGalaxySettings{
			DefenderBonus: domain.EnabledDisabled(payload.SpecialGalaxy.DefenderBonus),
		},
		Technology: domain.TechnologySettings{
			StartingTechnologyLevel: startingLevels,
			ResearchCosts:           researchCosts,
		},
		Player: domain.PlayerSettings{
			MissedTurnLimit: payload.Player.MissedTurnLimit,
		},
	}
}

func constantsFromPayload(payload *constantsPayload) domain.GameConstants {
	multiplier := payload.Player.RankRewardMultiplier
	if multiplier == 0 {
		multiplier = 1
	}
	return domain.GameConstants{
		Player: domain.PlayerConstants{
			RankRewardMultiplier: multiplier,
		},
	}
}

func playerFromPayload(payload *playerPayload) *domain.Player {
	var research map[domain.TechKey]domain.PlayerTechnology
	if len(payload.Research) > 0 {
		research = make(map[domain.TechKey]domain.PlayerTechnology, len(payload.Research))
		for key, tech := range payload.Research {
			research[domain.TechKey(key)] = domain.PlayerTechnology{Level: tech.Level}
		}
	}

	var stats *domain.PlayerStats
	if payload.Stats != nil {
		stats = &domain.PlayerStats{
			TotalStars:              payload.Stats.TotalStars,
			TotalHomeStars:          payload.Stats.TotalHomeStars,
			TotalCarriers:           payload.Stats.TotalCarriers,
			TotalShips:              payload.Stats.TotalShips,
			TotalEconomy:            payload.Stats.TotalEconomy,
			TotalIndustry:           payload.Stats.TotalIndustry,
			TotalScience:            payload.Stats.TotalScience,
			NewShips:                payload.Stats.NewShips,
			Warpgates:               payload.Stats.Warpgates,
			TotalStarSpecialists:    payload.Stats.TotalStarSpecialists,
			TotalCarrierSpecialists: payload.Stats.TotalCarrierSpecialists,
			TotalSpecialists:        payload.Stats.TotalSpecialists,
		}
	}

	return &domain.Player{
		ID:               payload.ID,
		Alias:            payload.Alias,
		UserID:           payload.UserID,
		TeamID:           payload.TeamID,
		Defeated:         payload.Defeated,
		DefeatedDate:     payload.DefeatedDate,
		AFK:              payload.AFK,
		HasFilledAfkSlot: payload.HasFilledAfkSlot,
		ReadyToQuit:      payload.ReadyToQuit,
		MissedTurns:      payload.MissedTurns,
		Research:         research,
		Stats:            stats,
	}
}

type leaderboardEntryResponse struct {
	PlayerID        string       `json:"playerId"`
	Alias           string       `json:"alias"`
	IsKingOfTheHill bool         `json:"isKingOfTheHill"`
	Stats           statsPayload `json:"stats"`
}

type leaderboardResponse struct {
	FullKey     string                     `json:"fullKey,omitempty"`
	Leaderboard []leaderboardEntryResponse `json:"leaderboard"`
}

func leaderboardToResponse(lb *domain.PlayerLeaderboard) leaderboardResponse {
	entries := make([]leaderboardEntryResponse, 0, len(lb.Entries))
	for _, entry := range lb.Entries {
		entries = append(entries, leaderboardEntryResponse{
			PlayerID:        entry.Player.ID,
			Alias:           entry.Player.Alias,
			IsKingOfTheHill: entry.IsKingOfTheHill,
			Stats:           statsToPayload(entry.Stats),
		})
	}
	return leaderboardResponse{
		FullKey:     lb.FullKey,
		Leaderboard: entries,
	}
}

func statsToPayload(stats domain.PlayerStats) statsPayload {
	return statsPayload{
		TotalStars:              stats.TotalStars,
		TotalHomeStars:          stats.TotalHomeStars,
		TotalCarriers:           stats.TotalCarriers,
		TotalShips:              stats.TotalShips,
		TotalEconomy:            stats.TotalEconomy,
		TotalIndustry:           stats.TotalIndustry,
		TotalScience:            stats.TotalScience,
		NewShips:                stats.NewShips,
		Warpgates:               stats.Warpgates,
		TotalStarSpecialists:    stats.TotalStarSpecialists,
		TotalCarrierSpecialists: stats.TotalCarrierSpecialists,
		TotalSpecialists:        stats.TotalSpecialists,
	}
}

type winnerResponse struct {
	Kind     string  `json:"kind"`
	PlayerID *string `json:"playerId,omitempty"`
	TeamID   *string `json:"teamId,omitempty"`
}

type rankChangeResponse struct {
	PlayerID string `json:"playerId"`
	Current  int    `json:"current"`
	New      int    `json:"new"`
}

type eloRatingChangeResponse struct {
	PlayerID  string `json:"playerId"`
	OldRating int    `json:"oldRating"`
	NewRating int    `json:"newRating"`
}

type eloRatingResultResponse struct {
	Winner eloRatingChangeResponse `json:"winner"`
	Loser  eloRatingChangeResponse `json:"loser"`
}

type finalizeGameResponse struct {
	Winner      winnerResponse           `json:"winner"`
	Leaderboard []string                 `json:"leaderboard"`
	Ranks       []rankChangeResponse     `json:"ranks"`
	EloRating   *eloRatingResultResponse `json:"eloRating,omitempty"`
}

func winnerToResponse(winner *domain.GameWinner) winnerResponse {
	switch winner.Kind {
	case domain.GameWinnerKindTeam:
		return winnerResponse{
			Kind:   winner.Kind.String(),
			TeamID: &winner.Team.ID,
		}
	default:
		return winnerResponse{
			Kind:     winner.Kind.String(),
			PlayerID: &winner.Player.ID,
		}
	}
}

func finalizeGameToResponse(result *app.FinalizeGameResult) finalizeGameResponse {
	order := make([]string, 0, len(result.Leaderboard.Entries))
	for _, entry := range result.Leaderboard.Entries {
		order = append(order, entry.Player.ID)
	}

	ranks := make([]rankChangeResponse, 0, len(result.Rankings.Ranks))
	for _, change := range result.Rankings.Ranks {
		ranks = append(ranks, rankChangeResponse{
			PlayerID: change.PlayerID,
			Current:  change.Current,
			New:      change.New,
		})
	}

	var eloRating *eloRatingResultResponse
	if result.Rankings.EloRating != nil {
		eloRating = &eloRatingResultResponse{
			Winner: eloRatingChangeResponse{
				PlayerID:  result.Rankings.EloRating.Winner.PlayerID,
				OldRating: result.Rankings.EloRating.Winner.OldRating,
				NewRating: result.Rankings.EloRating.Winner.NewRating,
			},
			Loser: eloRatingChangeResponse{
				PlayerID:  result.Rankings.EloRating.Loser.PlayerID,
				OldRating: result.Rankings.EloRating.Loser.OldRating,
				NewRating: result.Rankings.EloRating.Loser.NewRating,
			},
		}
	}

	return finalizeGameResponse{
		Winner:      winnerToResponse(result.Winner),
		Leaderboard: order,
		Ranks:       ranks,
		EloRating:   eloRating,
	}
}
