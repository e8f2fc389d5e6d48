package leaderboard

import (
	"slices"

	"github.com/startide-game/engine/internal/domain"
)

// ComputeLeaderboard builds the total ordering of players for the game.
// Undefeated players always rank before defeated players; within each
// partition the comparator chain runs: explicit sort key, home stars
// (home-star-percentage conquest only), hill occupancy (king of the
// hill only), total stars, total ships, total carriers, defeat date
// (defeated partition), then input order.
func (s *Service) ComputeLeaderboard(game *domain.Game, sortKey SortKey) *domain.PlayerLeaderboard {
	var kingOfTheHillPlayer *domain.Player
	if s.gameTypes.IsKingOfTheHillMode(game) {
		kingOfTheHillPlayer = s.players.KingOfTheHillPlayer(game)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(game.Galaxy.Players))
	for _, player := range game.Galaxy.Players {
		entries = append(entries, domain.LeaderboardEntry{
			Player:          player,
			Stats:           s.stats.Stats(game, player),
			IsKingOfTheHill: kingOfTheHillPlayer != nil && player.ID == kingOfTheHillPlayer.ID,
		})
	}

	isHomeStarVictory := game.Settings.General.Mode == domain.GameModeConquest &&
		game.Settings.Conquest.VictoryCondition == domain.VictoryConditionHomeStarPercentage
	isKingOfTheHillMode := s.gameTypes.IsKingOfTheHillMode(game)

	compare := func(a, b domain.LeaderboardEntry) int {
		if sortKey != "" {
			if c := sortKey.compare(&a, &b); c != 0 {
				return c
			}
		}

		if isHomeStarVictory {
			if c := compareDesc(a.Stats.TotalHomeStars, b.Stats.TotalHomeStars); c != 0 {
				return c
			}
		}

		if isKingOfTheHillMode && a.IsKingOfTheHill != b.IsKingOfTheHill {
			if a.IsKingOfTheHill {
				return -1
			}
			return 1
		}

		if c := compareDesc(a.Stats.TotalStars, b.Stats.TotalStars); c != 0 {
			return c
		}
		if c := compareDesc(a.Stats.TotalShips, b.Stats.TotalShips); c != 0 {
			return c
		}
		if c := compareDesc(a.Stats.TotalCarriers, b.Stats.TotalCarriers); c != 0 {
			return c
		}

		// More recently defeated ranks first within the defeated
		// partition.
		if a.Player.Defeated && b.Player.Defeated &&
			a.Player.DefeatedDate != nil && b.Player.DefeatedDate != nil {
			if a.Player.DefeatedDate.After(*b.Player.DefeatedDate) {
				return -1
			}
			if a.Player.DefeatedDate.Before(*b.Player.DefeatedDate) {
				return 1
			}
		}

		return 0
	}

	var undefeated, defeated []domain.LeaderboardEntry
	for _, entry := range entries {
		if entry.Player.Defeated {
			defeated = append(defeated, entry)
		} else {
			undefeated = append(undefeated, entry)
		}
	}

	slices.SortStableFunc(undefeated, compare)
	slices.SortStableFunc(defeated, compare)

	return &domain.PlayerLeaderboard{
		Entries: append(undefeated, defeated...),
		FullKey: sortKey.FullKey(),
	}
}

// ComputeTeamLeaderboard sums member star counts per team, ordered
// descending. Returns nil unless the game is team conquest with teams.
func (s *Service) ComputeTeamLeaderboard(game *domain.Game) *domain.TeamLeaderboard {
	if !s.gameTypes.IsTeamConquestMode(game) || len(game.Galaxy.Teams) == 0 {
		return nil
	}

	entries := make([]domain.TeamLeaderboardEntry, 0, len(game.Galaxy.Teams))
	for _, team := range game.Galaxy.Teams {
		starCount := 0
		for _, memberID := range team.Players {
			member := s.players.ByID(game, memberID)
			if member == nil {
				continue
			}
			starCount += s.stats.Stats(game, member).TotalStars
		}

		entries = append(entries, domain.TeamLeaderboardEntry{
			Team:      team,
			StarCount: starCount,
		})
	}

	slices.SortStableFunc(entries, func(a, b domain.TeamLeaderboardEntry) int {
		return compareDesc(a.StarCount, b.StarCount)
	})

	return &domain.TeamLeaderboard{Entries: entries}
}

// LeaderboardPosition is the player's 1-indexed position in the last
// persisted leaderboard, or 0 when no leaderboard has been stored yet.
func (s *Service) LeaderboardPosition(game *domain.Game, player *domain.Player) int {
	for i, playerID := range game.State.Leaderboard {
		if playerID == player.ID {
			return i + 1
		}
	}
	return 0
}
