package leaderboard

import (
	"github.com/startide-game/engine/internal/domain"
)

// GameWinner decides whether the game has ended and who won. Returns
// nil while the game is in progress.
//
// The reasons are evaluated in a fixed priority order and the first
// match wins: concede, conquest star threshold, countdown expiry, last
// man standing. Concede and countdown are explicit decisions and must
// override pure stat comparisons, so their position in the chain is
// load-bearing.
func (s *Service) GameWinner(game *domain.Game, entries []domain.LeaderboardEntry) *domain.GameWinner {
	isKingOfTheHillMode := s.gameTypes.IsKingOfTheHillMode(game)

	if s.allUndefeatedPlayersReadyToQuit(game) {
		if isKingOfTheHillMode {
			if hillPlayer := s.players.KingOfTheHillPlayer(game); hillPlayer != nil {
				return domain.PlayerWinner(hillPlayer)
			}
		}
		return domain.PlayerWinner(firstPlacePlayer(entries))
	}

	if s.gameTypes.IsConquestMode(game) {
		if winner := s.starCountWinner(game, entries); winner != nil {
			return winner
		}
	}

	if isCountingDownToEnd(game) && hasReachedCountdownEnd(game) {
		if isKingOfTheHillMode {
			if hillPlayer := s.players.KingOfTheHillPlayer(game); hillPlayer != nil {
				return domain.PlayerWinner(hillPlayer)
			}
		}
		return domain.PlayerWinner(firstPlacePlayer(entries))
	}

	if winner := s.lastManStanding(game, entries); winner != nil {
		return domain.PlayerWinner(winner)
	}

	return nil
}

func (s *Service) allUndefeatedPlayersReadyToQuit(game *domain.Game) bool {
	undefeated := 0
	for _, player := range game.Galaxy.Players {
		if player.Defeated {
			continue
		}
		undefeated++
		if !player.ReadyToQuit {
			return false
		}
	}
	return undefeated > 0
}

// starCountWinner checks whether anyone has reached the star threshold.
// The winner is the first undefeated entry in leaderboard order, which
// already encodes the full tie-break chain. In team conquest the
// winner's team takes the victory.
func (s *Service) starCountWinner(game *domain.Game, entries []domain.LeaderboardEntry) *domain.GameWinner {
	isHomeStarVictory := game.Settings.Conquest.VictoryCondition == domain.VictoryConditionHomeStarPercentage

	thresholdReached := false
	for _, entry := range entries {
		starCount := entry.Stats.TotalStars
		if isHomeStarVictory {
			starCount = entry.Stats.TotalHomeStars
		}
		if starCount >= game.State.StarsForVictory {
			thresholdReached = true
			break
		}
	}

	if !thresholdReached {
		return nil
	}

	winner := firstUndefeatedPlayer(entries)
	if winner == nil {
		return nil
	}

	if s.gameTypes.IsTeamConquestMode(game) {
		if team := s.players.TeamOf(game, winner.ID); team != nil {
			return domain.TeamWinner(team)
		}
	}

	return domain.PlayerWinner(winner)
}

func (s *Service) lastManStanding(game *domain.Game, entries []domain.LeaderboardEntry) *domain.Player {
	var undefeated []*domain.Player
	defeatedCount := 0
	for _, player := range game.Galaxy.Players {
		if player.Defeated {
			defeatedCount++
		} else {
			undefeated = append(undefeated, player)
		}
	}

	if len(undefeated) == 1 {
		return undefeated[0]
	}

	// Every slot defeated somehow: current first place takes it.
	if defeatedCount == game.Settings.General.PlayerLimit {
		return firstPlacePlayer(entries)
	}

	// Only AI slots left alive: the humans are gone, settle the game on
	// current standings. Pseudo AFK players still count as human here.
	aiControlled := 0
	for _, player := range undefeated {
		if s.afk.IsAIControlled(game, player, false) {
			aiControlled++
		}
	}
	if len(undefeated) > 0 && aiControlled == len(undefeated) {
		return firstPlacePlayer(entries)
	}

	return nil
}

func isCountingDownToEnd(game *domain.Game) bool {
	return game.State.TicksToEnd != nil
}

func hasReachedCountdownEnd(game *domain.Game) bool {
	return game.State.TicksToEnd != nil && *game.State.TicksToEnd <= 0
}

func firstPlacePlayer(entries []domain.LeaderboardEntry) *domain.Player {
	if len(entries) == 0 {
		panic("leaderboard: empty leaderboard has no first place")
	}
	return entries[0].Player
}

func firstUndefeatedPlayer(entries []domain.LeaderboardEntry) *domain.Player {
	for _, entry := range entries {
		if !entry.Player.Defeated {
			return entry.Player
		}
	}
	return nil
}
