package leaderboard

import (
	"fmt"
	"math"

	"github.com/startide-game/engine/internal/domain"
)

// roundHalfUp rounds with halves going toward positive infinity, so
// -1.5 rounds to -1. The rank formula depends on this for positions in
// the lower half of the leaderboard.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ApplyGameRankings converts final placements into rank point
// adjustments on the users, recomputing levels from the new totals.
// Users are mutated in place; the returned result is the audit record
// of every change made. Players whose user is missing from the map
// (deleted accounts) are skipped.
//
// The rank increase for position i (0-indexed):
//   - position 0 receives len(leaderboard) points, counting every
//     player including AFK ones
//   - other positions receive round(len/2 - i), but only when the game
//     awards rank to all players
//   - AFK players never gain rank and always lose at least one point
//   - players who took over a vacated AFK slot get a boosted increase
//     and never a penalty
//   - special game modes double a positive increase
//   - the game's rank reward multiplier applies last
func (s *Service) ApplyGameRankings(game *domain.Game, users map[string]*domain.User, entries []domain.LeaderboardEntry) *domain.GameRankingResult {
	result := &domain.GameRankingResult{}

	awardToAll := game.Settings.General.AwardRankTo == domain.AwardRankToAll
	isSpecialMode := s.gameTypes.IsSpecialGameMode(game)

	for i, entry := range entries {
		player := entry.Player

		user := userFor(users, player)
		if user == nil {
			continue
		}

		rankIncrease := 0

		if i == 0 {
			rankIncrease = len(entries)
		} else if awardToAll {
			rankIncrease = roundHalfUp(float64(len(entries))/2 - float64(i))
		}

		if player.AFK {
			rankIncrease = min(rankIncrease, -1)
		} else if player.HasFilledAfkSlot {
			rankIncrease = max(roundHalfUp(float64(rankIncrease)*1.5), 0)
		}

		if rankIncrease > 0 && isSpecialMode {
			rankIncrease *= 2
		}

		// The multiplier applies after every other adjustment.
		rankIncrease = roundHalfUp(float64(rankIncrease) * game.Constants.Player.RankRewardMultiplier)

		currentRank := user.Achievements.Rank
		newRank := max(currentRank+rankIncrease, 0)

		user.Achievements.Rank = newRank
		user.Achievements.Level = s.levels.ByRankPoints(newRank).ID

		result.Ranks = append(result.Ranks, domain.RankChange{
			PlayerID: player.ID,
			Current:  currentRank,
			New:      newRank,
		})
	}

	result.EloRating = s.applyEloRating(game, users)

	return result
}

// applyEloRating runs the 1v1 rating update. Returns nil for any other
// game size. The winner must already be recorded on the game state; a
// missing winner is corrupted upstream state and panics.
func (s *Service) applyEloRating(game *domain.Game, users map[string]*domain.User) *domain.EloRatingChangeResult {
	if !s.gameTypes.Is1v1Game(game) {
		return nil
	}

	if game.State.Winner == nil {
		panic("leaderboard: 1v1 game finished without a recorded winner")
	}

	var winningPlayer, losingPlayer *domain.Player
	for _, player := range game.Galaxy.Players {
		if player.ID == *game.State.Winner {
			winningPlayer = player
		} else {
			losingPlayer = player
		}
	}

	if winningPlayer == nil || losingPlayer == nil {
		panic(fmt.Sprintf("leaderboard: recorded winner %q not matched against both players", *game.State.Winner))
	}

	winningUser := userFor(users, winningPlayer)
	losingUser := userFor(users, losingPlayer)

	winnerOldRating := domain.DefaultEloRating
	loserOldRating := domain.DefaultEloRating

	if winningUser != nil {
		winnerOldRating = winningUser.EloRating()
		winningUser.Achievements.Victories1v1++
	}
	if losingUser != nil {
		loserOldRating = losingUser.EloRating()
		losingUser.Achievements.Defeated1v1++
	}

	s.rating.Recalculate(winningUser, losingUser, true)

	return &domain.EloRatingChangeResult{
		Winner: domain.EloRatingChange{
			PlayerID:  winningPlayer.ID,
			OldRating: winnerOldRating,
			NewRating: winningUser.EloRating(),
		},
		Loser: domain.EloRatingChange{
			PlayerID:  losingPlayer.ID,
			OldRating: loserOldRating,
			NewRating: losingUser.EloRating(),
		},
	}
}

// IncrementGameWinnerAchievements bumps the winner's victory counters,
// hands out any victory badges and awards a galactic credit for
// non-1v1 games.
func (s *Service) IncrementGameWinnerAchievements(game *domain.Game, users map[string]*domain.User, winner *domain.Player, awardCredits bool) {
	user := userFor(users, winner)
	if user == nil {
		return
	}

	user.Achievements.Victories++

	// Official or not, a 32 player game earns the badge.
	if s.gameTypes.Is32PlayerGame(game) {
		s.badges.AwardVictor32PlayerGame(user)
	}

	if s.gameTypes.IsSpecialGameMode(game) {
		s.badges.AwardVictorySpecialGame(user, game)
	}

	if !s.gameTypes.Is1v1Game(game) && awardCredits {
		user.Credits++
	}
}

// MarkEstablishedPlayers flags every non-AFK participant's user as an
// established player.
func (s *Service) MarkEstablishedPlayers(game *domain.Game, users map[string]*domain.User) {
	for _, player := range game.Galaxy.Players {
		user := userFor(users, player)
		if user == nil {
			continue
		}

		if !player.AFK {
			user.IsEstablishedPlayer = true
		}
	}
}

// IncrementPlayersCompletedAchievement credits a completed game to
// every player who saw it through undefeated and active.
func (s *Service) IncrementPlayersCompletedAchievement(game *domain.Game, users map[string]*domain.User) {
	for _, player := range game.Galaxy.Players {
		if player.Defeated || player.AFK {
			continue
		}

		user := userFor(users, player)
		if user == nil {
			continue
		}

		user.Achievements.Completed++
	}
}

func userFor(users map[string]*domain.User, player *domain.Player) *domain.User {
	if player.UserID == nil {
		return nil
	}
	user, ok := users[*player.UserID]
	if !ok || user == nil || user.Deleted {
		return nil
	}
	return user
}
