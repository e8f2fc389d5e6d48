package app

import (
	"context"
	"fmt"

	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/leaderboard"
	"github.com/startide-game/engine/internal/logging"
)

type finalizeUserRepository interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	SaveAchievements(ctx context.Context, users []*domain.User) error
}

// FinalizeGameResult is the full outcome report for a finished game.
type FinalizeGameResult struct {
	Winner      *domain.GameWinner
	Leaderboard *domain.PlayerLeaderboard
	Rankings    *domain.GameRankingResult
}

type FinalizeGame func(ctx context.Context, game *domain.Game, awardCredits bool) (*FinalizeGameResult, error)

// BuildFinalizeGame evaluates the outcome of a game snapshot and applies
// it: ranks the players, decides the winner, adjusts every participant's
// rank, level and rating and persists the achievement mutations. Returns
// domain.ErrGameNotFinished when no victory condition has been met yet.
func BuildFinalizeGame(
	service *leaderboard.Service,
	repo finalizeUserRepository,
) FinalizeGame {
	return func(ctx context.Context, game *domain.Game, awardCredits bool) (*FinalizeGameResult, error) {
		logger := logging.FromContext(ctx)

		lb := service.ComputeLeaderboard(game, "")

		winner := service.GameWinner(game, lb.Entries)
		if winner == nil {
			return nil, domain.ErrGameNotFinished
		}

		// The rating update reads the recorded outcome off the state, so
		// it has to be written before the rankings run.
		switch winner.Kind {
		case domain.GameWinnerKindPlayer:
			game.State.Winner = &winner.Player.ID
		case domain.GameWinnerKindTeam:
			game.State.WinningTeam = &winner.Team.ID
		}

		userIDs := make([]string, 0, len(game.Galaxy.Players))
		for _, player := range game.Galaxy.Players {
			if player.UserID == nil {
				continue
			}
			userIDs = append(userIDs, *player.UserID)
		}

		users, err := repo.GetByIDs(ctx, userIDs)
		if err != nil {
			// NOTE: UserRepository implementations handle their own error reporting
			return nil, fmt.Errorf("failed to get users: %w", err)
		}

		rankings := service.ApplyGameRankings(game, users, lb.Entries)

		for _, player := range winningPlayers(game, winner) {
			service.IncrementGameWinnerAchievements(game, users, player, awardCredits)
		}

		service.MarkEstablishedPlayers(game, users)
		service.IncrementPlayersCompletedAchievement(game, users)

		changed := make([]*domain.User, 0, len(users))
		for _, user := range users {
			changed = append(changed, user)
		}

		if err := repo.SaveAchievements(ctx, changed); err != nil {
			// NOTE: UserRepository implementations handle their own error reporting
			return nil, fmt.Errorf("failed to save achievements: %w", err)
		}

		logger.Info(
			"Finalized game",
			"gameId", game.ID,
			"winnerKind", winner.Kind.String(),
			"rankChanges", len(rankings.Ranks),
		)

		return &FinalizeGameResult{
			Winner:      winner,
			Leaderboard: lb,
			Rankings:    rankings,
		}, nil
	}
}

// winningPlayers resolves the winner union to the players whose users
// earn the victory achievements. A team victory credits every member.
func winningPlayers(game *domain.Game, winner *domain.GameWinner) []*domain.Player {
	switch winner.Kind {
	case domain.GameWinnerKindPlayer:
		return []*domain.Player{winner.Player}
	case domain.GameWinnerKindTeam:
		members := make([]*domain.Player, 0, len(winner.Team.Players))
		for _, playerID := range winner.Team.Players {
			if player := playerByID(game, playerID); player != nil {
				members = append(members, player)
			}
		}
		return members
	default:
		panic(fmt.Sprintf("app: unknown winner kind: %v", winner.Kind))
	}
}
