package leaderboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/startide-game/engine/internal/badges"
	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/domaintest"
)

func rankChangeByPlayer(result *domain.GameRankingResult, playerID string) (domain.RankChange, bool) {
	for _, change := range result.Ranks {
		if change.PlayerID == playerID {
			return change, true
		}
	}
	return domain.RankChange{}, false
}

func TestApplyGameRankingsAwardAll(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(8, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p3").WithStarCounts(6, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p4").WithStarCounts(4, 0, 0).Build(),
	}
	game := domaintest.NewGameBuilder().WithPlayers(players...).Build()
	users := domaintest.UsersForPlayers(players...)
	for _, user := range users {
		user.Achievements.Rank = 10
	}

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	result := svc.ApplyGameRankings(game, users, lb.Entries)

	require.Len(t, result.Ranks, 4)
	require.Nil(t, result.EloRating)

	// First place gets the full player count, the rest follow
	// round(len/2 - i): +4, +1, 0, -1.
	wantNewRanks := map[string]int{"p1": 14, "p2": 11, "p3": 10, "p4": 9}
	for playerID, want := range wantNewRanks {
		change, ok := rankChangeByPlayer(result, playerID)
		require.True(t, ok, "missing rank change for %s", playerID)
		require.Equal(t, 10, change.Current)
		require.Equal(t, want, change.New)
		require.Equal(t, want, users["user-"+playerID].Achievements.Rank)
	}
}

func TestApplyGameRankingsAwardFirstOnly(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(8, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p3").WithStarCounts(2, 0, 0).Build(),
	}
	game := domaintest.NewGameBuilder().
		WithAwardRankTo(domain.AwardRankToFirst).
		WithPlayers(players...).
		Build()
	users := domaintest.UsersForPlayers(players...)

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	result := svc.ApplyGameRankings(game, users, lb.Entries)

	want := map[string]int{"p1": 3, "p2": 0, "p3": 0}
	for playerID, wantRank := range want {
		change, ok := rankChangeByPlayer(result, playerID)
		require.True(t, ok)
		require.Equal(t, wantRank, change.New)
	}
}

func TestApplyGameRankingsAfkClamp(t *testing.T) {
	t.Parallel()

	// The AFK player holds first place but still loses a point.
	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).AFK().Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(8, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p3").WithStarCounts(6, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p4").WithStarCounts(4, 0, 0).Build(),
	}
	game := domaintest.NewGameBuilder().WithPlayers(players...).Build()
	users := domaintest.UsersForPlayers(players...)
	users["user-p1"].Achievements.Rank = 10

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	result := svc.ApplyGameRankings(game, users, lb.Entries)

	change, ok := rankChangeByPlayer(result, "p1")
	require.True(t, ok)
	require.Equal(t, 10, change.Current)
	require.Equal(t, 9, change.New)
}

func TestApplyGameRankingsFilledAfkSlot(t *testing.T) {
	t.Parallel()

	// Position 3 of 4 would normally lose a point; a slot filler never
	// drops below zero, and a positive increase is boosted by half.
	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).FilledAfkSlot().Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(8, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p3").WithStarCounts(6, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p4").WithStarCounts(4, 0, 0).FilledAfkSlot().Build(),
	}
	game := domaintest.NewGameBuilder().WithPlayers(players...).Build()
	users := domaintest.UsersForPlayers(players...)

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	result := svc.ApplyGameRankings(game, users, lb.Entries)

	first, ok := rankChangeByPlayer(result, "p1")
	require.True(t, ok)
	require.Equal(t, 6, first.New) // round(4 * 1.5)

	last, ok := rankChangeByPlayer(result, "p4")
	require.True(t, ok)
	require.Equal(t, 0, last.New)
}

func TestApplyGameRankingsSpecialModeDoublesPositive(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(8, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p3").WithStarCounts(6, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p4").WithStarCounts(4, 0, 0).Build(),
	}
	game := domaintest.NewGameBuilder().
		WithType(domain.GameTypeSpecialDark).
		WithPlayers(players...).
		Build()
	users := domaintest.UsersForPlayers(players...)

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	result := svc.ApplyGameRankings(game, users, lb.Entries)

	// +4 doubles to +8, +1 doubles to +2, zero and negative untouched.
	want := map[string]int{"p1": 8, "p2": 2, "p3": 0, "p4": 0}
	for playerID, wantRank := range want {
		change, ok := rankChangeByPlayer(result, playerID)
		require.True(t, ok)
		require.Equal(t, wantRank, change.New)
	}
}

func TestApplyGameRankingsRewardMultiplier(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(8, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p3").WithStarCounts(6, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p4").WithStarCounts(4, 0, 0).Build(),
	}
	game := domaintest.NewGameBuilder().
		WithRankRewardMultiplier(2).
		WithPlayers(players...).
		Build()
	users := domaintest.UsersForPlayers(players...)
	users["user-p4"].Achievements.Rank = 5

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	result := svc.ApplyGameRankings(game, users, lb.Entries)

	// The multiplier applies to losses too: -1 becomes -2.
	want := map[string]int{"p1": 8, "p2": 2, "p3": 0, "p4": 3}
	for playerID, wantRank := range want {
		change, ok := rankChangeByPlayer(result, playerID)
		require.True(t, ok)
		require.Equal(t, wantRank, change.New, "player %s", playerID)
	}
}

func TestApplyGameRankingsRankNeverBelowZero(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(4, 0, 0).AFK().Build(),
	}
	game := domaintest.NewGameBuilder().WithPlayerLimit(2).WithPlayers(players...).Build()
	users := domaintest.UsersForPlayers(players...)

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")

	for i := 0; i < 3; i++ {
		svc.ApplyGameRankings(game, users, lb.Entries)
		require.Equal(t, 0, users["user-p2"].Achievements.Rank)
	}
}

func TestApplyGameRankingsSkipsDeletedUsers(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(4, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p3").WithStarCounts(2, 0, 0).WithoutUser().Build(),
	}
	game := domaintest.NewGameBuilder().WithPlayers(players...).Build()
	users := domaintest.UsersForPlayers(players...)
	users["user-p2"].Deleted = true

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	result := svc.ApplyGameRankings(game, users, lb.Entries)

	require.Len(t, result.Ranks, 1)
	require.Equal(t, "p1", result.Ranks[0].PlayerID)
	require.Equal(t, 0, users["user-p2"].Achievements.Rank)
}

func TestApplyGameRankingsUpdatesLevel(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(4, 0, 0).Build(),
	}
	game := domaintest.NewGameBuilder().
		WithType(domain.GameTypeStandardRT).
		WithPlayerLimit(2).
		WithPlayers(players...).
		Build()
	users := domaintest.UsersForPlayers(players...)
	users["user-p1"].Achievements.Rank = 13

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	svc.ApplyGameRankings(game, users, lb.Entries)

	// 13 + 2 = 15 rank points crosses the Lieutenant threshold.
	require.Equal(t, 15, users["user-p1"].Achievements.Rank)
	require.Equal(t, 3, users["user-p1"].Achievements.Level)
}

func TestApplyGameRankings1v1EloRating(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(4, 0, 0).Build(),
	}
	game := domaintest.NewGameBuilder().
		WithType(domain.GameType1v1RT).
		WithPlayerLimit(2).
		WithWinner("p1").
		WithPlayers(players...).
		Build()
	users := domaintest.UsersForPlayers(players...)
	users["user-p2"].Achievements.EloRating = intPtr(1400)

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")
	result := svc.ApplyGameRankings(game, users, lb.Entries)

	require.NotNil(t, result.EloRating)
	require.Equal(t, "p1", result.EloRating.Winner.PlayerID)
	require.Equal(t, "p2", result.EloRating.Loser.PlayerID)

	// Old ratings are reported as they stood before the update, with
	// the unrated winner defaulting to 1200.
	require.Equal(t, 1200, result.EloRating.Winner.OldRating)
	require.Equal(t, 1400, result.EloRating.Loser.OldRating)
	require.Equal(t, 1224, result.EloRating.Winner.NewRating)
	require.Equal(t, 1376, result.EloRating.Loser.NewRating)

	require.Equal(t, 1, users["user-p1"].Achievements.Victories1v1)
	require.Equal(t, 1, users["user-p2"].Achievements.Defeated1v1)
}

func TestApplyGameRankings1v1MissingWinnerPanics(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").WithStarCounts(10, 0, 0).Build(),
		domaintest.NewPlayerBuilder("p2").WithStarCounts(4, 0, 0).Build(),
	}
	game := domaintest.NewGameBuilder().
		WithType(domain.GameType1v1RT).
		WithPlayerLimit(2).
		WithPlayers(players...).
		Build()
	users := domaintest.UsersForPlayers(players...)

	svc := newService()
	lb := svc.ComputeLeaderboard(game, "")

	require.Panics(t, func() {
		svc.ApplyGameRankings(game, users, lb.Entries)
	})
}

func TestIncrementGameWinnerAchievements(t *testing.T) {
	t.Parallel()

	t.Run("victory count and credit", func(t *testing.T) {
		t.Parallel()

		winner := domaintest.NewPlayerBuilder("p1").Build()
		game := domaintest.NewGameBuilder().WithPlayers(winner).Build()
		users := domaintest.UsersForPlayers(winner)

		newService().IncrementGameWinnerAchievements(game, users, winner, true)

		user := users["user-p1"]
		require.Equal(t, 1, user.Achievements.Victories)
		require.Equal(t, 1, user.Credits)
	})

	t.Run("no credit when not awarding", func(t *testing.T) {
		t.Parallel()

		winner := domaintest.NewPlayerBuilder("p1").Build()
		game := domaintest.NewGameBuilder().WithPlayers(winner).Build()
		users := domaintest.UsersForPlayers(winner)

		newService().IncrementGameWinnerAchievements(game, users, winner, false)

		require.Equal(t, 0, users["user-p1"].Credits)
	})

	t.Run("no credit for 1v1", func(t *testing.T) {
		t.Parallel()

		winner := domaintest.NewPlayerBuilder("p1").Build()
		game := domaintest.NewGameBuilder().
			WithType(domain.GameType1v1RT).
			WithPlayerLimit(2).
			WithPlayers(winner).
			Build()
		users := domaintest.UsersForPlayers(winner)

		newService().IncrementGameWinnerAchievements(game, users, winner, true)

		require.Equal(t, 1, users["user-p1"].Achievements.Victories)
		require.Equal(t, 0, users["user-p1"].Credits)
	})

	t.Run("32 player badge", func(t *testing.T) {
		t.Parallel()

		winner := domaintest.NewPlayerBuilder("p1").Build()
		game := domaintest.NewGameBuilder().
			WithType(domain.GameType32PlayerRT).
			WithPlayerLimit(32).
			WithPlayers(winner).
			Build()
		users := domaintest.UsersForPlayers(winner)

		newService().IncrementGameWinnerAchievements(game, users, winner, true)

		require.Equal(t, 1, users["user-p1"].Achievements.Badges[badges.BadgeVictor32])
	})

	t.Run("special mode badge", func(t *testing.T) {
		t.Parallel()

		winner := domaintest.NewPlayerBuilder("p1").Build()
		game := domaintest.NewGameBuilder().
			WithType(domain.GameTypeSpecialDark).
			WithPlayers(winner).
			Build()
		users := domaintest.UsersForPlayers(winner)

		newService().IncrementGameWinnerAchievements(game, users, winner, true)

		require.Equal(t, 1, users["user-p1"].Achievements.Badges[badges.BadgeSpecialDark])
	})

	t.Run("deleted user is a no-op", func(t *testing.T) {
		t.Parallel()

		winner := domaintest.NewPlayerBuilder("p1").Build()
		game := domaintest.NewGameBuilder().WithPlayers(winner).Build()
		users := domaintest.UsersForPlayers(winner)
		users["user-p1"].Deleted = true

		require.NotPanics(t, func() {
			newService().IncrementGameWinnerAchievements(game, users, winner, true)
		})
		require.Equal(t, 0, users["user-p1"].Achievements.Victories)
	})
}

func TestMarkEstablishedPlayers(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").Build(),
		domaintest.NewPlayerBuilder("p2").AFK().Build(),
	}
	game := domaintest.NewGameBuilder().WithPlayers(players...).Build()
	users := domaintest.UsersForPlayers(players...)

	newService().MarkEstablishedPlayers(game, users)

	require.True(t, users["user-p1"].IsEstablishedPlayer)
	require.False(t, users["user-p2"].IsEstablishedPlayer)
}

func TestIncrementPlayersCompletedAchievement(t *testing.T) {
	t.Parallel()

	players := []*domain.Player{
		domaintest.NewPlayerBuilder("p1").Build(),
		domaintest.NewPlayerBuilder("p2").AFK().Build(),
	}
	game := domaintest.NewGameBuilder().WithPlayers(players...).Build()
	users := domaintest.UsersForPlayers(players...)

	newService().IncrementPlayersCompletedAchievement(game, users)

	require.Equal(t, 1, users["user-p1"].Achievements.Completed)
	require.Equal(t, 0, users["user-p2"].Achievements.Completed)
}

func intPtr(v int) *int {
	return &v
}
