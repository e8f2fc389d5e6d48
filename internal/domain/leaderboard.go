package domain

// LeaderboardEntry is one row of the computed ranking. Entries are
// produced fresh per call; once sorted, slice order is the ranking.
type LeaderboardEntry struct {
	Player          *Player
	Stats           PlayerStats
	IsKingOfTheHill bool
}

type PlayerLeaderboard struct {
	Entries []LeaderboardEntry

	// FullKey is the dotted path of the explicit sort key, if one was
	// supplied. Kept for API compatibility with the leaderboard display.
	FullKey string
}

type TeamLeaderboardEntry struct {
	Team      *Team
	StarCount int
}

type TeamLeaderboard struct {
	Entries []TeamLeaderboardEntry
}

// RankChange is the per-player audit record of a rank adjustment.
type RankChange struct {
	PlayerID string
	Current  int
	New      int
}

type EloRatingChange struct {
	PlayerID  string
	OldRating int
	NewRating int
}

type EloRatingChangeResult struct {
	Winner EloRatingChange
	Loser  EloRatingChange
}

// GameRankingResult reports every achievement mutation made while
// finishing a game, for downstream display and persistence.
type GameRankingResult struct {
	Ranks     []RankChange
	EloRating *EloRatingChangeResult
}
