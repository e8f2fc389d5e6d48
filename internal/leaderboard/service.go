package leaderboard

import (
	"github.com/startide-game/engine/internal/domain"
	"github.com/startide-game/engine/internal/levels"
)

// GameTypeClassifier answers mode/type questions about a game.
type GameTypeClassifier interface {
	IsKingOfTheHillMode(game *domain.Game) bool
	IsConquestMode(game *domain.Game) bool
	IsTeamConquestMode(game *domain.Game) bool
	IsSpecialGameMode(game *domain.Game) bool
	Is1v1Game(game *domain.Game) bool
	Is32PlayerGame(game *domain.Game) bool
}

// PlayerLookup resolves players and teams within a game snapshot.
type PlayerLookup interface {
	ByID(game *domain.Game, playerID string) *domain.Player
	KingOfTheHillPlayer(game *domain.Game) *domain.Player
	TeamOf(game *domain.Game, playerID string) *domain.Team
}

// StatsProvider returns a player's aggregate stats, recomputing when no
// cached value is present.
type StatsProvider interface {
	Stats(game *domain.Game, player *domain.Player) domain.PlayerStats
}

// AfkClassifier reports whether a player slot is effectively run by the
// AI.
type AfkClassifier interface {
	IsAIControlled(game *domain.Game, player *domain.Player, includePseudoAfk bool) bool
}

// LevelLookup resolves rank points to a user level.
type LevelLookup interface {
	ByRankPoints(rank int) levels.Level
}

// RatingMath performs the Elo update for a ranked 1v1, mutating the
// users' stored ratings in place.
type RatingMath interface {
	Recalculate(winner, loser *domain.User, ranked bool)
}

// BadgeAwarder delivers victory badges. Fire-and-forget.
type BadgeAwarder interface {
	AwardVictor32PlayerGame(user *domain.User)
	AwardVictorySpecialGame(user *domain.User, game *domain.Game)
}

// Service computes leaderboards, decides game outcomes and converts
// placements into rank, level and rating adjustments. All methods are
// pure, synchronous computations over the snapshot they are handed;
// callers serialize evaluation per game.
type Service struct {
	gameTypes GameTypeClassifier
	players   PlayerLookup
	stats     StatsProvider
	afk       AfkClassifier
	levels    LevelLookup
	rating    RatingMath
	badges    BadgeAwarder
}

func NewService(
	gameTypes GameTypeClassifier,
	players PlayerLookup,
	stats StatsProvider,
	afk AfkClassifier,
	levels LevelLookup,
	rating RatingMath,
	badges BadgeAwarder,
) *Service {
	return &Service{
		gameTypes: gameTypes,
		players:   players,
		stats:     stats,
		afk:       afk,
		levels:    levels,
		rating:    rating,
		badges:    badges,
	}
}
