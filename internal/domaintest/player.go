package domaintest

import (
	"fmt"
	"time"

	"github.com/startide-game/engine/internal/domain"
)

type playerBuilder struct {
	player *domain.Player
}

func (pb *playerBuilder) WithUserID(userID string) *playerBuilder {
	pb.player.UserID = &userID
	return pb
}

func (pb *playerBuilder) WithoutUser() *playerBuilder {
	pb.player.UserID = nil
	return pb
}

func (pb *playerBuilder) WithTeam(teamID string) *playerBuilder {
	pb.player.TeamID = &teamID
	return pb
}

func (pb *playerBuilder) Defeated(date time.Time) *playerBuilder {
	pb.player.Defeated = true
	pb.player.DefeatedDate = &date
	return pb
}

func (pb *playerBuilder) AFK() *playerBuilder {
	pb.player.AFK = true
	return pb
}

func (pb *playerBuilder) FilledAfkSlot() *playerBuilder {
	pb.player.HasFilledAfkSlot = true
	return pb
}

func (pb *playerBuilder) ReadyToQuit() *playerBuilder {
	pb.player.ReadyToQuit = true
	return pb
}

func (pb *playerBuilder) WithMissedTurns(turns int) *playerBuilder {
	pb.player.MissedTurns = turns
	return pb
}

func (pb *playerBuilder) WithResearch(key domain.TechKey, level int) *playerBuilder {
	if pb.player.Research == nil {
		pb.player.Research = map[domain.TechKey]domain.PlayerTechnology{}
	}
	pb.player.Research[key] = domain.PlayerTechnology{Level: level}
	return pb
}

// WithStats sets the cached aggregate so tests can rank players without
// building a galaxy.
func (pb *playerBuilder) WithStats(stats domain.PlayerStats) *playerBuilder {
	pb.player.Stats = &stats
	return pb
}

func (pb *playerBuilder) WithStarCounts(totalStars, totalShips, totalCarriers int) *playerBuilder {
	if pb.player.Stats == nil {
		pb.player.Stats = &domain.PlayerStats{}
	}
	pb.player.Stats.TotalStars = totalStars
	pb.player.Stats.TotalShips = totalShips
	pb.player.Stats.TotalCarriers = totalCarriers
	return pb
}

func (pb *playerBuilder) Build() *domain.Player {
	return pb.player
}

// NewPlayerBuilder returns an active human player with empty cached
// stats and a user reference derived from the player ID.
func NewPlayerBuilder(id string) *playerBuilder {
	userID := fmt.Sprintf("user-%s", id)
	return &playerBuilder{
		player: &domain.Player{
			ID:     id,
			Alias:  fmt.Sprintf("Player %s", id),
			UserID: &userID,
			Stats:  &domain.PlayerStats{},
		},
	}
}
