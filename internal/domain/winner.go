package domain

import "fmt"

type GameWinnerKind int

const (
	GameWinnerKindPlayer GameWinnerKind = iota
	GameWinnerKindTeam
)

func (k GameWinnerKind) String() string {
	switch k {
	case GameWinnerKindPlayer:
		return "player"
	case GameWinnerKindTeam:
		return "team"
	default:
		return fmt.Sprintf("<invalid winner kind>(%d)", int(k))
	}
}

// GameWinner is a tagged union: exactly one of Player and Team is set,
// according to Kind.
type GameWinner struct {
	Kind   GameWinnerKind
	Player *Player
	Team   *Team
}

func PlayerWinner(player *Player) *GameWinner {
	if player == nil {
		panic("domain: player winner is nil")
	}
	return &GameWinner{Kind: GameWinnerKindPlayer, Player: player}
}

func TeamWinner(team *Team) *GameWinner {
	if team == nil {
		panic("domain: team winner is nil")
	}
	return &GameWinner{Kind: GameWinnerKindTeam, Team: team}
}
