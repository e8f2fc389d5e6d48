package domain

type User struct {
	ID                  string
	Username            string
	Credits             int
	IsEstablishedPlayer bool
	Deleted             bool

	Achievements UserAchievements
}

type UserAchievements struct {
	// Rank never goes below 0.
	Rank  int
	Level int

	Victories    int
	Victories1v1 int
	Defeated1v1  int
	Completed    int

	// EloRating is only set once the user has played a ranked 1v1.
	// A nil rating is treated as DefaultEloRating.
	EloRating *int

	Badges map[string]int
}

// DefaultEloRating is the rating assumed for users with no stored rating.
const DefaultEloRating = 1200

// EloRating returns the stored rating, or DefaultEloRating when unset.
func (u *User) EloRating() int {
	if u == nil || u.Achievements.EloRating == nil {
		return DefaultEloRating
	}
	return *u.Achievements.EloRating
}

// AwardBadge increments the user's counter for the named badge.
func (u *User) AwardBadge(badge string) {
	if u.Achievements.Badges == nil {
		u.Achievements.Badges = map[string]int{}
	}
	u.Achievements.Badges[badge]++
}
