package badges

import (
	"github.com/startide-game/engine/internal/domain"
)

const (
	BadgeVictor32        = "victor32"
	BadgeSpecialDark     = "special_dark"
	BadgeSpecialFog      = "special_fog"
	BadgeSpecialUltra    = "special_ultra_dark"
	BadgeSpecialOrbit    = "special_orbital"
	BadgeSpecialHome     = "special_homeStar"
	BadgeSpecialAnon     = "special_anonymous"
	BadgeSpecialKOTH     = "special_kingOfTheHill"
	BadgeSpecialTiny     = "special_tinyGalaxy"
	BadgeSpecialFreeze   = "special_freeForAll"
	BadgeSpecialArcade   = "special_arcade"
	BadgeSpecialFallback = "special_victor"
)

var specialBadgeByType = map[domain.GameType]string{
	domain.GameTypeSpecialDark:   BadgeSpecialDark,
	domain.GameTypeSpecialFog:    BadgeSpecialFog,
	domain.GameTypeSpecialUltra:  BadgeSpecialUltra,
	domain.GameTypeSpecialOrbit:  BadgeSpecialOrbit,
	domain.GameTypeSpecialHome:   BadgeSpecialHome,
	domain.GameTypeSpecialAnon:   BadgeSpecialAnon,
	domain.GameTypeSpecialKOTH:   BadgeSpecialKOTH,
	domain.GameTypeSpecialTiny:   BadgeSpecialTiny,
	domain.GameTypeSpecialFreeze: BadgeSpecialFreeze,
	domain.GameTypeSpecialArcade: BadgeSpecialArcade,
}

// Awarder grants badges by bumping counters on the user's achievements.
// Notification delivery happens elsewhere; this is fire-and-forget.
type Awarder struct{}

func NewAwarder() *Awarder {
	return &Awarder{}
}

func (a *Awarder) AwardVictor32PlayerGame(user *domain.User) {
	if user == nil {
		return
	}
	user.AwardBadge(BadgeVictor32)
}

func (a *Awarder) AwardVictorySpecialGame(user *domain.User, game *domain.Game) {
	if user == nil {
		return
	}

	badge, ok := specialBadgeByType[game.Settings.General.Type]
	if !ok {
		badge = BadgeSpecialFallback
	}
	user.AwardBadge(badge)
}
