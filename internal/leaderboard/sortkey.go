package leaderboard

import (
	"github.com/startide-game/engine/internal/domain"
)

// SortKey is an explicit leaderboard sort override requested by the
// display layer. The zero value means "no override".
type SortKey string

const (
	SortKeyStars              SortKey = "stars"
	SortKeyCarriers           SortKey = "carriers"
	SortKeyShips              SortKey = "ships"
	SortKeyEconomy            SortKey = "economy"
	SortKeyIndustry           SortKey = "industry"
	SortKeyScience            SortKey = "science"
	SortKeyNewShips           SortKey = "newShips"
	SortKeyWarpgates          SortKey = "warpgates"
	SortKeyStarSpecialists    SortKey = "starSpecialists"
	SortKeyCarrierSpecialists SortKey = "carrierSpecialists"
	SortKeyTotalSpecialists   SortKey = "totalSpecialists"
	SortKeyScanning           SortKey = "scanning"
	SortKeyHyperspace         SortKey = "hyperspace"
	SortKeyTerraforming       SortKey = "terraforming"
	SortKeyExperimentation    SortKey = "experimentation"
	SortKeyWeapons            SortKey = "weapons"
	SortKeyBanking            SortKey = "banking"
	SortKeyManufacturing      SortKey = "manufacturing"
	SortKeySpecialists        SortKey = "specialists"
)

// sortValue extracts the entry's value for the key. ok is false when
// the underlying data is absent (e.g. a research track the player has
// never stored); absent values rank below every real value.
type sortValue struct {
	value int
	ok    bool
}

func statValue(v int) sortValue {
	return sortValue{value: v, ok: true}
}

func researchValue(player *domain.Player, key domain.TechKey) sortValue {
	tech, ok := player.Research[key]
	if !ok {
		return sortValue{}
	}
	return sortValue{value: tech.Level, ok: true}
}

type sortKeySpec struct {
	// fullKey is the dotted path the display layer historically used to
	// identify the sorted column.
	fullKey string
	value   func(entry *domain.LeaderboardEntry) sortValue
}

var sortKeySpecs = map[SortKey]sortKeySpec{
	SortKeyStars: {"stats.totalStars", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalStars)
	}},
	SortKeyCarriers: {"stats.totalCarriers", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalCarriers)
	}},
	SortKeyShips: {"stats.totalShips", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalShips)
	}},
	SortKeyEconomy: {"stats.totalEconomy", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalEconomy)
	}},
	SortKeyIndustry: {"stats.totalIndustry", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalIndustry)
	}},
	SortKeyScience: {"stats.totalScience", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalScience)
	}},
	SortKeyNewShips: {"stats.newShips", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.NewShips)
	}},
	SortKeyWarpgates: {"stats.warpgates", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.Warpgates)
	}},
	SortKeyStarSpecialists: {"stats.totalStarSpecialists", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalStarSpecialists)
	}},
	SortKeyCarrierSpecialists: {"stats.totalCarrierSpecialists", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalCarrierSpecialists)
	}},
	SortKeyTotalSpecialists: {"stats.totalSpecialists", func(e *domain.LeaderboardEntry) sortValue {
		return statValue(e.Stats.TotalSpecialists)
	}},
	SortKeyScanning: {"player.research.scanning.level", func(e *domain.LeaderboardEntry) sortValue {
		return researchValue(e.Player, domain.TechScanning)
	}},
	SortKeyHyperspace: {"player.research.hyperspace.level", func(e *domain.LeaderboardEntry) sortValue {
		return researchValue(e.Player, domain.TechHyperspace)
	}},
	SortKeyTerraforming: {"player.research.terraforming.level", func(e *domain.LeaderboardEntry) sortValue {
		return researchValue(e.Player, domain.TechTerraforming)
	}},
	SortKeyExperimentation: {"player.research.experimentation.level", func(e *domain.LeaderboardEntry) sortValue {
		return researchValue(e.Player, domain.TechExperimentation)
	}},
	SortKeyWeapons: {"player.research.weapons.level", func(e *domain.LeaderboardEntry) sortValue {
		return researchValue(e.Player, domain.TechWeapons)
	}},
	SortKeyBanking: {"player.research.banking.level", func(e *domain.LeaderboardEntry) sortValue {
		return researchValue(e.Player, domain.TechBanking)
	}},
	SortKeyManufacturing: {"player.research.manufacturing.level", func(e *domain.LeaderboardEntry) sortValue {
		return researchValue(e.Player, domain.TechManufacturing)
	}},
	SortKeySpecialists: {"player.research.specialists.level", func(e *domain.LeaderboardEntry) sortValue {
		return researchValue(e.Player, domain.TechSpecialists)
	}},
}

// Valid reports whether the key names a known sortable column.
func (k SortKey) Valid() bool {
	_, ok := sortKeySpecs[k]
	return ok
}

// FullKey is the dotted path for the key, or empty for unknown keys.
func (k SortKey) FullKey() string {
	spec, ok := sortKeySpecs[k]
	if !ok {
		return ""
	}
	return spec.fullKey
}

// compare orders two entries by the key, descending, with absent values
// last. Returns 0 for ties and for unknown keys.
func (k SortKey) compare(a, b *domain.LeaderboardEntry) int {
	spec, ok := sortKeySpecs[k]
	if !ok {
		return 0
	}

	av, bv := spec.value(a), spec.value(b)
	if av.ok != bv.ok {
		if av.ok {
			return -1
		}
		return 1
	}
	return compareDesc(av.value, bv.value)
}

func compareDesc(a, b int) int {
	if a > b {
		return -1
	}
	if a < b {
		return 1
	}
	return 0
}
