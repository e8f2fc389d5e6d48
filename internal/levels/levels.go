package levels

// Level maps accumulated rank points to a displayed user level.
type Level struct {
	ID         int
	Name       string
	RankPoints int
}

// levelTable must stay sorted ascending by RankPoints.
var levelTable = []Level{
	{ID: 1, Name: "Cadet", RankPoints: 0},
	{ID: 2, Name: "Ensign", RankPoints: 5},
	{ID: 3, Name: "Lieutenant", RankPoints: 15},
	{ID: 4, Name: "Commander", RankPoints: 30},
	{ID: 5, Name: "Captain", RankPoints: 60},
	{ID: 6, Name: "Commodore", RankPoints: 100},
	{ID: 7, Name: "Rear Admiral", RankPoints: 160},
	{ID: 8, Name: "Vice Admiral", RankPoints: 250},
	{ID: 9, Name: "Admiral", RankPoints: 400},
	{ID: 10, Name: "Fleet Admiral", RankPoints: 640},
	{ID: 11, Name: "Grand Admiral", RankPoints: 1000},
}

type Lookup struct{}

func NewLookup() *Lookup {
	return &Lookup{}
}

// ByRankPoints returns the highest level whose threshold the rank
// reaches. Negative ranks resolve to the first level.
func (l *Lookup) ByRankPoints(rank int) Level {
	level := levelTable[0]
	for _, candidate := range levelTable[1:] {
		if rank < candidate.RankPoints {
			break
		}
		level = candidate
	}
	return level
}
