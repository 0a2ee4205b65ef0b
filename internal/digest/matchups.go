package digest

import (
	"log"
	"math"

	"github.com/dylanscardvault/sleeper-feed/internal/league"
)

// Pair is two matchup rows sharing a matchup id, in the order the rows
// appeared in the input. Placeholder marks a singleton group whose opponent
// slot is synthetic (rendered as "TBD").
type Pair struct {
	MatchupID   *int
	A           league.MatchupRow
	B           league.MatchupRow
	Placeholder bool
}

// Rows with a null matchup id share this bucket so they cannot merge with a
// legitimate pairing. The sentinel sits outside any plausible id range.
const nullMatchupKey = math.MinInt

// GroupPairs groups flat matchup rows into opposing pairs by matchup id,
// preserving first-seen order of ids. A two-row group becomes a pair in
// stored order; a singleton is padded with a TBD placeholder; groups larger
// than two keep their first two rows and log the discrepancy.
func GroupPairs(rows []league.MatchupRow) []Pair {
	byID := make(map[int][]league.MatchupRow)
	order := make([]int, 0, len(rows)/2+1)
	for _, row := range rows {
		key := nullMatchupKey
		if row.MatchupID != nil {
			key = *row.MatchupID
		}
		if _, seen := byID[key]; !seen {
			order = append(order, key)
		}
		byID[key] = append(byID[key], row)
	}

	pairs := make([]Pair, 0, len(order))
	for _, key := range order {
		group := byID[key]
		if len(group) > 2 {
			if key == nullMatchupKey {
				log.Printf("%d rows with no matchup id, keeping first two", len(group))
			} else {
				log.Printf("matchup %d has %d rows, keeping first two", key, len(group))
			}
		}
		p := Pair{A: group[0]}
		if key != nullMatchupKey {
			id := key
			p.MatchupID = &id
		}
		if len(group) >= 2 {
			p.B = group[1]
		} else {
			p.Placeholder = true
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// Margin classifications for a pairing where both sides have a score.
const (
	MarginClose    = "close"
	MarginModerate = "moderate"
	MarginDecisive = "decisive"
)

// ClassifyMargin buckets an absolute score difference. A difference of
// exactly 5 still counts as close; anything above 25 is decisive.
func ClassifyMargin(diff float64) string {
	switch {
	case diff <= 5:
		return MarginClose
	case diff > 25:
		return MarginDecisive
	default:
		return MarginModerate
	}
}
