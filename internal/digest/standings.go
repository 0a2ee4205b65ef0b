package digest

import (
	"sort"

	"github.com/dylanscardvault/sleeper-feed/internal/league"
)

// StandingsRow is one roster's record line, built from the numeric fields in
// the roster settings Sleeper maintains per league.
type StandingsRow struct {
	Rank      int     `json:"rank"`
	RosterID  int     `json:"roster_id"`
	Name      string  `json:"name"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Ties      int     `json:"ties"`
	PointsFor float64 `json:"points_for"`
}

// Standings ranks rosters by wins, then points for, then name. Rank is
// assigned after sorting.
func Standings(rosters []league.Roster, names league.NameIndex) []StandingsRow {
	rows := make([]StandingsRow, 0, len(rosters))
	for _, r := range rosters {
		id := int(r.RosterID)
		rows = append(rows, StandingsRow{
			RosterID:  id,
			Name:      names.Name(id),
			Wins:      league.IntField(r.Settings, "wins"),
			Losses:    league.IntField(r.Settings, "losses"),
			Ties:      league.IntField(r.Settings, "ties"),
			PointsFor: league.NumberField(r.Settings, "fpts") + league.NumberField(r.Settings, "fpts_decimal")/100,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		if rows[i].PointsFor != rows[j].PointsFor {
			return rows[i].PointsFor > rows[j].PointsFor
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
