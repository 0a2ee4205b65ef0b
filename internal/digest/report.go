package digest

import (
	"fmt"
	"math"
	"strings"

	"github.com/dylanscardvault/sleeper-feed/internal/league"
)

// Options controls section caps in the rendered report. Zero values fall
// back to the defaults.
type Options struct {
	MatchupCap  int
	TrendingCap int
}

const (
	defaultMatchupCap  = 3
	defaultTrendingCap = 6
)

func (o Options) withDefaults() Options {
	if o.MatchupCap <= 0 {
		o.MatchupCap = defaultMatchupCap
	}
	if o.TrendingCap <= 0 {
		o.TrendingCap = defaultTrendingCap
	}
	return o
}

// BuildReport renders the text digest for one snapshot: headline, key
// matchups, waiver trends, standings, last week's results, and a closer.
// Sections with nothing to say are omitted entirely. The output depends only
// on the inputs, so identical snapshots render byte-identical reports.
func BuildReport(snap *league.Snapshot, players map[string]string, opts Options) string {
	opts = opts.withDefaults()
	names := league.BuildNameIndex(snap.Users, snap.Rosters)

	lines := []string{headline(int(snap.State.Week))}

	// Preview the current week if it has matchups, otherwise look ahead.
	pairs := GroupPairs(snap.Matchups.Current)
	if len(pairs) == 0 {
		pairs = GroupPairs(snap.Matchups.Next)
	}
	if len(pairs) > 0 {
		if len(pairs) > opts.MatchupCap {
			pairs = pairs[:opts.MatchupCap]
		}
		lines = append(lines, "🔥 Key Matchups:")
		for _, p := range pairs {
			lines = append(lines, "• "+matchupLine(p, names))
		}
	}

	if adds := TrendingLabels(snap.Trending.Add, players, opts.TrendingCap); len(adds) > 0 {
		lines = append(lines, "🛒 Waiver Adds:", "• "+strings.Join(adds, "; "))
	}
	if drops := TrendingLabels(snap.Trending.Drop, players, opts.TrendingCap); len(drops) > 0 {
		lines = append(lines, "📉 Trending Drops:", "• "+strings.Join(drops, "; "))
	}

	if rows := Standings(snap.Rosters, names); len(rows) > 0 {
		lines = append(lines, "🏆 Standings:")
		for _, row := range rows {
			lines = append(lines, "• "+standingsLine(row))
		}
	}

	if recap := GroupPairs(snap.Matchups.Recap); len(recap) > 0 {
		if len(recap) > opts.MatchupCap {
			recap = recap[:opts.MatchupCap]
		}
		lines = append(lines, "🔁 Last Week Recap:")
		for _, p := range recap {
			lines = append(lines, "• "+recapLine(p, names))
		}
	}

	lines = append(lines, fmt.Sprintf("— %s newsfeed. Reply with ‘more’ for deeper stats.", snap.League.DisplayName()))
	return strings.Join(lines, "\n")
}

func headline(week int) string {
	if week <= 0 {
		return "📅 Week ? Preview + Waivers"
	}
	return fmt.Sprintf("📅 Week %d Preview + Waivers", week)
}

func matchupLine(p Pair, names league.NameIndex) string {
	aName := names.Name(int(p.A.RosterID))
	bName := "TBD"
	if !p.Placeholder {
		bName = names.Name(int(p.B.RosterID))
	}
	if !p.Placeholder && p.A.Points.Valid && p.B.Points.Valid {
		diff := math.Abs(p.A.Points.Float64 - p.B.Points.Float64)
		// Ties credit the second row's team.
		leader := bName
		if p.A.Points.Float64 > p.B.Points.Float64 {
			leader = aName
		}
		return fmt.Sprintf("%s vs %s — %s ahead, %s (Δ %.1f).", aName, bName, leader, ClassifyMargin(diff), diff)
	}
	return fmt.Sprintf("%s vs %s — buckle up.", aName, bName)
}

func recapLine(p Pair, names league.NameIndex) string {
	aName := names.Name(int(p.A.RosterID))
	bName := "TBD"
	if !p.Placeholder {
		bName = names.Name(int(p.B.RosterID))
	}
	if p.Placeholder || !p.A.Points.Valid || !p.B.Points.Valid {
		return fmt.Sprintf("%s vs %s — no result.", aName, bName)
	}
	a, b := p.A.Points.Float64, p.B.Points.Float64
	if a == b {
		return fmt.Sprintf("%s and %s tied at %.1f.", aName, bName, a)
	}
	if b > a {
		aName, bName = bName, aName
		a, b = b, a
	}
	return fmt.Sprintf("%s def. %s %.1f-%.1f.", aName, bName, a, b)
}

func standingsLine(row StandingsRow) string {
	record := fmt.Sprintf("%d-%d", row.Wins, row.Losses)
	if row.Ties > 0 {
		record += fmt.Sprintf("-%d", row.Ties)
	}
	return fmt.Sprintf("%d. %s (%s) %.1f PF", row.Rank, row.Name, record, row.PointsFor)
}
