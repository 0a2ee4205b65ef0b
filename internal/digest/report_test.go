package digest

import (
	"strings"
	"testing"

	"github.com/dylanscardvault/sleeper-feed/internal/league"
)

// ---------------------------------------------------------------------------
// BuildReport
// ---------------------------------------------------------------------------

// wolvesVsSam is the canonical two-roster snapshot: roster 1 carries a custom
// team name, roster 2 falls back to its owner's display name, and the only
// matchup finishes 100.0 to 95.0.
func wolvesVsSam() *league.Snapshot {
	return &league.Snapshot{
		League: league.League{Name: "Test League"},
		State:  league.State{Week: 8},
		Users: []league.User{
			{UserID: "u2", DisplayName: "Sam"},
		},
		Rosters: []league.Roster{
			{RosterID: 1, Metadata: map[string]any{"team_name": "Wolves"}},
			{RosterID: 2, OwnerID: "u2"},
		},
		Matchups: league.MatchupBuckets{
			Current: []league.MatchupRow{
				row(1, intPtr(1), 100.0),
				row(2, intPtr(1), 95.0),
			},
		},
	}
}

func TestBuildReport_WolvesSamScenario(t *testing.T) {
	text := BuildReport(wolvesVsSam(), nil, Options{})

	if !strings.Contains(text, "📅 Week 8 Preview + Waivers") {
		t.Errorf("missing headline:\n%s", text)
	}
	// Δ is exactly 5.0 which still classifies as close.
	want := "• Wolves vs Sam — Wolves ahead, close (Δ 5.0)."
	if !strings.Contains(text, want) {
		t.Errorf("missing matchup line %q:\n%s", want, text)
	}
	if !strings.Contains(text, "— Test League newsfeed.") {
		t.Errorf("missing closer:\n%s", text)
	}
}

// An empty matchups section omits "Key Matchups" entirely; the headline and
// closer still render.
func TestBuildReport_EmptyMatchupsOmitsSection(t *testing.T) {
	snap := wolvesVsSam()
	snap.Matchups = league.MatchupBuckets{}
	text := BuildReport(snap, nil, Options{})

	if !strings.Contains(text, "📅 Week 8 Preview + Waivers") {
		t.Errorf("missing headline:\n%s", text)
	}
	if strings.Contains(text, "Key Matchups") {
		t.Errorf("empty matchups still rendered a section:\n%s", text)
	}
}

// A tied in-progress score credits the lead to the second row's team.
func TestBuildReport_TiedMatchupLeader(t *testing.T) {
	snap := wolvesVsSam()
	snap.Matchups.Current = []league.MatchupRow{
		row(1, intPtr(1), 100.0),
		row(2, intPtr(1), 100.0),
	}
	text := BuildReport(snap, nil, Options{})
	want := "• Wolves vs Sam — Sam ahead, close (Δ 0.0)."
	if !strings.Contains(text, want) {
		t.Errorf("missing tied matchup line %q:\n%s", want, text)
	}
}

func TestBuildReport_Idempotent(t *testing.T) {
	a := BuildReport(wolvesVsSam(), nil, Options{})
	b := BuildReport(wolvesVsSam(), nil, Options{})
	if a != b {
		t.Error("identical snapshots rendered different reports")
	}
}

// Current week takes priority; the next-week bucket is only used when the
// current one is empty.
func TestBuildReport_FallsBackToNextWeek(t *testing.T) {
	snap := wolvesVsSam()
	snap.Matchups = league.MatchupBuckets{
		Next: []league.MatchupRow{
			{RosterID: 1, MatchupID: intPtr(1)},
			{RosterID: 2, MatchupID: intPtr(1)},
		},
	}
	text := BuildReport(snap, nil, Options{})
	if !strings.Contains(text, "• Wolves vs Sam — buckle up.") {
		t.Errorf("scoreless upcoming pair not rendered:\n%s", text)
	}
}

func TestBuildReport_MatchupCap(t *testing.T) {
	snap := wolvesVsSam()
	snap.Matchups.Current = nil
	for i := 0; i < 5; i++ {
		id := i + 1
		snap.Matchups.Current = append(snap.Matchups.Current,
			row(i*2+1, intPtr(id), 90),
			row(i*2+2, intPtr(id), 80),
		)
	}
	text := BuildReport(snap, nil, Options{})
	if got := strings.Count(text, " vs "); got != 3 {
		t.Errorf("matchup bullets = %d, want 3 (default cap)", got)
	}
}

func TestBuildReport_TrendingSections(t *testing.T) {
	snap := wolvesVsSam()
	snap.Trending = league.Trending{
		Add:  []league.TrendingPlayer{{PlayerID: "1234", Count: 42}},
		Drop: []league.TrendingPlayer{{PlayerID: "5678"}},
	}
	players := map[string]string{"1234": "Jordan Reed TE/WAS"}
	text := BuildReport(snap, players, Options{})

	if !strings.Contains(text, "🛒 Waiver Adds:\n• Jordan Reed TE/WAS (+42)") {
		t.Errorf("missing waiver adds:\n%s", text)
	}
	// Unlabeled drop falls back to the raw player id, without a count.
	if !strings.Contains(text, "📉 Trending Drops:\n• 5678") {
		t.Errorf("missing trending drops:\n%s", text)
	}
}

func TestBuildReport_StandingsSection(t *testing.T) {
	snap := wolvesVsSam()
	snap.Rosters[0].Settings = map[string]any{"wins": float64(5), "losses": float64(2), "fpts": float64(823), "fpts_decimal": float64(50)}
	snap.Rosters[1].Settings = map[string]any{"wins": float64(6), "losses": float64(1), "fpts": float64(700)}
	text := BuildReport(snap, nil, Options{})

	idx1 := strings.Index(text, "• 1. Sam (6-1) 700.0 PF")
	idx2 := strings.Index(text, "• 2. Wolves (5-2) 823.5 PF")
	if idx1 < 0 || idx2 < 0 || idx1 > idx2 {
		t.Errorf("standings missing or out of order:\n%s", text)
	}
}

func TestBuildReport_RecapSection(t *testing.T) {
	snap := wolvesVsSam()
	snap.Matchups.Recap = []league.MatchupRow{
		row(2, intPtr(1), 131.4),
		row(1, intPtr(1), 99.9),
	}
	text := BuildReport(snap, nil, Options{})
	if !strings.Contains(text, "🔁 Last Week Recap:\n• Sam def. Wolves 131.4-99.9.") {
		t.Errorf("missing recap line:\n%s", text)
	}
}

func TestBuildReport_RecapTie(t *testing.T) {
	snap := wolvesVsSam()
	snap.Matchups.Current = nil
	snap.Matchups.Recap = []league.MatchupRow{
		row(1, intPtr(1), 100),
		row(2, intPtr(1), 100),
	}
	text := BuildReport(snap, nil, Options{})
	if !strings.Contains(text, "• Wolves and Sam tied at 100.0.") {
		t.Errorf("missing tie line:\n%s", text)
	}
}

func TestBuildReport_CloserFallsBackToGenericName(t *testing.T) {
	snap := &league.Snapshot{}
	text := BuildReport(snap, nil, Options{})
	if !strings.Contains(text, "— Your League newsfeed.") {
		t.Errorf("missing generic closer:\n%s", text)
	}
	if !strings.Contains(text, "📅 Week ? Preview + Waivers") {
		t.Errorf("missing unknown-week headline:\n%s", text)
	}
}
