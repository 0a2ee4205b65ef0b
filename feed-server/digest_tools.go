package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dylanscardvault/sleeper-feed/internal/digest"
	"github.com/dylanscardvault/sleeper-feed/internal/league"
	"github.com/dylanscardvault/sleeper-feed/internal/store"
)

// DigestArgs are the input arguments for the league_digest tool.
type DigestArgs struct {
	Matchups int `json:"matchups,omitempty" jsonschema:"Max matchup bullets per section (default 3)"`
	Trending int `json:"trending,omitempty" jsonschema:"Max trending entries per section (default 6)"`
}

// MatchupsArgs are the input arguments for the matchups tool.
type MatchupsArgs struct {
	Bucket string `json:"bucket,omitempty" jsonschema:"Matchup bucket: current|next|recap (default current)"`
}

// StandingsArgs are the input arguments for the standings tool.
type StandingsArgs struct{}

// TrendingArgs are the input arguments for the trending tool.
type TrendingArgs struct {
	Cap int `json:"cap,omitempty" jsonschema:"Max entries per list (default 6)"`
}

// TeamLookupArgs are the input arguments for the team_lookup tool.
type TeamLookupArgs struct {
	RosterID int `json:"roster_id" jsonschema:"Roster id (required)"`
}

// PairSide is one roster's side of a paired matchup.
type PairSide struct {
	RosterID int     `json:"roster_id"`
	Name     string  `json:"name"`
	Points   float64 `json:"points"`
	HasScore bool    `json:"has_score"`
}

// PairSummary is one paired matchup with resolved names.
type PairSummary struct {
	MatchupID   *int     `json:"matchup_id"`
	TeamA       PairSide `json:"team_a"`
	TeamB       PairSide `json:"team_b"`
	TBDOpponent bool     `json:"tbd_opponent"`
	Margin      string   `json:"margin,omitempty"`
	Delta       float64  `json:"delta"`
}

// MatchupsOutput is the output of the matchups tool.
type MatchupsOutput struct {
	Bucket         string        `json:"bucket"`
	GeneratedAtUTC string        `json:"generated_at_utc"`
	Matchups       []PairSummary `json:"matchups"`
}

// StandingsOutput is the output of the standings tool.
type StandingsOutput struct {
	GeneratedAtUTC string                `json:"generated_at_utc"`
	Rows           []digest.StandingsRow `json:"rows"`
}

// TrendingOutput is the output of the trending tool.
type TrendingOutput struct {
	GeneratedAtUTC string   `json:"generated_at_utc"`
	Adds           []string `json:"adds"`
	Drops          []string `json:"drops"`
}

// TeamLookupOutput is the output of the team_lookup tool.
type TeamLookupOutput struct {
	RosterID int    `json:"roster_id"`
	Name     string `json:"name"`
}

func loadSnapshot(cfg ServerConfig) (*league.Snapshot, *store.Store, error) {
	st := store.New(cfg.DataRoot)
	snap, err := league.LoadSnapshot(st, cfg.SnapshotRel)
	if err != nil {
		return nil, nil, err
	}
	return snap, st, nil
}

func buildDigestText(cfg ServerConfig, args DigestArgs) (string, error) {
	snap, st, err := loadSnapshot(cfg)
	if err != nil {
		return "", err
	}
	opts := digest.Options{
		MatchupCap:  cfg.Caps.MatchupCap,
		TrendingCap: cfg.Caps.TrendingCap,
	}
	if args.Matchups > 0 {
		opts.MatchupCap = args.Matchups
	}
	if args.Trending > 0 {
		opts.TrendingCap = args.Trending
	}
	return digest.BuildReport(snap, league.LoadPlayers(st, cfg.PlayersRel), opts), nil
}

func normalizeBucket(b string) string {
	switch strings.TrimSpace(strings.ToLower(b)) {
	case "", "current":
		return "current"
	case "next", "upcoming":
		return "next"
	case "recap", "last", "previous":
		return "recap"
	default:
		return ""
	}
}

func buildMatchupsOutput(cfg ServerConfig, args MatchupsArgs) (MatchupsOutput, error) {
	bucket := normalizeBucket(args.Bucket)
	if bucket == "" {
		return MatchupsOutput{}, fmt.Errorf("unknown bucket: %s", args.Bucket)
	}
	snap, _, err := loadSnapshot(cfg)
	if err != nil {
		return MatchupsOutput{}, err
	}

	rows := snap.Matchups.Current
	switch bucket {
	case "next":
		rows = snap.Matchups.Next
	case "recap":
		rows = snap.Matchups.Recap
	}

	names := league.BuildNameIndex(snap.Users, snap.Rosters)
	pairs := digest.GroupPairs(rows)

	out := MatchupsOutput{
		Bucket:         bucket,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Matchups:       make([]PairSummary, 0, len(pairs)),
	}
	for _, p := range pairs {
		ps := PairSummary{
			MatchupID: p.MatchupID,
			TeamA: PairSide{
				RosterID: int(p.A.RosterID),
				Name:     names.Name(int(p.A.RosterID)),
				Points:   p.A.Points.Float64,
				HasScore: p.A.Points.Valid,
			},
			TBDOpponent: p.Placeholder,
		}
		if p.Placeholder {
			ps.TeamB = PairSide{Name: "TBD"}
		} else {
			ps.TeamB = PairSide{
				RosterID: int(p.B.RosterID),
				Name:     names.Name(int(p.B.RosterID)),
				Points:   p.B.Points.Float64,
				HasScore: p.B.Points.Valid,
			}
		}
		if ps.TeamA.HasScore && ps.TeamB.HasScore {
			ps.Delta = math.Abs(ps.TeamA.Points - ps.TeamB.Points)
			ps.Margin = digest.ClassifyMargin(ps.Delta)
		}
		out.Matchups = append(out.Matchups, ps)
	}
	return out, nil
}

func buildStandingsOutput(cfg ServerConfig) (StandingsOutput, error) {
	snap, _, err := loadSnapshot(cfg)
	if err != nil {
		return StandingsOutput{}, err
	}
	names := league.BuildNameIndex(snap.Users, snap.Rosters)
	return StandingsOutput{
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Rows:           digest.Standings(snap.Rosters, names),
	}, nil
}

func buildTrendingOutput(cfg ServerConfig, args TrendingArgs) (TrendingOutput, error) {
	snap, st, err := loadSnapshot(cfg)
	if err != nil {
		return TrendingOutput{}, err
	}
	limit := args.Cap
	if limit <= 0 {
		limit = cfg.Caps.TrendingCap
	}
	players := league.LoadPlayers(st, cfg.PlayersRel)
	return TrendingOutput{
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Adds:           digest.TrendingLabels(snap.Trending.Add, players, limit),
		Drops:          digest.TrendingLabels(snap.Trending.Drop, players, limit),
	}, nil
}

func buildTeamLookup(cfg ServerConfig, args TeamLookupArgs) (TeamLookupOutput, error) {
	if args.RosterID == 0 {
		return TeamLookupOutput{}, fmt.Errorf("roster_id is required")
	}
	snap, _, err := loadSnapshot(cfg)
	if err != nil {
		return TeamLookupOutput{}, err
	}
	names := league.BuildNameIndex(snap.Users, snap.Rosters)
	return TeamLookupOutput{
		RosterID: args.RosterID,
		Name:     names.Name(args.RosterID),
	}, nil
}
