package league

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dylanscardvault/sleeper-feed/internal/store"
)

// Snapshot is one cached pull of a Sleeper league: league descriptor, season
// state, users, rosters, matchup buckets, and trending players. Everything
// is built fresh from one document per run and discarded afterwards.
type Snapshot struct {
	League   League         `json:"league"`
	State    State          `json:"state"`
	Users    []User         `json:"users"`
	Rosters  []Roster       `json:"rosters"`
	Matchups MatchupBuckets `json:"matchups"`
	Trending Trending       `json:"trending"`
}

type League struct {
	Name     string         `json:"name"`
	Metadata map[string]any `json:"metadata"`
}

// DisplayName prefers the custom name under metadata, then the plain league
// name, then a generic label.
func (l League) DisplayName() string {
	if n := StringField(l.Metadata, "name"); n != "" {
		return n
	}
	if n := strings.TrimSpace(l.Name); n != "" {
		return n
	}
	return "Your League"
}

type State struct {
	Week FlexInt `json:"week"`
}

type User struct {
	UserID      FlexString     `json:"user_id"`
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name"`
	Metadata    map[string]any `json:"metadata"`
}

type Roster struct {
	RosterID FlexInt        `json:"roster_id"`
	OwnerID  FlexString     `json:"owner_id"`
	Settings map[string]any `json:"settings"`
	Metadata map[string]any `json:"metadata"`
}

// MatchupRow is one roster's side of a weekly matchup. MatchupID is the
// grouping key shared by the two opposing rosters; it is nil on bye/ungrouped
// rows in some exports.
type MatchupRow struct {
	RosterID  FlexInt   `json:"roster_id"`
	MatchupID *int      `json:"matchup_id"`
	Points    FlexFloat `json:"points"`
}

// MatchupBuckets holds the named matchup lists from the snapshot. Older
// pulls stored a bare array instead of named buckets; those decode as the
// current week.
type MatchupBuckets struct {
	Current []MatchupRow `json:"current"`
	Next    []MatchupRow `json:"next"`
	Recap   []MatchupRow `json:"recap"`
}

func (m *MatchupBuckets) UnmarshalJSON(b []byte) error {
	*m = MatchupBuckets{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '[' {
		var rows []MatchupRow
		if err := json.Unmarshal(b, &rows); err != nil {
			return err
		}
		m.Current = rows
		return nil
	}
	type buckets MatchupBuckets
	var v buckets
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = MatchupBuckets(v)
	return nil
}

type Trending struct {
	Add  []TrendingPlayer `json:"add"`
	Drop []TrendingPlayer `json:"drop"`
}

// TrendingPlayer is one entry from the league-wide add/drop trend lists. The
// count field name varies by endpoint version.
type TrendingPlayer struct {
	PlayerID FlexString `json:"player_id"`
	Count    FlexInt    `json:"count"`
	Adds     FlexInt    `json:"adds"`
	Drops    FlexInt    `json:"drops"`
}

// Volume returns whichever count variant the entry carries, zero if none.
func (p TrendingPlayer) Volume() int {
	if p.Count != 0 {
		return int(p.Count)
	}
	if p.Adds != 0 {
		return int(p.Adds)
	}
	return int(p.Drops)
}

// LoadSnapshot reads and decodes a snapshot file relative to the store root.
// A missing file or malformed JSON is fatal to the run and propagates.
func LoadSnapshot(st *store.Store, rel string) (*Snapshot, error) {
	raw, err := st.ReadRaw(rel)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parse %s: %w", st.Path(rel), err)
	}
	return &snap, nil
}

// LoadPlayers reads the optional players file and builds player id → short
// label ("Name POS/TM"). The file is a nicety for trending output only, so
// any failure yields an empty map rather than an error.
func LoadPlayers(st *store.Store, rel string) map[string]string {
	if !st.Exists(rel) {
		return map[string]string{}
	}
	raw, err := st.ReadRaw(rel)
	if err != nil {
		return map[string]string{}
	}
	var players map[string]struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		FullName  string `json:"full_name"`
		Position  string `json:"position"`
		Team      string `json:"team"`
	}
	if err := json.Unmarshal(raw, &players); err != nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(players))
	for id, p := range players {
		name := strings.TrimSpace(p.FirstName + " " + p.LastName)
		if name == "" {
			name = p.FullName
		}
		if name == "" {
			name = id
		}
		tag := strings.TrimSpace(p.Position) + "/" + strings.TrimSpace(p.Team)
		if tag == "/" {
			out[id] = name
		} else {
			out[id] = name + " " + tag
		}
	}
	return out
}
