package league

import (
	"fmt"
	"strings"
)

// NameIndex maps roster id → resolved display name.
type NameIndex map[int]string

// Name returns the resolved name for a roster id, synthesizing the fallback
// label for ids that never appeared in the roster list.
func (n NameIndex) Name(rosterID int) string {
	if name, ok := n[rosterID]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Team %d", rosterID)
}

// BuildNameIndex resolves a display name for every roster. Resolution order,
// first non-empty wins:
//
//  1. team_name in the roster's settings
//  2. team_name / team_name_update in the roster's metadata
//  3. team_name in the owning user's metadata
//  4. the owner's display name
//  5. the owner's username
//  6. "Team <roster_id>"
//
// A missing or dangling owner_id never fails, it just falls through. A nil
// roster list yields an empty, non-nil index.
func BuildNameIndex(users []User, rosters []Roster) NameIndex {
	byUser := make(map[string]User, len(users))
	for _, u := range users {
		byUser[string(u.UserID)] = u
	}

	out := make(NameIndex, len(rosters))
	for _, r := range rosters {
		out[int(r.RosterID)] = resolveName(r, byUser)
	}
	return out
}

func resolveName(r Roster, byUser map[string]User) string {
	if n := StringField(r.Settings, "team_name"); n != "" {
		return n
	}
	if n := StringField(r.Metadata, "team_name", "team_name_update"); n != "" {
		return n
	}
	if u, ok := byUser[string(r.OwnerID)]; ok {
		if n := StringField(u.Metadata, "team_name"); n != "" {
			return n
		}
		if n := strings.TrimSpace(u.DisplayName); n != "" {
			return n
		}
		if n := strings.TrimSpace(u.Username); n != "" {
			return n
		}
	}
	return fmt.Sprintf("Team %d", int(r.RosterID))
}
