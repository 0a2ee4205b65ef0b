package digest

import (
	"fmt"

	"github.com/dylanscardvault/sleeper-feed/internal/league"
)

// TrendingLabels formats trending entries into short labels, mapping player
// ids through the players lookup when one is loaded. Entries beyond cap are
// dropped; a count, when present, is appended as "(+n)".
func TrendingLabels(items []league.TrendingPlayer, players map[string]string, limit int) []string {
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	out := make([]string, 0, limit)
	for _, item := range items[:limit] {
		pid := string(item.PlayerID)
		label := players[pid]
		if label == "" {
			label = pid
		}
		if label == "" {
			continue
		}
		if n := item.Volume(); n != 0 {
			label = fmt.Sprintf("%s (+%d)", label, n)
		}
		out = append(out, label)
	}
	return out
}
