package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dylanscardvault/sleeper-feed/internal/config"
	"github.com/dylanscardvault/sleeper-feed/internal/digest"
	"github.com/dylanscardvault/sleeper-feed/internal/league"
	"github.com/dylanscardvault/sleeper-feed/internal/store"
)

func main() {
	var (
		dataRoot    = flag.String("data-root", "data/sleeper", "root directory for cached Sleeper JSON")
		snapshot    = flag.String("snapshot", "", "snapshot file relative to data root (default latest.json)")
		players     = flag.String("players", "", "optional players file relative to data root (default players.json)")
		out         = flag.String("out", "", "output text file relative to data root (default sms.txt)")
		cfgPath     = flag.String("config", "", "optional YAML config file")
		matchupCap  = flag.Int("matchups", 0, "max matchup bullets per section (default 3)")
		trendingCap = flag.Int("trending", 0, "max trending entries per section (default 6)")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		must(err)
	}
	// Flags beat the config file.
	if *snapshot != "" {
		cfg.Snapshot = *snapshot
	}
	if *players != "" {
		cfg.Players = *players
	}
	if *out != "" {
		cfg.Out = *out
	}
	if *matchupCap > 0 {
		cfg.MatchupCap = *matchupCap
	}
	if *trendingCap > 0 {
		cfg.TrendingCap = *trendingCap
	}

	st := store.New(*dataRoot)
	snap, err := league.LoadSnapshot(st, cfg.Snapshot)
	must(err)

	text := digest.BuildReport(snap, league.LoadPlayers(st, cfg.Players), digest.Options{
		MatchupCap:  cfg.MatchupCap,
		TrendingCap: cfg.TrendingCap,
	})

	must(st.WriteText(cfg.Out, text))

	log.Printf("Wrote %s", st.Path(cfg.Out))
	fmt.Println()
	fmt.Println(text)
}

func must(err error) {
	if err != nil {
		if os.IsNotExist(err) {
			log.Fatalf("missing cached snapshot: %v (run the Sleeper pull first or pass -snapshot)", err)
		}
		log.Fatal(err)
	}
}
