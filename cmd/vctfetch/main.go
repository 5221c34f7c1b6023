// vctfetch pulls a season of VCT results from the VLR statistics API,
// flattens them into agent-level and team-level rows, writes both to CSV, and
// optionally loads them into a SQLite database.
//
// Example:
//
//	vctfetch --year 2024 --events 50 \
//	  --out data/vct2024_agent_rounds.csv \
//	  --matches-out data/vct2024_matches.csv \
//	  --db data/vct2024.sqlite
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vlrstats/vct-collector/internal/config"
	"github.com/vlrstats/vct-collector/internal/export"
	"github.com/vlrstats/vct-collector/internal/logic"
	"github.com/vlrstats/vct-collector/internal/store"
	"github.com/vlrstats/vct-collector/internal/vlr"
)

func main() {
	year := flag.Int("year", 2024, "Season year to fetch")
	eventLimit := flag.Int("events", 0, "Limit number of events (0 = no limit)")
	outPath := flag.String("out", "data/vct2024_agent_rounds.csv", "Agent rows CSV path")
	matchesOutPath := flag.String("matches-out", "data/vct2024_matches.csv", "Match rows CSV path")
	dbPath := flag.String("db", "", "Optional SQLite path to write tables")
	flag.Parse()

	cfg := config.Load()

	zl, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	runID := uuid.NewString()
	logger.Infow("Starting collection run",
		"runId", runID,
		"year", *year,
		"eventLimit", *eventLimit,
		"baseUrl", cfg.VLRBaseURL,
	)

	ctx := context.Background()
	client := vlr.NewClient(vlr.ClientConfig{
		BaseURL: cfg.VLRBaseURL,
		Timeout: cfg.HTTPTimeout,
	})

	events, err := client.ListEvents(ctx, vlr.ListEventsParams{
		Tier:   vlr.TierVCT,
		Status: vlr.StatusAll,
		Limit:  *eventLimit,
	})
	if err != nil {
		logger.Fatalw("Failed to list events", "runId", runID, "error", err)
	}

	selected, fellBack := logic.SelectEvents(events, *year)
	if fellBack {
		logger.Warnw("Year filter matched no events; using unfiltered listing",
			"runId", runID,
			"year", *year,
			"events", len(events),
		)
	}
	logger.Infow("Selected events", "runId", runID, "selected", len(selected), "listed", len(events))

	agentRows, matchRows, err := logic.FlattenEvents(ctx, client, selected, logger)
	if err != nil {
		logger.Fatalw("Failed to flatten events", "runId", runID, "error", err)
	}

	if err := export.WriteAgentRounds(*outPath, agentRows); err != nil {
		logger.Fatalw("Failed to write agent rows CSV", "runId", runID, "error", err)
	}
	if err := export.WriteMatches(*matchesOutPath, matchRows); err != nil {
		logger.Fatalw("Failed to write match rows CSV", "runId", runID, "error", err)
	}

	if *dbPath != "" {
		if err := store.Write(*dbPath, agentRows, matchRows, logger); err != nil {
			logger.Fatalw("Failed to write SQLite", "runId", runID, "error", err)
		}
	}

	fmt.Printf("Run ID: %s\n", runID)
	fmt.Printf("Events fetched: %d\n", len(selected))
	fmt.Printf("Agent rows: %d, Match rows: %d\n", len(agentRows), len(matchRows))
	fmt.Printf("CSV written: %s, %s\n", *outPath, *matchesOutPath)
	if *dbPath != "" {
		fmt.Printf("SQLite written: %s\n", *dbPath)
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
