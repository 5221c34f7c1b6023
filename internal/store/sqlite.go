// Package store loads flattened rows into a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/vlrstats/vct-collector/internal/models"
)

const (
	agentRoundsDDL = `CREATE TABLE agent_rounds (
		event_id      INTEGER,
		event_name    TEXT,
		region        TEXT,
		match_id      INTEGER,
		map           TEXT,
		team          TEXT,
		player        TEXT,
		agent         TEXT,
		kills         INTEGER,
		deaths        INTEGER,
		assists       INTEGER,
		acs           INTEGER,
		fk            INTEGER,
		fd            INTEGER,
		rounds_played INTEGER,
		result        INTEGER
	)`

	matchesDDL = `CREATE TABLE matches (
		event_id      INTEGER,
		event_name    TEXT,
		region        TEXT,
		match_id      INTEGER,
		map           TEXT,
		team          TEXT,
		opponent      TEXT,
		rounds_played INTEGER,
		result        INTEGER,
		start_time    TEXT
	)`
)

// Write replaces the agent_rounds and matches tables at dbPath with the given
// rows and rebuilds the secondary indexes. When either row set is empty the
// whole write is skipped with a warning; partial tables are worse than none.
func Write(dbPath string, agents []models.AgentRound, matches []models.MatchRow, logger *zap.SugaredLogger) error {
	if len(agents) == 0 || len(matches) == 0 {
		logger.Warnw("No data fetched; skipping SQLite write",
			"agentRows", len(agents),
			"matchRows", len(matches),
		)
		return nil
	}

	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DROP TABLE IF EXISTS agent_rounds",
		agentRoundsDDL,
		"DROP TABLE IF EXISTS matches",
		matchesDDL,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("prepare tables: %w", err)
		}
	}

	if err := insertAgentRounds(tx, agents); err != nil {
		return err
	}
	if err := insertMatches(tx, matches); err != nil {
		return err
	}

	for _, stmt := range []string{
		"CREATE INDEX IF NOT EXISTS idx_agent_region ON agent_rounds(region)",
		"CREATE INDEX IF NOT EXISTS idx_agent_match ON agent_rounds(match_id)",
		"CREATE INDEX IF NOT EXISTS idx_matches_region ON matches(region)",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	logger.Infow("SQLite write complete",
		"path", dbPath,
		"agentRows", len(agents),
		"matchRows", len(matches),
	)
	return nil
}

func insertAgentRounds(tx *sql.Tx, rows []models.AgentRound) error {
	stmt, err := tx.Prepare(`INSERT INTO agent_rounds
		(event_id, event_name, region, match_id, map, team, player, agent,
		 kills, deaths, assists, acs, fk, fd, rounds_played, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare agent insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(
			r.EventID, r.EventName, r.Region, r.MatchID, r.Map,
			r.Team, r.Player, nullIfEmpty(r.Agent),
			r.Kills, r.Deaths, r.Assists, r.ACS, r.FirstKills, r.FirstDeaths,
			r.RoundsPlayed, r.Result,
		); err != nil {
			return fmt.Errorf("insert agent row: %w", err)
		}
	}
	return nil
}

func insertMatches(tx *sql.Tx, rows []models.MatchRow) error {
	stmt, err := tx.Prepare(`INSERT INTO matches
		(event_id, event_name, region, match_id, map, team, opponent,
		 rounds_played, result, start_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare match insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(
			r.EventID, r.EventName, r.Region, r.MatchID, r.Map,
			r.Team, r.Opponent, r.RoundsPlayed, r.Result, nullIfEmpty(r.StartTime),
		); err != nil {
			return fmt.Errorf("insert match row: %w", err)
		}
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
