// Package export serializes flattened rows to CSV files on disk.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vlrstats/vct-collector/internal/models"
)

// WriteAgentRounds writes agent rows to path, creating parent directories.
func WriteAgentRounds(path string, rows []models.AgentRound) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	return writeCSV(path, models.AgentRoundHeader(), records)
}

// WriteMatches writes match rows to path, creating parent directories.
func WriteMatches(path string, rows []models.MatchRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	return writeCSV(path, models.MatchRowHeader(), records)
}

func writeCSV(path string, header []string, records [][]string) error {
	if err := ensureParent(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
