package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunResult is one completed level within a playthrough.
type RunResult struct {
	ID        int64
	RunID     string // Shared by every level of one playthrough
	LevelID   string
	Player    string // SSH user name, empty for local play
	Coins     int
	Deaths    int
	Duration  time.Duration
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID     string
	Completions int
	BestTime    time.Duration
	AvgDeaths   float64
	TotalCoins  int64
}

// NewRunID returns a fresh playthrough identifier.
func NewRunID() string {
	return uuid.NewString()
}

// SaveRun records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunResult) (int64, error) {
	if r.RunID == "" {
		r.RunID = NewRunID()
	} else if _, err := uuid.Parse(r.RunID); err != nil {
		return 0, fmt.Errorf("storage: invalid run id %q: %w", r.RunID, err)
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (run_id, level_id, player, coins, deaths, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.LevelID, r.Player, r.Coins, r.Deaths, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recently completed levels.
func (s *Store) RecentRuns(limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, player, coins, deaths, duration_ms, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// BestRuns retrieves the fastest completions of a level.
// Ties are broken by fewer deaths, then by the earlier run.
func (s *Store) BestRuns(levelID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, player, coins, deaths, duration_ms, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY duration_ms ASC, deaths ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best runs: %w", err)
	}
	return scanRuns(rows)
}

// RunLevels retrieves every level completed in one playthrough, in order.
func (s *Store) RunLevels(runID string) ([]RunResult, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, player, coins, deaths, duration_ms, created_at
		 FROM runs
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return scanRuns(rows)
}

// LevelStats retrieves aggregated statistics for a level.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(duration_ms), COALESCE(AVG(deaths), 0), COALESCE(SUM(coins), 0)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Completions, &best, &stats.AvgDeaths, &stats.TotalCoins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	if best.Valid {
		stats.BestTime = time.Duration(best.Int64) * time.Millisecond
	}

	return stats, nil
}

// ClearRuns deletes all runs of a level, or every run when levelID is empty.
func (s *Store) ClearRuns(levelID string) error {
	var err error
	if levelID == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// scanRuns reads run rows and closes them.
func scanRuns(rows *sql.Rows) ([]RunResult, error) {
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var r RunResult
		var durationMS int64
		var createdAt any

		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.LevelID,
			&r.Player,
			&r.Coins,
			&r.Deaths,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
