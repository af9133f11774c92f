package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Run is one recorded answer.
type Run struct {
	Seq         int64  `json:"seq"`
	ID          string `json:"id"`
	Day         int    `json:"day"`
	Part        int    `json:"part"`
	InputDigest string `json:"input_digest"`
	Answer      int64  `json:"answer"`
}

// WriteRun appends run and returns its seq. run.Seq is ignored.
// Writing the same ID twice is a no-op that returns the original seq.
func (s *Store) WriteRun(ctx context.Context, run Run) (int64, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, day, part, input_digest, answer)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.Day, run.Part, run.InputDigest, run.Answer)
	if err != nil {
		return 0, fmt.Errorf("write run: %w", err)
	}

	var seq int64
	if err := s.db.QueryRowContext(ctx, `SELECT seq FROM runs WHERE id = ?`, run.ID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("write run: read seq: %w", err)
	}
	return seq, nil
}

// ListRuns returns recorded runs in seq order. A day of 0 lists every day.
// Returns an empty slice, not nil, when nothing matches.
func (s *Store) ListRuns(ctx context.Context, day int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, day, part, input_digest, answer
		FROM runs
		WHERE ? = 0 OR day = ?
		ORDER BY seq ASC
	`, day, day)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Seq, &r.ID, &r.Day, &r.Part, &r.InputDigest, &r.Answer); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// LatestAnswer returns the most recent answer recorded for the given day,
// part and input digest. The bool is false when none was recorded.
func (s *Store) LatestAnswer(ctx context.Context, day, part int, digest string) (int64, bool, error) {
	var answer int64
	err := s.db.QueryRowContext(ctx, `
		SELECT answer FROM runs
		WHERE day = ? AND part = ? AND input_digest = ?
		ORDER BY seq DESC
		LIMIT 1
	`, day, part, digest).Scan(&answer)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("latest answer: %w", err)
	}
	return answer, true, nil
}
