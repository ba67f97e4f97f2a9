package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

// MatchReport is a stored ranking run for a job
type MatchReport struct {
	ID        uuid.UUID           `json:"id"`
	JobID     uuid.UUID           `json:"job_id"`
	Results   []types.MatchResult `json:"results"`
	CreatedAt time.Time           `json:"created_at"`
}

// SaveMatchReport stores the results of a ranking run and returns the report ID
func (db *DB) SaveMatchReport(ctx context.Context, jobID uuid.UUID, results []types.MatchResult) (uuid.UUID, error) {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal results: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_reports (job_id, results) VALUES ($1, $2) RETURNING id`,
		jobID, resultsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match report: %w", err)
	}
	return id, nil
}

// GetMatchReport retrieves a stored report by ID, or nil when not found
func (db *DB) GetMatchReport(ctx context.Context, id uuid.UUID) (*MatchReport, error) {
	var report MatchReport
	var resultsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, results, created_at FROM match_reports WHERE id = $1`,
		id,
	).Scan(&report.ID, &report.JobID, &resultsJSON, &report.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match report: %w", err)
	}

	if err := json.Unmarshal(resultsJSON, &report.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	return &report, nil
}

// ListMatchReportsByJob retrieves reports for a job, newest first
func (db *DB) ListMatchReportsByJob(ctx context.Context, jobID uuid.UUID, limit int) ([]MatchReport, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, results, created_at
		 FROM match_reports WHERE job_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		jobID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match reports: %w", err)
	}
	defer rows.Close()

	var reports []MatchReport
	for rows.Next() {
		var report MatchReport
		var resultsJSON []byte
		if err := rows.Scan(&report.ID, &report.JobID, &resultsJSON, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match report: %w", err)
		}
		if err := json.Unmarshal(resultsJSON, &report.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal results: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}
