package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

// CreateJob inserts a job profile and returns its ID
func (db *DB) CreateJob(ctx context.Context, job *types.JobProfile) (uuid.UUID, error) {
	skillsJSON, err := json.Marshal(job.RequiredSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, required_skills, seniority_level, experience_years)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		 RETURNING id`,
		job.Title, job.Description, skillsJSON, string(job.SeniorityLevel), job.ExperienceYearsRequired,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job profile by ID, or nil when not found
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobProfile, error) {
	var job types.JobProfile
	var skillsJSON []byte
	var seniority *string

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, required_skills, seniority_level, experience_years
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Description, &skillsJSON, &seniority, &job.ExperienceYearsRequired)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if err := json.Unmarshal(skillsJSON, &job.RequiredSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
	}
	if seniority != nil {
		job.SeniorityLevel = types.SeniorityLevel(*seniority)
	}
	return &job, nil
}

// ListJobs retrieves jobs ordered by most recent first
func (db *DB) ListJobs(ctx context.Context, limit int) ([]types.JobProfile, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, required_skills, seniority_level, experience_years
		 FROM jobs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobProfile
	for rows.Next() {
		var job types.JobProfile
		var skillsJSON []byte
		var seniority *string
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &skillsJSON, &seniority, &job.ExperienceYearsRequired); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := json.Unmarshal(skillsJSON, &job.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
		}
		if seniority != nil {
			job.SeniorityLevel = types.SeniorityLevel(*seniority)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// DeleteJob removes a job and its match reports (via cascade)
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}
