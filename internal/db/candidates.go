package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

// CreateCandidate inserts a candidate profile and returns its ID
func (db *DB) CreateCandidate(ctx context.Context, candidate *types.CandidateProfile) (uuid.UUID, error) {
	skillsJSON, err := json.Marshal(candidate.Skills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	educationJSON, err := json.Marshal(candidate.Education)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal education: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, resume_text, skills, education, experience_years)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		candidate.Name, candidate.ResumeText, skillsJSON, educationJSON, candidate.ExperienceYears,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate profile by ID, or nil when not found
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var c types.CandidateProfile
	var skillsJSON, educationJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, resume_text, skills, education, experience_years
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.ResumeText, &skillsJSON, &educationJSON, &c.ExperienceYears)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if err := json.Unmarshal(skillsJSON, &c.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(educationJSON, &c.Education); err != nil {
		return nil, fmt.Errorf("failed to unmarshal education: %w", err)
	}
	return &c, nil
}

// ListCandidates retrieves candidates ordered by most recent first
func (db *DB) ListCandidates(ctx context.Context, limit int) ([]types.CandidateProfile, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, resume_text, skills, education, experience_years
		 FROM candidates ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateProfile
	for rows.Next() {
		var c types.CandidateProfile
		var skillsJSON, educationJSON []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.ResumeText, &skillsJSON, &educationJSON, &c.ExperienceYears); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if err := json.Unmarshal(skillsJSON, &c.Skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
		if err := json.Unmarshal(educationJSON, &c.Education); err != nil {
			return nil, fmt.Errorf("failed to unmarshal education: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// DeleteCandidate removes a candidate profile
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}
