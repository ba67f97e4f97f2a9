package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPostingCacheTTL is how long a fetched posting stays fresh.
const DefaultPostingCacheTTL = 24 * time.Hour

// Fetch status values for cached postings.
const (
	FetchStatusSuccess = "success"
	FetchStatusError   = "error"
)

// Posting is a cached copy of a fetched job posting page
type Posting struct {
	ID           uuid.UUID  `json:"id"`
	URL          string     `json:"url"`
	Platform     *string    `json:"platform,omitempty"`
	RawHTML      *string    `json:"-"` // Don't serialize (large)
	ParsedText   *string    `json:"parsed_text,omitempty"`
	HTTPStatus   *int       `json:"http_status,omitempty"`
	FetchStatus  string     `json:"fetch_status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	FetchedAt    time.Time  `json:"fetched_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsFresh returns true if the posting hasn't expired
func (p *Posting) IsFresh() bool {
	if p.ExpiresAt == nil {
		return false
	}
	return time.Now().Before(*p.ExpiresAt)
}

// PostingInput is used when storing a fetched posting
type PostingInput struct {
	URL        string
	Platform   string
	RawHTML    string
	ParsedText string
	HTTPStatus int
}

// GetPostingByURL retrieves a cached posting by URL, or nil when not found
func (db *DB) GetPostingByURL(ctx context.Context, url string) (*Posting, error) {
	var p Posting
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, platform, raw_html, parsed_text, http_status, fetch_status,
		        error_message, fetched_at, expires_at, created_at, updated_at
		 FROM postings WHERE url = $1`,
		url,
	).Scan(&p.ID, &p.URL, &p.Platform, &p.RawHTML, &p.ParsedText, &p.HTTPStatus,
		&p.FetchStatus, &p.ErrorMessage, &p.FetchedAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return &p, nil
}

// GetFreshPosting retrieves a cached posting only if it succeeded and is not
// expired
func (db *DB) GetFreshPosting(ctx context.Context, url string) (*Posting, error) {
	posting, err := db.GetPostingByURL(ctx, url)
	if err != nil {
		return nil, err
	}
	if posting == nil || posting.FetchStatus != FetchStatusSuccess || !posting.IsFresh() {
		return nil, nil
	}
	return posting, nil
}

// UpsertPosting stores a successfully fetched posting with a fresh TTL
func (db *DB) UpsertPosting(ctx context.Context, input *PostingInput) (*Posting, error) {
	var p Posting
	expiresAt := time.Now().Add(DefaultPostingCacheTTL)

	err := db.pool.QueryRow(ctx,
		`INSERT INTO postings (url, platform, raw_html, parsed_text, http_status, fetch_status, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, 'success', NOW(), $6)
		 ON CONFLICT (url) DO UPDATE SET
		     platform = $2,
		     raw_html = $3,
		     parsed_text = $4,
		     http_status = $5,
		     fetch_status = 'success',
		     error_message = NULL,
		     fetched_at = NOW(),
		     expires_at = $6,
		     updated_at = NOW()
		 RETURNING id, url, platform, http_status, fetch_status, fetched_at, expires_at, created_at, updated_at`,
		input.URL, input.Platform, input.RawHTML, input.ParsedText, input.HTTPStatus, expiresAt,
	).Scan(&p.ID, &p.URL, &p.Platform, &p.HTTPStatus, &p.FetchStatus,
		&p.FetchedAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert posting: %w", err)
	}
	return &p, nil
}

// RecordFailedFetch records a failed fetch with a short retry backoff
func (db *DB) RecordFailedFetch(ctx context.Context, url string, httpStatus int, errorMsg string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO postings (url, http_status, fetch_status, error_message, fetched_at, expires_at)
		 VALUES ($1, $2, 'error', $3, NOW(), NOW() + INTERVAL '1 hour')
		 ON CONFLICT (url) DO UPDATE SET
		     http_status = $2,
		     fetch_status = 'error',
		     error_message = $3,
		     fetched_at = NOW(),
		     expires_at = NOW() + INTERVAL '1 hour',
		     updated_at = NOW()`,
		url, httpStatus, errorMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to record failed fetch: %w", err)
	}
	return nil
}

// InvalidatePosting expires a cached posting so the next fetch goes to the
// network
func (db *DB) InvalidatePosting(ctx context.Context, url string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE postings SET expires_at = NOW() - INTERVAL '1 hour', updated_at = NOW() WHERE url = $1`,
		url,
	)
	if err != nil {
		return fmt.Errorf("failed to invalidate posting: %w", err)
	}
	return nil
}
