package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-matcher/internal/db"
)

// CachedFetcher wraps posting fetching with database-backed caching.
type CachedFetcher struct {
	db        *db.DB
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // For testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  db.DefaultPostingCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher. database may be nil, in
// which case every fetch goes to the network.
func NewCachedFetcher(database *db.DB, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultPostingCacheTTL
	}
	return &CachedFetcher{
		db:        database,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool      // Whether this result came from cache
	PostingID uuid.UUID // Database ID of the cached posting
}

// Fetch retrieves a posting URL, serving from cache when a fresh copy
// exists, otherwise fetching and caching the page.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache && f.db != nil {
		cached, err := f.db.GetFreshPosting(ctx, urlStr)
		if err != nil {
			return nil, fmt.Errorf("failed to check cache: %w", err)
		}
		if cached != nil {
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       derefString(cached.RawHTML),
					Text:       derefString(cached.ParsedText),
					StatusCode: derefInt(cached.HTTPStatus),
				},
				FromCache: true,
				PostingID: cached.ID,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		if f.db != nil {
			statusCode := 0
			if result != nil {
				statusCode = result.StatusCode
			}
			_ = f.db.RecordFailedFetch(ctx, urlStr, statusCode, err.Error())
		}
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, _ := ExtractMainText(result.HTML,
		PlatformContentSelectors(platform),
		PlatformNoiseSelectors(platform)...)
	result.Text = text

	if f.db != nil {
		posting, err := f.db.UpsertPosting(ctx, &db.PostingInput{
			URL:        urlStr,
			Platform:   string(platform),
			RawHTML:    result.HTML,
			ParsedText: result.Text,
			HTTPStatus: result.StatusCode,
		})
		// The fetch itself succeeded; a cache write failure only costs a
		// re-fetch next time.
		if err == nil {
			return &CachedResult{
				Result:    result,
				FromCache: false,
				PostingID: posting.ID,
			}, nil
		}
	}

	return &CachedResult{
		Result:    result,
		FromCache: false,
	}, nil
}

// InvalidateCache expires a cached posting, forcing a re-fetch on the next
// request.
func (f *CachedFetcher) InvalidateCache(ctx context.Context, urlStr string) error {
	if f.db == nil {
		return nil
	}
	return f.db.InvalidatePosting(ctx, urlStr)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
