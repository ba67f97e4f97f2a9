package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPosting_IsFresh(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		posting Posting
		want    bool
	}{
		{"no expiry", Posting{}, false},
		{"expires in the future", Posting{ExpiresAt: &future}, true},
		{"already expired", Posting{ExpiresAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.posting.IsFresh())
		})
	}
}

func TestSchema_CoversAllTables(t *testing.T) {
	for _, table := range []string{"users", "jobs", "candidates", "postings", "match_reports"} {
		assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
