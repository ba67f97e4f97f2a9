package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestExperienceMatch_UnknownRequirement(t *testing.T) {
	assert.Equal(t, 0.7, ExperienceMatch(intPtr(5), nil))
	assert.Equal(t, 0.7, ExperienceMatch(nil, nil))
}

func TestExperienceMatch_UnknownCandidate(t *testing.T) {
	assert.Equal(t, 0.3, ExperienceMatch(nil, intPtr(3)))
}

func TestExperienceMatch_MeetsRequirementExactly(t *testing.T) {
	assert.InDelta(t, 0.8, ExperienceMatch(intPtr(3), intPtr(3)), 1e-9)
}

func TestExperienceMatch_ExcessBonusCappedAtTwoX(t *testing.T) {
	// 6 years vs 3 required: ratio capped at 2.0 -> 0.8 + 0.2 = 1.0
	assert.InDelta(t, 1.0, ExperienceMatch(intPtr(6), intPtr(3)), 1e-9)
	// 30 years vs 3 required: same cap, no runaway bonus
	assert.InDelta(t, 1.0, ExperienceMatch(intPtr(30), intPtr(3)), 1e-9)
	// 4 years vs 3: partial bonus
	score := ExperienceMatch(intPtr(4), intPtr(3))
	assert.Greater(t, score, 0.8)
	assert.Less(t, score, 1.0)
}

func TestExperienceMatch_ProportionalPenaltyBelowRequirement(t *testing.T) {
	assert.InDelta(t, 0.5, ExperienceMatch(intPtr(2), intPtr(4)), 1e-9)
	assert.InDelta(t, 0.0, ExperienceMatch(intPtr(0), intPtr(4)), 1e-9)
}

func TestExperienceMatch_ZeroYearRequirement(t *testing.T) {
	// A malformed or zero requirement must not divide by zero
	assert.Equal(t, 1.0, ExperienceMatch(intPtr(0), intPtr(0)))
	assert.Equal(t, 1.0, ExperienceMatch(intPtr(5), intPtr(0)))
}

func TestExperienceMatch_NegativeCandidateYearsFloorsAtZero(t *testing.T) {
	assert.InDelta(t, 0.0, ExperienceMatch(intPtr(-2), intPtr(4)), 1e-9)
}
