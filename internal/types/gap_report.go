// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CategoryGap describes the shortfall in a single taxonomy category against
// a target level's recommendation.
type CategoryGap struct {
	Category    string `json:"category"`
	Current     int    `json:"current"`
	Recommended int    `json:"recommended"`
	Gap         int    `json:"gap"`
}

// LearningResource points at a static learning resource for a category.
type LearningResource struct {
	Type     string `json:"type"`     // e.g. "online_course", "certification"
	Platform string `json:"platform"` // e.g. "Coursera", "AWS/Azure"
	Focus    string `json:"focus"`
}

// LearningPhase is one step of a phased learning plan.
type LearningPhase struct {
	Phase          int                `json:"phase"`
	Timeframe      string             `json:"timeframe"` // e.g. "Months 1-2"
	FocusArea      string             `json:"focus_area"`
	SkillsToLearn  []string           `json:"skills_to_learn"`
	EstimatedHours int                `json:"estimated_hours"`
	Resources      []LearningResource `json:"resources"`
	Milestones     []string           `json:"milestones,omitempty"`
}

// SkillGapReport is the outcome of a directional skill-gap analysis for a
// candidate targeting a domain and career level.
type SkillGapReport struct {
	TargetDomain string         `json:"target_domain"`
	TargetLevel  SeniorityLevel `json:"target_level"`

	// TotalSkillGap is how many skills short of the level's minimum the
	// candidate currently is (0 when they meet or exceed it).
	TotalSkillGap int `json:"total_skill_gap"`

	// AreaGaps lists the gapped key categories, largest gap first.
	AreaGaps []CategoryGap `json:"area_gaps"`

	// RecommendedSkills suggests concrete skills to learn per category.
	RecommendedSkills SkillSet `json:"recommended_skills"`

	// PriorityAreas are the key categories the target level weighs.
	PriorityAreas []string `json:"priority_areas"`

	// ReadinessScore measures closeness to the target level in [0,100].
	ReadinessScore float64 `json:"readiness_score"`

	// LearningPath is the phased plan to close the gaps.
	LearningPath []LearningPhase `json:"learning_path"`
}

// IndustryInsight summarizes market conditions for a career domain from the
// static trends table.
type IndustryInsight struct {
	GrowthOutlook  string   `json:"growth_outlook"`
	SalaryRange    string   `json:"salary_range"`
	InDemandSkills []string `json:"in_demand_skills"`
	MarketDemand   string   `json:"market_demand"`
}

// CareerAssessment describes where a candidate currently stands.
type CareerAssessment struct {
	Domain        string         `json:"domain"`
	Level         SeniorityLevel `json:"level"`
	SuitableRoles []string       `json:"suitable_roles"`
}

// CareerRecommendation is the full counseling output: current standing, next
// step, gap analysis, learning path, market insight, and action items.
type CareerRecommendation struct {
	Current      CareerAssessment `json:"current_assessment"`
	TargetLevel  SeniorityLevel   `json:"target_level"`
	TargetRoles  []string         `json:"target_roles"`
	GapReport    *SkillGapReport  `json:"skill_analysis"`
	Industry     IndustryInsight  `json:"industry_insights"`
	ActionItems  []string         `json:"recommendations"`
	AIGuidance   string           `json:"ai_guidance,omitempty"` // optional LLM narration
}
