package counseling

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Advisor narrates a gap report into personalized guidance. Implementations
// must be side-effect free with respect to the report; scoring never depends
// on an Advisor.
type Advisor interface {
	NarrateGapReport(ctx context.Context, candidateName string, report *types.SkillGapReport) (string, error)
}

// LLMAdvisor narrates gap reports with a generative model.
type LLMAdvisor struct {
	client llm.Client
}

// NewLLMAdvisor wraps an LLM client as an Advisor.
func NewLLMAdvisor(client llm.Client) *LLMAdvisor {
	return &LLMAdvisor{client: client}
}

// NarrateGapReport asks the model for a short career-guidance narrative
// grounded in the rule-based gap report. The report is the source of truth;
// the narration is presentation only.
func (a *LLMAdvisor) NarrateGapReport(ctx context.Context, candidateName string, report *types.SkillGapReport) (string, error) {
	prompt := buildGuidancePrompt(candidateName, report)

	guidance, err := a.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("guidance generation failed: %w", err)
	}
	return strings.TrimSpace(guidance), nil
}

// buildGuidancePrompt renders the gap report as a compact prompt.
func buildGuidancePrompt(candidateName string, report *types.SkillGapReport) string {
	var b strings.Builder

	b.WriteString("You are a pragmatic career counselor. Write 3-5 sentences of direct, ")
	b.WriteString("encouraging guidance for the candidate below. Do not invent skills or ")
	b.WriteString("numbers that are not in the data.\n\n")

	if candidateName != "" {
		fmt.Fprintf(&b, "Candidate: %s\n", candidateName)
	}
	fmt.Fprintf(&b, "Target: %s at %s\n", report.TargetDomain, report.TargetLevel)
	fmt.Fprintf(&b, "Readiness: %.0f/100\n", report.ReadinessScore)

	if len(report.AreaGaps) > 0 {
		b.WriteString("Gaps:\n")
		for _, gap := range report.AreaGaps {
			fmt.Fprintf(&b, "- %s: has %d of %d recommended skills\n",
				displayName(gap.Category), gap.Current, gap.Recommended)
		}
	} else {
		b.WriteString("No category gaps; the candidate meets the target profile.\n")
	}

	if len(report.LearningPath) > 0 {
		first := report.LearningPath[0]
		fmt.Fprintf(&b, "First learning phase: %s (%s), skills: %s\n",
			first.FocusArea, first.Timeframe, strings.Join(first.SkillsToLearn, ", "))
	}
	return b.String()
}
