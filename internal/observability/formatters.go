// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of a parsed job.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:     %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", profile.SeniorityLevel))
	if profile.ExperienceYearsRequired != nil {
		sb.WriteString(fmt.Sprintf("Years:     %d+\n", *profile.ExperienceYearsRequired))
	}
	sb.WriteString("\n")

	if len(profile.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(profile.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.RequiredSkills[i]))
		}
		if len(profile.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.RequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the top ranked candidates with their sub-scores.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.CandidateID))
		sb.WriteString(fmt.Sprintf("    Overall: %.2f\n", result.OverallScore))
		sb.WriteString(fmt.Sprintf("    Skills: %.2f  Experience: %.2f\n",
			result.Subscores.SkillMatch, result.Subscores.ExperienceMatch))
		sb.WriteString(fmt.Sprintf("    Text: %.2f  Education: %.2f\n",
			result.Subscores.TextSimilarity, result.Subscores.EducationMatch))

		if missing := flattenSkills(result.MissingSkills); missing != "" {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatches outputs the top recommended jobs for a candidate.
func (p *Printer) PrintJobMatches(matches []types.JobMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		title := match.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (skills %.2f, text %.2f)\n",
			match.OverallScore, match.Subscores.SkillMatch, match.Subscores.TextSimilarity))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(matches)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs a skill-gap analysis summary.
func (p *Printer) PrintGapReport(report *types.SkillGapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target:    %s / %s\n", report.TargetDomain, report.TargetLevel))
	sb.WriteString(fmt.Sprintf("Readiness: %.0f%%\n", report.ReadinessScore))
	sb.WriteString(fmt.Sprintf("Skill gap: %d skills\n", report.TotalSkillGap))

	if len(report.AreaGaps) > 0 {
		sb.WriteString("\nGapped Areas:\n")
		for _, gap := range report.AreaGaps {
			sb.WriteString(fmt.Sprintf("  • %s: %d of %d\n", gap.Category, gap.Current, gap.Recommended))
		}
	}

	if len(report.LearningPath) > 0 {
		sb.WriteString("\nLearning Path:\n")
		for _, phase := range report.LearningPath {
			skills := strings.Join(phase.SkillsToLearn, ", ")
			if len(skills) > 35 {
				skills = skills[:32] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s: %s\n", phase.Timeframe, skills))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerRecommendation outputs the full counseling summary.
func (p *Printer) PrintCareerRecommendation(rec *types.CareerRecommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Current:  %s (%s)\n", rec.Current.Level, rec.Current.Domain))
	sb.WriteString(fmt.Sprintf("Target:   %s\n", rec.TargetLevel))

	if len(rec.TargetRoles) > 0 {
		roles := strings.Join(rec.TargetRoles, ", ")
		if len(roles) > 40 {
			roles = roles[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Roles:    %s\n", roles))
	}
	sb.WriteString(fmt.Sprintf("Outlook:  %s demand, %s\n",
		rec.Industry.MarketDemand, rec.Industry.SalaryRange))

	if len(rec.ActionItems) > 0 {
		sb.WriteString("\nNext Steps:\n")
		count := min(len(rec.ActionItems), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := rec.ActionItems[i]
			if len(item) > 50 {
				item = item[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
	}

	p.printBox("CAREER RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// flattenSkills joins a skill set into one short display string.
func flattenSkills(skills types.SkillSet) string {
	var all []string
	for _, category := range skills.Categories() {
		all = append(all, skills[category]...)
	}
	joined := strings.Join(all, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	return joined
}
