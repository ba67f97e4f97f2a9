package taxonomy

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/types"
)

// ExtractSkills scans free text against the taxonomy and returns the
// categorized canonical skills found. Matching is word-boundary aware over
// the lowercased text, so "java" does not fire inside "javascript".
// Categories with no hits are absent from the result.
func (t *Taxonomy) ExtractSkills(text string) types.SkillSet {
	if strings.TrimSpace(text) == "" {
		return types.SkillSet{}
	}

	lower := strings.ToLower(text)
	found := types.SkillSet{}

	for _, category := range t.categories {
		for _, m := range t.matchers[category.Name] {
			if m.pattern.MatchString(lower) {
				found[category.Name] = append(found[category.Name], m.skill)
			}
		}
	}

	return found
}

// ExtractFromList categorizes an explicit requirement list (e.g. a job's
// required_skills). Each entry is canonicalized and matched exactly against
// the taxonomy first; entries that are phrases rather than bare skill names
// ("experience with PostgreSQL") fall back to word-boundary scanning.
// Entries matching nothing in the taxonomy are ignored.
func (t *Taxonomy) ExtractFromList(entries []string) types.SkillSet {
	found := types.SkillSet{}
	added := make(map[string]bool)

	for _, entry := range entries {
		canonical := parsing.NormalizeSkillName(entry)
		if canonical == "" {
			continue
		}

		if category, ok := t.lookupExact(canonical); ok {
			if !added[canonical] {
				found[category] = append(found[category], canonical)
				added[canonical] = true
			}
			continue
		}

		for category, skills := range t.ExtractSkills(entry) {
			for _, skill := range skills {
				if !added[skill] {
					found[category] = append(found[category], skill)
					added[skill] = true
				}
			}
		}
	}

	return found
}

// lookupExact finds the category owning a canonical token, if any.
func (t *Taxonomy) lookupExact(canonical string) (string, bool) {
	for _, category := range t.categories {
		for _, m := range t.matchers[category.Name] {
			if m.skill == canonical {
				return category.Name, true
			}
		}
	}
	return "", false
}
