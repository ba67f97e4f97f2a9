// Package taxonomy provides the static, versioned skill taxonomy and the
// word-boundary-aware skill extractor built on it.
package taxonomy

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/jonathan/talent-matcher/internal/parsing"
)

// Canonical category names. The matching weight tables and the counseling
// reference tables are keyed by these.
const (
	ProgrammingLanguages = "programming_languages"
	FrameworksLibraries  = "frameworks_libraries"
	Databases            = "databases"
	CloudDevops          = "cloud_devops"
	SoftSkills           = "soft_skills"
	ToolsTechnologies    = "tools_technologies"
)

// Category is one ordered taxonomy entry: a name plus its canonical skill
// tokens.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Taxonomy is an immutable mapping from category name to canonical skill
// tokens, with precompiled word-boundary matchers. Build a new Taxonomy for
// a new version; never mutate one that is in use.
type Taxonomy struct {
	version    string
	categories []Category
	matchers   map[string][]skillMatcher
}

// skillMatcher pairs a canonical token with its compiled pattern.
type skillMatcher struct {
	skill   string
	pattern *regexp.Regexp
}

// New builds a Taxonomy from ordered categories. It fails when a category is
// empty, a skill token is blank, or the same canonical token appears in two
// categories (disjointness is resolved at authoring time, not at match time).
func New(version string, categories []Category) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("taxonomy %q has no categories", version)
	}

	seen := make(map[string]string) // canonical token -> owning category
	matchers := make(map[string][]skillMatcher, len(categories))

	for _, category := range categories {
		if category.Name == "" {
			return nil, fmt.Errorf("taxonomy %q has a category with no name", version)
		}
		if len(category.Skills) == 0 {
			return nil, fmt.Errorf("taxonomy %q: category %q has no skills", version, category.Name)
		}

		// Longest tokens first so that within a category the most specific
		// token wins ("javascript" before "java").
		skills := make([]string, len(category.Skills))
		copy(skills, category.Skills)
		sort.SliceStable(skills, func(i, j int) bool {
			return len(skills[i]) > len(skills[j])
		})

		for _, skill := range skills {
			canonical := parsing.NormalizeSkillName(skill)
			if canonical == "" {
				return nil, fmt.Errorf("taxonomy %q: category %q has a blank skill", version, category.Name)
			}
			if owner, dup := seen[canonical]; dup {
				return nil, fmt.Errorf("taxonomy %q: skill %q appears in both %q and %q",
					version, canonical, owner, category.Name)
			}
			seen[canonical] = category.Name

			matchers[category.Name] = append(matchers[category.Name], skillMatcher{
				skill:   canonical,
				pattern: compileSkillPattern(canonical),
			})
		}
	}

	return &Taxonomy{
		version:    version,
		categories: categories,
		matchers:   matchers,
	}, nil
}

// compileSkillPattern builds a word-boundary-aware pattern for a canonical
// token over lowercased text. Plain \b does not work for tokens ending in
// "+", "#" or ".", so the boundaries are explicit character classes:
// "java" will not match inside "javascript", and "go" will not match inside
// "django" or "google".
func compileSkillPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9+#])` + regexp.QuoteMeta(token) + `(?:$|[^a-z0-9+#])`)
}

// Version returns the taxonomy version string.
func (t *Taxonomy) Version() string {
	return t.version
}

// Categories returns the ordered category list.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// CategoryNames returns the category names in authored order.
func (t *Taxonomy) CategoryNames() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// DefaultVersion identifies the built-in taxonomy.
const DefaultVersion = "2024.1"

// Default returns the built-in taxonomy. It always validates; a failure here
// is a programming error.
func Default() *Taxonomy {
	t, err := New(DefaultVersion, defaultCategories())
	if err != nil {
		panic(fmt.Sprintf("built-in taxonomy invalid: %v", err))
	}
	return t
}

// defaultCategories returns the built-in category tables.
func defaultCategories() []Category {
	return []Category{
		{Name: ProgrammingLanguages, Skills: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
			"go", "rust", "swift", "kotlin", "scala", "r", "sql",
		}},
		{Name: FrameworksLibraries, Skills: []string{
			"react", "angular", "vue", "django", "flask", "fastapi", "express",
			"spring", "rails", "node.js", "tensorflow", "pytorch", "pandas",
		}},
		{Name: Databases, Skills: []string{
			"mysql", "postgresql", "mongodb", "redis", "oracle", "sql server",
			"elasticsearch", "cassandra", "dynamodb",
		}},
		{Name: CloudDevops, Skills: []string{
			"aws", "azure", "google cloud", "docker", "kubernetes", "jenkins",
			"terraform", "ansible", "ci/cd", "microservices",
		}},
		{Name: SoftSkills, Skills: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"analytical", "project management",
		}},
		{Name: ToolsTechnologies, Skills: []string{
			"git", "jira", "api", "rest", "graphql", "agile", "scrum",
			"test driven development", "unit testing",
		}},
	}
}
