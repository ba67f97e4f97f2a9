package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	tax := Default()
	assert.Equal(t, DefaultVersion, tax.Version())
	assert.Len(t, tax.Categories(), 6)
}

func TestNew_RejectsDuplicateAcrossCategories(t *testing.T) {
	_, err := New("test", []Category{
		{Name: "programming_languages", Skills: []string{"python"}},
		{Name: "tools_technologies", Skills: []string{"Python"}}, // same canonical token
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "python")
}

func TestNew_RejectsEmptyCategory(t *testing.T) {
	_, err := New("test", []Category{{Name: "databases", Skills: nil}})
	assert.Error(t, err)

	_, err = New("test", nil)
	assert.Error(t, err)
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	tax := Default()

	found := tax.ExtractSkills("We use JavaScript heavily")
	assert.Contains(t, found[ProgrammingLanguages], "javascript")
	assert.NotContains(t, found[ProgrammingLanguages], "java", "java must not fire inside javascript")

	found = tax.ExtractSkills("Experience with Django required")
	assert.Contains(t, found[FrameworksLibraries], "django")
	assert.NotContains(t, found[ProgrammingLanguages], "go", "go must not fire inside django")
}

func TestExtractSkills_SymbolTokens(t *testing.T) {
	tax := Default()
	found := tax.ExtractSkills("Strong C++ and C# background, Node.js a plus")
	assert.Contains(t, found[ProgrammingLanguages], "c++")
	assert.Contains(t, found[ProgrammingLanguages], "c#")
	assert.Contains(t, found[FrameworksLibraries], "node.js")
}

func TestExtractSkills_AbsentCategoriesOmitted(t *testing.T) {
	tax := Default()
	found := tax.ExtractSkills("Python developer")

	assert.Contains(t, found, ProgrammingLanguages)
	_, present := found[Databases]
	assert.False(t, present, "categories with no hits must be absent, not empty")
}

func TestExtractSkills_EmptyText(t *testing.T) {
	tax := Default()
	assert.Empty(t, tax.ExtractSkills(""))
	assert.Empty(t, tax.ExtractSkills("   "))
}

func TestExtractFromList_ExactAndPhrase(t *testing.T) {
	tax := Default()
	found := tax.ExtractFromList([]string{
		"Python",
		"Golang", // alias -> go
		"3+ years with PostgreSQL databases", // phrase fallback
		"underwater basket weaving",          // not in taxonomy
	})

	assert.Contains(t, found[ProgrammingLanguages], "python")
	assert.Contains(t, found[ProgrammingLanguages], "go")
	assert.Contains(t, found[Databases], "postgresql")
	assert.Equal(t, 3, found.Total())
}

func TestExtractFromList_Deduplicates(t *testing.T) {
	tax := Default()
	found := tax.ExtractFromList([]string{"Python", "python", "PYTHON"})
	assert.Equal(t, []string{"python"}, found[ProgrammingLanguages])
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	content := `{
		"version": "test.1",
		"categories": [
			{"name": "programming_languages", "skills": ["python", "go"]},
			{"name": "databases", "skills": ["postgresql"]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	tax, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test.1", tax.Version())
	assert.Contains(t, tax.ExtractSkills("go and postgresql")[Databases], "postgresql")
}

func TestLoad_RejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.json")

	// Schema violation: empty categories
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "x", "categories": []}`), 0o600))
	_, err := Load(path)
	assert.Error(t, err)

	// Not JSON at all
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))
	_, err = Load(path)
	assert.Error(t, err)

	// Missing file
	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
