package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It gives inference callers a uniform way to describe what to pull out of
// free text such as a fetched job posting.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobRequirements")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// JobRequirementsSchema returns the extraction schema for raw job postings.
// Fetched postings run through this to produce a structured job profile the
// scoring pipeline can consume.
func JobRequirementsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobRequirements",
		Description: `You are an expert job posting parser.
Your task is to extract the hiring requirements from a raw job posting.
Use short canonical skill names ("python", "aws", "postgresql"), not sentences.
EXCLUDE: Application form fields, EEO statements, legal disclaimers, generic "About Company" boilerplate.`,
		Fields: []SchemaField{
			{
				Name:        "title",
				Type:        "\"string\"",
				Description: "Job title as posted",
				Required:    true,
			},
			{
				Name:        "required_skills",
				Type:        "[\"string\"]",
				Description: "Technologies and competencies the posting requires, one canonical name each",
				Required:    true,
			},
			{
				Name:        "nice_to_have_skills",
				Type:        "[\"string\"]",
				Description: "Preferred skills that are not hard requirements",
				Required:    false,
			},
			{
				Name:        "seniority_level",
				Type:        "\"string\"",
				Description: "One of: entry_level, mid_level, senior_level, management, specialist",
				Required:    false,
			},
			{
				Name:        "experience_years",
				Type:        "number",
				Description: "Minimum years of experience required; omit if not stated",
				Required:    false,
			},
			{
				Name:        "required_degree",
				Type:        "\"string\"",
				Description: "Minimum degree if stated (e.g., \"bachelor\", \"master\")",
				Required:    false,
			},
		},
	}
}

// ResumeProfileSchema returns the extraction schema for raw resume text,
// used when a candidate uploads an unstructured resume.
func ResumeProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeProfile",
		Description: `You are an expert resume parser.
Your task is to extract the candidate's profile from raw resume text.
Use short canonical skill names ("python", "aws", "postgresql"), not sentences.`,
		Fields: []SchemaField{
			{
				Name:        "name",
				Type:        "\"string\"",
				Description: "Candidate name if present",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Technologies and competencies the candidate demonstrates",
				Required:    true,
			},
			{
				Name:        "experience_years",
				Type:        "number",
				Description: "Total years of professional experience; omit if unclear",
				Required:    false,
			},
			{
				Name:        "degrees",
				Type:        "[\"string\"]",
				Description: "Degrees held (e.g., \"Bachelor of Science in Computer Science\")",
				Required:    false,
			},
		},
	}
}
