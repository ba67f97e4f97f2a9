package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// taxonomySchema validates taxonomy override files before they are parsed.
// A file that fails validation aborts startup; a malformed taxonomy must
// never reach per-request scoring.
const taxonomySchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["version", "categories"],
	"properties": {
		"version": {"type": "string", "minLength": 1},
		"categories": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "skills"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"skills": {
						"type": "array",
						"minItems": 1,
						"items": {"type": "string", "minLength": 1}
					}
				}
			}
		}
	}
}`

// taxonomyFile is the on-disk shape of a taxonomy override.
type taxonomyFile struct {
	Version    string     `json:"version"`
	Categories []Category `json:"categories"`
}

// Load reads a taxonomy override from a JSON file, validating it against the
// taxonomy schema and the disjointness invariant. Intended for process
// startup only.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(taxonomySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate taxonomy file %s: %w", path, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("taxonomy file %s is invalid: %s", path, formatSchemaErrors(result))
	}

	var file taxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}

	return New(file.Version, file.Categories)
}

// formatSchemaErrors joins schema violations into one message.
func formatSchemaErrors(result *gojsonschema.Result) string {
	msg := ""
	for i, desc := range result.Errors() {
		if i > 0 {
			msg += "; "
		}
		msg += desc.String()
	}
	return msg
}
