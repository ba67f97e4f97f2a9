package llm

import "strings"

// CleanJSONBlock isolates the JSON payload of a model response. Models wrap
// JSON in markdown fences or conversational preamble even when instructed
// not to, so this strips fences, then extracts the first balanced JSON
// object or array if the text still does not start with one.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	switch {
	case objStart >= 0 && (arrStart < 0 || objStart < arrStart):
		if extracted := extractJSONObject(text[objStart:]); extracted != "" {
			return extracted
		}
	case arrStart >= 0:
		if extracted := extractJSONArray(text[arrStart:]); extracted != "" {
			return extracted
		}
	}
	return text
}

// extractJSONObject returns the balanced JSON object at the start of text,
// or "" when text does not begin with one. Braces inside string literals do
// not count toward balancing.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of text, or
// "" when text does not begin with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, open, closing byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == closing:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
