// README: Best-effort JSON recovery from model output wrapped in prose or markdown.
package ai

import (
	"encoding/json"
	"strings"
)

// ExtractJSON recovers a JSON value from text that should contain one but
// may wrap it in markdown fences or conversational chatter. It tries the
// text as-is, then the slice between the first opening delimiter and the
// last matching closing delimiter. When nothing parses it returns the
// empty value for the expected shape ("{}" or "[]") instead of failing,
// so callers must always validate the result.
func ExtractJSON(text string, expectArray bool) json.RawMessage {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}

	opening, closing := "{", "}"
	if expectArray {
		opening, closing = "[", "]"
	}

	start := strings.Index(trimmed, opening)
	end := strings.LastIndex(trimmed, closing)
	if start != -1 && end != -1 && end > start {
		candidate := trimmed[start : end+1]
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate)
		}
	}

	if expectArray {
		return json.RawMessage("[]")
	}
	return json.RawMessage("{}")
}
