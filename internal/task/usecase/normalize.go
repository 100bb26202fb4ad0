package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"echonote/internal/task"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeModelResponse removes markdown code fences and leading/trailing
// prose that LLMs often wrap around JSON output.
func sanitizeModelResponse(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: cut from the first [ or { to the last ] or }.
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// parseCandidates validates the raw model text into task candidates.
// Elements without a text field are dropped, never fatal. A response that is
// not a JSON array at all returns an error so the caller can log the
// degradation; the model text is only ever parsed, never evaluated.
func parseCandidates(raw string) ([]task.Candidate, error) {
	cleaned := sanitizeModelResponse(raw)

	var parsed []task.Candidate
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, err
	}

	candidates := make([]task.Candidate, 0, len(parsed))
	for _, c := range parsed {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
