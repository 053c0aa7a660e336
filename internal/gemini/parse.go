package gemini

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/models"
)

// ExtractMatches strips markdown code fences the model tends to wrap its
// output in and strict-decodes the remainder as a match array. A decode
// failure comes back as an error value; callers treat it as "no matches".
func ExtractMatches(raw string) ([]models.Match, error) {
	cleaned := stripFences(raw)

	var matches []models.Match
	if err := json.Unmarshal([]byte(cleaned), &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// stripFences removes ```json / ``` markers wherever they appear, matching
// the tolerant cleanup the prompt contract requires.
func stripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
