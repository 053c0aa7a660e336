package services

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/gemini"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/models"
)

// MinScore is the lowest score (inclusive) a match must reach to be shown.
const MinScore = 60

const matchPromptFormat = `
User lost item description:
%q

Compare with found items below.

Return ONLY valid JSON.
Format:
[
  { "id": "<id>", "score": 80, "reason": "why matched" }
]

Found items:
%s
`

// Matcher scores a user's lost-item description against the stored set.
type Matcher struct {
	Items ItemStore
	Model Inference
}

// MatchLost loads every found item, asks the model to score them against the
// description and joins surviving matches back to their records. Result order
// is whatever the model returned; no re-sorting happens here.
func (m *Matcher) MatchLost(ctx context.Context, description string) ([]models.MatchedItem, error) {
	items, err := m.Items.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load found items: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	prompt, err := buildMatchPrompt(description, items)
	if err != nil {
		return nil, err
	}

	raw, err := m.Model.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("match request failed: %w", err)
	}

	matches, err := gemini.ExtractMatches(raw)
	if err != nil {
		// Unparsable model output degrades to "no matches" rather than
		// failing the request.
		log.Error().Str("raw", raw).Err(err).Msg("invalid JSON from model")
		return nil, nil
	}

	byID := make(map[string]models.FoundItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	var results []models.MatchedItem
	for _, match := range matches {
		if match.Score < MinScore {
			continue
		}
		item, ok := byID[match.ID]
		if !ok {
			// The model sometimes invents ids; drop them quietly.
			continue
		}
		results = append(results, models.MatchedItem{
			FoundItem: item,
			Score:     match.Score,
			Reason:    match.Reason,
		})
	}
	return results, nil
}

func buildMatchPrompt(description string, items []models.FoundItem) (string, error) {
	simplified := make([]models.SimplifiedItem, 0, len(items))
	for i := range items {
		simplified = append(simplified, items[i].Simplified())
	}

	list, err := json.MarshalIndent(simplified, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to build match prompt: %w", err)
	}
	return fmt.Sprintf(matchPromptFormat, description, list), nil
}
