package actions

import (
	"context"
	"strings"

	"sanas-actions-backend/internal/ai"
)

// Completer is the language-model dependency of the pipeline. *ai.Client
// satisfies it; tests substitute a stub.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// IDFunc hands out unique action item ids. The production generator is the
// store's sequence (db.NextActionID).
type IDFunc func(ctx context.Context) (int, error)

type Extractor struct {
	AI Completer
}

func NewExtractor(aiClient Completer) *Extractor {
	return &Extractor{AI: aiClient}
}

// ExtractFromText runs the meeting notes through the model and returns
// validated action items. Blank input returns an empty list without a
// provider call. Malformed model output also yields an empty list; only a
// provider failure propagates as an error.
func (e *Extractor) ExtractFromText(ctx context.Context, text string, nextID IDFunc) ([]ActionItem, error) {
	if strings.TrimSpace(text) == "" {
		return []ActionItem{}, nil
	}

	responseText, err := e.AI.Complete(ctx, ai.ExtractionPrompt+text)
	if err != nil {
		return nil, err
	}

	candidates, ok := ai.ParseItems(responseText)
	if !ok {
		return []ActionItem{}, nil
	}

	items := make([]ActionItem, 0, len(candidates))
	for i, c := range candidates {
		id := i + 1
		if nextID != nil {
			id, err = nextID(ctx)
			if err != nil {
				return nil, err
			}
		}

		items = append(items, ActionItem{
			ID:       id,
			Title:    c.Title,
			Assignee: c.Assignee,
			DueDate:  c.DueDate,
			Selected: true,
			Overdue:  false,
		})
	}

	return items, nil
}
