package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompleter records whether it was called and replies with a canned text.
type stubCompleter struct {
	reply  string
	err    error
	called bool
	prompt string
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.called = true
	s.prompt = prompt
	return s.reply, s.err
}

func TestExtractFromTextBlankInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		stub := &stubCompleter{reply: `[{"title": "should not happen"}]`}
		extractor := NewExtractor(stub)

		items, err := extractor.ExtractFromText(context.Background(), text, nil)

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.False(t, stub.called, "blank input must not reach the provider")
	}
}

func TestExtractFromTextScenario(t *testing.T) {
	stub := &stubCompleter{
		reply: `[{"title":"Review the roadmap","assignee":"John","due_date":"Fri"}]`,
	}
	extractor := NewExtractor(stub)

	items, err := extractor.ExtractFromText(
		context.Background(), "John to review the roadmap by Friday", nil,
	)

	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "Review the roadmap", item.Title)
	assert.Equal(t, "John", item.Assignee)
	assert.Equal(t, "Fri", item.DueDate)
	assert.True(t, item.Selected)
	assert.False(t, item.Overdue)

	assert.Contains(t, stub.prompt, "John to review the roadmap by Friday")
}

func TestExtractFromTextSequentialIDsWithoutGenerator(t *testing.T) {
	stub := &stubCompleter{
		reply: `[{"title":"A"},{"title":"B"},{"title":"C"}]`,
	}
	extractor := NewExtractor(stub)

	items, err := extractor.ExtractFromText(context.Background(), "notes", nil)

	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
	}
}

func TestExtractFromTextUsesIDGenerator(t *testing.T) {
	stub := &stubCompleter{reply: `[{"title":"A"},{"title":"B"}]`}
	extractor := NewExtractor(stub)

	next := 100
	nextID := func(ctx context.Context) (int, error) {
		next++
		return next, nil
	}

	items, err := extractor.ExtractFromText(context.Background(), "notes", nextID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 101, items[0].ID)
	assert.Equal(t, 102, items[1].ID)
}

func TestExtractFromTextMalformedReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"prose", "No action items here."},
		{"object", `{"title": "not an array"}`},
		{"broken json", `[{"title": "unterminated`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := NewExtractor(&stubCompleter{reply: tt.reply})

			items, err := extractor.ExtractFromText(context.Background(), "notes", nil)

			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestExtractFromTextProviderFailurePropagates(t *testing.T) {
	stub := &stubCompleter{err: errors.New("quota exceeded")}
	extractor := NewExtractor(stub)

	_, err := extractor.ExtractFromText(context.Background(), "notes", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRegistryPutGet(t *testing.T) {
	reg := NewRegistry()
	reg.Put([]ActionItem{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
	})

	item, ok := reg.Get(2)
	require.True(t, ok)
	assert.Equal(t, "second", item.Title)

	_, ok = reg.Get(99)
	assert.False(t, ok)

	// Last write wins on duplicate id.
	reg.Put([]ActionItem{{ID: 1, Title: "rewritten"}})
	item, ok = reg.Get(1)
	require.True(t, ok)
	assert.Equal(t, "rewritten", item.Title)
}

func TestPlaceholder(t *testing.T) {
	item := Placeholder(42)

	assert.Equal(t, 42, item.ID)
	assert.Equal(t, "Action Item 42", item.Title)
	assert.Empty(t, item.Assignee)
	assert.Empty(t, item.DueDate)
	assert.True(t, item.Selected)
	assert.False(t, item.Overdue)
}
