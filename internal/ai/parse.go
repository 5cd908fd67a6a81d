package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencedBlockPattern matches the first markdown code block, optionally tagged json.
var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*([\\s\\S]*?)```")

// Candidate is one raw action item as the model reported it.
// Missing fields decode to empty strings.
type Candidate struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"due_date"`
}

// ParseItems extracts the candidate list from a model reply. The second
// return value reports whether the reply held a well-formed JSON array, so
// callers can tell "no items found" apart from "unparseable output". Both
// collapse to an empty list at the pipeline boundary.
func ParseItems(responseText string) ([]Candidate, bool) {
	if responseText == "" {
		return nil, false
	}

	jsonText := strings.TrimSpace(responseText)
	if m := fencedBlockPattern.FindStringSubmatch(responseText); m != nil {
		jsonText = strings.TrimSpace(m[1])
	}

	var items []Candidate
	if err := json.Unmarshal([]byte(jsonText), &items); err != nil {
		return nil, false
	}

	return items, true
}
