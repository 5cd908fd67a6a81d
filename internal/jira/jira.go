package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultProject   = "SANAS"
	DefaultIssueType = "Task"
	DefaultLabel     = "meeting-action"

	createIssuePath = "/rest/api/3/issue"
)

// Config selects project, issue type and label for created tickets.
type Config struct {
	Project   string `json:"project"`
	IssueType string `json:"issue_type"`
	Label     string `json:"label"`
}

func (c Config) withDefaults() Config {
	if c.Project == "" {
		c.Project = DefaultProject
	}
	if c.IssueType == "" {
		c.IssueType = DefaultIssueType
	}
	if c.Label == "" {
		c.Label = DefaultLabel
	}
	return c
}

// Item is the dispatcher's view of an action item.
type Item struct {
	ID       int
	Title    string
	Assignee string
	DueDate  string
}

// CreatedTicket describes one successfully created issue. ItemID ties the
// ticket back to its action item; it is not part of the response body.
type CreatedTicket struct {
	ItemID   int    `json:"-"`
	Key      string `json:"key"`
	Assignee string `json:"assignee,omitempty"`
	URL      string `json:"url"`
}

// TicketResult carries the per-item outcome of a batch.
type TicketResult struct {
	Tickets []CreatedTicket `json:"tickets"`
	Failed  []int           `json:"failed"`
}

type Service struct {
	BaseURL  string
	Email    string
	APIToken string

	httpClient *http.Client
}

func New(baseURL, email, apiToken string) *Service {
	return &Service{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Email:    email,
		APIToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BasicAuth builds the Authorization header value for a Jira API token.
func BasicAuth(email, apiToken string) string {
	credentials := email + ":" + apiToken
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// buildIssuePayload converts an action item into a create-issue request body.
// Assignee and due date go into the description; absent fields produce no line.
func buildIssuePayload(item Item, cfg Config) map[string]interface{} {
	fields := map[string]interface{}{
		"project":   map[string]string{"key": cfg.Project},
		"issuetype": map[string]string{"name": cfg.IssueType},
		"summary":   item.Title,
		"labels":    []string{cfg.Label},
	}

	var descLines []string
	if item.Assignee != "" {
		descLines = append(descLines, "Assigned to: "+item.Assignee)
	}
	if item.DueDate != "" {
		descLines = append(descLines, "Due: "+item.DueDate)
	}

	if len(descLines) > 0 {
		fields["description"] = map[string]interface{}{
			"type":    "doc",
			"version": 1,
			"content": []map[string]interface{}{
				{
					"type": "paragraph",
					"content": []map[string]interface{}{
						{"type": "text", "text": strings.Join(descLines, "\n")},
					},
				},
			},
		}
	}

	return map[string]interface{}{"fields": fields}
}

// CreateTicket creates a single issue and returns the ticket details.
func (s *Service) CreateTicket(ctx context.Context, item Item, cfg Config) (CreatedTicket, error) {
	if item.Title == "" {
		return CreatedTicket{}, fmt.Errorf("action item %d has no title", item.ID)
	}

	payload := buildIssuePayload(item, cfg)

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return CreatedTicket{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.BaseURL+createIssuePath, bytes.NewBuffer(payloadJSON))
	if err != nil {
		return CreatedTicket{}, err
	}
	req.Header.Set("Authorization", BasicAuth(s.Email, s.APIToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return CreatedTicket{}, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return CreatedTicket{}, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return CreatedTicket{}, fmt.Errorf("jira api: status %d: %s", res.StatusCode, resBody)
	}

	var created struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(resBody, &created); err != nil {
		return CreatedTicket{}, err
	}
	if created.Key == "" {
		return CreatedTicket{}, fmt.Errorf("jira api: response has no ticket key")
	}

	return CreatedTicket{
		ItemID:   item.ID,
		Key:      created.Key,
		Assignee: item.Assignee,
		URL:      s.BaseURL + "/browse/" + created.Key,
	}, nil
}

// CreateTickets creates one issue per item. A single item's failure is
// recorded against its id and the batch continues; it never aborts early.
func (s *Service) CreateTickets(ctx context.Context, items []Item, cfg Config) TicketResult {
	result := TicketResult{
		Tickets: []CreatedTicket{},
		Failed:  []int{},
	}

	if len(items) == 0 {
		return result
	}

	cfg = cfg.withDefaults()

	for _, item := range items {
		ticket, err := s.CreateTicket(ctx, item, cfg)
		if err != nil {
			result.Failed = append(result.Failed, item.ID)
			continue
		}
		result.Tickets = append(result.Tickets, ticket)
	}

	return result
}
