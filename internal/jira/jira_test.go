package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicAuth(t *testing.T) {
	// base64("user@example.com:token123")
	got := BasicAuth("user@example.com", "token123")
	assert.Equal(t, "Basic dXNlckBleGFtcGxlLmNvbTp0b2tlbjEyMw==", got)
}

func TestBuildIssuePayload(t *testing.T) {
	cfg := Config{Project: "SANAS", IssueType: "Task", Label: "meeting-action"}

	t.Run("full item", func(t *testing.T) {
		payload := buildIssuePayload(Item{
			ID: 1, Title: "Review the roadmap", Assignee: "John", DueDate: "Fri",
		}, cfg)

		fields := payload["fields"].(map[string]interface{})
		assert.Equal(t, "Review the roadmap", fields["summary"])
		assert.Equal(t, map[string]string{"key": "SANAS"}, fields["project"])
		assert.Equal(t, map[string]string{"name": "Task"}, fields["issuetype"])
		assert.Equal(t, []string{"meeting-action"}, fields["labels"])

		desc := fields["description"].(map[string]interface{})
		content := desc["content"].([]map[string]interface{})
		text := content[0]["content"].([]map[string]interface{})[0]["text"].(string)
		assert.Equal(t, "Assigned to: John\nDue: Fri", text)
	})

	t.Run("no assignee or due date omits description", func(t *testing.T) {
		payload := buildIssuePayload(Item{ID: 2, Title: "Bare task"}, cfg)

		fields := payload["fields"].(map[string]interface{})
		_, hasDesc := fields["description"]
		assert.False(t, hasDesc)
	})
}

func TestCreateTicketsEmptyInput(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	svc := New(server.URL, "user@example.com", "token")
	result := svc.CreateTickets(context.Background(), nil, Config{})

	assert.Empty(t, result.Tickets)
	assert.Empty(t, result.Failed)
	assert.Zero(t, calls, "empty batch must not call the API")
}

func TestCreateTicketsPartialFailure(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/rest/api/3/issue", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		// Second call fails, the rest succeed.
		if calls == 2 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"key": fmt.Sprintf("SANAS-%d", calls),
		})
	}))
	defer server.Close()

	svc := New(server.URL, "user@example.com", "token")
	items := []Item{
		{ID: 10, Title: "first", Assignee: "John"},
		{ID: 20, Title: "second"},
		{ID: 30, Title: "third"},
	}

	result := svc.CreateTickets(context.Background(), items, Config{})

	require.Len(t, result.Tickets, 2)
	assert.Equal(t, []int{20}, result.Failed)

	assert.Equal(t, 10, result.Tickets[0].ItemID)
	assert.Equal(t, "SANAS-1", result.Tickets[0].Key)
	assert.Equal(t, "John", result.Tickets[0].Assignee)
	assert.Equal(t, server.URL+"/browse/SANAS-1", result.Tickets[0].URL)
	assert.Equal(t, 30, result.Tickets[1].ItemID)
	assert.Equal(t, "SANAS-3", result.Tickets[1].Key)
}

func TestCreatedTicketItemIDNotSerialized(t *testing.T) {
	raw, err := json.Marshal(CreatedTicket{ItemID: 7, Key: "SANAS-7", URL: "u"})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, map[string]interface{}{"key": "SANAS-7", "url": "u"}, fields)
}

func TestCreateTicketsAppliesConfigDefaults(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(map[string]string{"key": "SANAS-1"})
	}))
	defer server.Close()

	svc := New(server.URL, "user@example.com", "token")
	result := svc.CreateTickets(context.Background(), []Item{{ID: 1, Title: "t"}}, Config{})

	require.Len(t, result.Tickets, 1)

	var payload struct {
		Fields struct {
			Project   map[string]string `json:"project"`
			IssueType map[string]string `json:"issuetype"`
			Labels    []string          `json:"labels"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "SANAS", payload.Fields.Project["key"])
	assert.Equal(t, "Task", payload.Fields.IssueType["name"])
	assert.Equal(t, []string{"meeting-action"}, payload.Fields.Labels)
}

func TestCreateTicketMissingKeyInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	svc := New(server.URL, "user@example.com", "token")
	result := svc.CreateTickets(context.Background(), []Item{{ID: 7, Title: "t"}}, Config{})

	assert.Empty(t, result.Tickets)
	assert.Equal(t, []int{7}, result.Failed)
}

func TestCreateTicketsRejectsEmptyTitle(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]string{"key": "SANAS-1"})
	}))
	defer server.Close()

	svc := New(server.URL, "user@example.com", "token")
	items := []Item{
		{ID: 1, Title: ""},
		{ID: 2, Title: "valid"},
	}

	result := svc.CreateTickets(context.Background(), items, Config{})

	assert.Equal(t, []int{1}, result.Failed)
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, 1, calls, "empty title must be rejected before the API call")
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	svc := New("https://example.atlassian.net/", "u", "t")
	assert.Equal(t, "https://example.atlassian.net", svc.BaseURL)
}
