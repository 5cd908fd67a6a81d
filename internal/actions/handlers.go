package actions

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"unicode/utf8"

	"sanas-actions-backend/internal/db"
	"sanas-actions-backend/internal/jira"
	"sanas-actions-backend/internal/settings"
	"sanas-actions-backend/internal/slack"
)

const maxUploadBytes = 10 * 1024 * 1024 // 10MB

var allowedUploadTypes = map[string]bool{
	"text/plain":    true,
	"text/markdown": true,
}

type Handler struct {
	DB        *sql.DB
	Extractor *Extractor
	Registry  *Registry
	Jira      *jira.Service
	Slack     *slack.Service
}

func NewHandler(dbx *sql.DB, extractor *Extractor, registry *Registry, jiraSvc *jira.Service, slackSvc *slack.Service) *Handler {
	return &Handler{
		DB:        dbx,
		Extractor: extractor,
		Registry:  registry,
		Jira:      jiraSvc,
		Slack:     slackSvc,
	}
}

func (h *Handler) nextID(ctx context.Context) (int, error) {
	return db.NextActionID(ctx, h.DB)
}

// extractAndStage runs the pipeline, persists the items and stages them in
// the registry for later ticket creation.
func (h *Handler) extractAndStage(w http.ResponseWriter, r *http.Request, text string) {
	items, err := h.Extractor.ExtractFromText(r.Context(), text, h.nextID)
	if err != nil {
		http.Error(w, "extraction failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	for _, item := range items {
		if err := db.InsertActionItem(r.Context(), h.DB, item.ID, item.Title, item.Assignee, item.DueDate, item.Selected, item.Overdue); err != nil {
			log.Printf("persist action item %d: %v", item.ID, err)
		}
	}
	h.Registry.Put(items)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ExtractResponse{
		ActionItems: items,
		RawText:     text,
	})
}

// Extract handles POST /api/actions/extract.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if req.InputType != "text" {
		http.Error(w, "invalid input type", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		http.Error(w, "content is required for text input type", http.StatusBadRequest)
		return
	}

	h.extractAndStage(w, r, req.Content)
}

// ExtractFile handles POST /api/actions/extract-file (multipart upload).
func (h *Handler) ExtractFile(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		http.Error(w, "unsupported file type: "+contentType, http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		http.Error(w, "could not read file", http.StatusBadRequest)
		return
	}
	if len(content) > maxUploadBytes {
		http.Error(w, "file too large, maximum size is 10MB", http.StatusRequestEntityTooLarge)
		return
	}
	if !utf8.Valid(content) {
		http.Error(w, "could not parse file content, please use a text file", http.StatusBadRequest)
		return
	}

	h.extractAndStage(w, r, string(content))
}

// CreateTickets handles POST /api/actions/tickets.
func (h *Handler) CreateTickets(w http.ResponseWriter, r *http.Request) {
	var req TicketCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(req.ActionIDs) == 0 {
		http.Error(w, "at least one action id is required", http.StatusBadRequest)
		return
	}

	items := make([]ActionItem, 0, len(req.ActionIDs))
	for _, id := range req.ActionIDs {
		item, ok := h.Registry.Get(id)
		if !ok {
			item = Placeholder(id)
		}
		items = append(items, item)
	}

	jiraItems := make([]jira.Item, 0, len(items))
	for _, item := range items {
		jiraItems = append(jiraItems, jira.Item{
			ID:       item.ID,
			Title:    item.Title,
			Assignee: item.Assignee,
			DueDate:  item.DueDate,
		})
	}

	result := h.Jira.CreateTickets(r.Context(), jiraItems, req.Config)

	for _, ticket := range result.Tickets {
		if _, err := db.MarkCompleted(r.Context(), h.DB, ticket.ItemID, ticket.Key); err != nil {
			log.Printf("mark action item %d completed: %v", ticket.ItemID, err)
		}
	}

	h.notifyCreated(r.Context(), result.Tickets)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// notifyCreated messages each ticket's assignee when the on_create
// notification setting is enabled. Failures are soft and only logged.
func (h *Handler) notifyCreated(ctx context.Context, tickets []jira.CreatedTicket) {
	if len(tickets) == 0 {
		return
	}

	userSettings, err := settings.GetUserSettings(ctx, h.DB)
	if err != nil {
		log.Printf("load settings for ticket notifications: %v", err)
		return
	}
	if !userSettings.Notifications.OnCreate {
		return
	}

	members, err := settings.ListMembers(ctx, h.DB)
	if err != nil {
		log.Printf("list members for ticket notifications: %v", err)
		return
	}

	for _, ticket := range tickets {
		if ticket.Assignee == "" {
			continue
		}
		res := h.Slack.SendTicketNotification(ctx, ticket.Assignee, ticket.Key, ticket.URL, members)
		if !res.Success {
			log.Printf("ticket notification for %s: %s", ticket.Assignee, res.Message)
		}
	}
}

// SendNotification handles POST /api/notifications/send.
func (h *Handler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Assignee == "" {
		http.Error(w, "assignee is required", http.StatusBadRequest)
		return
	}

	members, err := settings.ListMembers(r.Context(), h.DB)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	result := h.Slack.SendNotification(r.Context(), req.Assignee, req.Message, members, req.TicketKey)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// SendReminders handles POST /api/notifications/reminders.
func (h *Handler) SendReminders(w http.ResponseWriter, r *http.Request) {
	var req ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(req.Assignees) == 0 {
		http.Error(w, "at least one assignee is required", http.StatusBadRequest)
		return
	}

	members, err := settings.ListMembers(r.Context(), h.DB)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	message := "📋 *Reminder: You have pending action items*\n\nPlease review and complete your assigned tasks."
	result := h.Slack.SendBulk(r.Context(), req.Assignees, message, members)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
