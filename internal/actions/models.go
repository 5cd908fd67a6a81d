package actions

import "sanas-actions-backend/internal/jira"

type ActionItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Assignee string `json:"assignee,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
	Selected bool   `json:"selected"`
	Overdue  bool   `json:"overdue"`
}

type ExtractRequest struct {
	InputType string `json:"input_type"`
	Content   string `json:"content"`
}

type ExtractResponse struct {
	ActionItems []ActionItem `json:"action_items"`
	RawText     string       `json:"raw_text"`
}

type TicketCreateRequest struct {
	ActionIDs []int       `json:"action_ids"`
	Config    jira.Config `json:"config"`
}

type NotificationRequest struct {
	Assignee  string `json:"assignee"`
	Message   string `json:"message"`
	TicketKey string `json:"ticket_key"`
}

type ReminderRequest struct {
	ActionIDs []int    `json:"action_ids"`
	Assignees []string `json:"assignees"`
}
