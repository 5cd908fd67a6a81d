package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sanas-actions-backend/internal/settings"
)

const defaultAPIBase = "https://slack.com/api"

// NotificationResult is a soft outcome: lookup misses, missing handles and
// transport errors all land here with Success=false, never as an error.
type NotificationResult struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

type BulkResult struct {
	TotalSent        int      `json:"total_sent"`
	TotalFailed      int      `json:"total_failed"`
	FailedRecipients []string `json:"failed_recipients"`
}

type Service struct {
	BotToken string
	APIBase  string

	httpClient *http.Client
}

func New(botToken string) *Service {
	return &Service{
		BotToken: botToken,
		APIBase:  defaultAPIBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// findMember resolves a name case-insensitively; first match wins.
func findMember(name string, members []settings.TeamMember) *settings.TeamMember {
	for i := range members {
		if strings.EqualFold(members[i].Name, name) {
			return &members[i]
		}
	}
	return nil
}

// SendMessage posts to a channel or user id via chat.postMessage.
func (s *Service) SendMessage(ctx context.Context, channel, text string, blocks []map[string]interface{}) NotificationResult {
	payload := map[string]interface{}{
		"channel": channel,
		"text":    text,
	}
	if len(blocks) > 0 {
		payload["blocks"] = blocks
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return NotificationResult{
			Success:    false,
			Message:    "Error sending message: " + err.Error(),
			Recipients: []string{},
		}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.APIBase+"/chat.postMessage", bytes.NewBuffer(payloadJSON))
	if err != nil {
		return NotificationResult{
			Success:    false,
			Message:    "Error sending message: " + err.Error(),
			Recipients: []string{},
		}
	}
	req.Header.Set("Authorization", "Bearer "+s.BotToken)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return NotificationResult{
			Success:    false,
			Message:    "Error sending message: " + err.Error(),
			Recipients: []string{},
		}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return NotificationResult{
			Success:    false,
			Message:    "Error sending message: " + err.Error(),
			Recipients: []string{},
		}
	}

	var reply struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resBody, &reply); err != nil || !reply.OK {
		reason := reply.Error
		if reason == "" {
			reason = "Unknown error"
		}
		return NotificationResult{
			Success:    false,
			Message:    "Failed to send message: " + reason,
			Recipients: []string{},
		}
	}

	return NotificationResult{
		Success:    true,
		Message:    "Message sent successfully",
		Recipients: []string{channel},
	}
}

// SendNotification resolves the assignee through the directory and messages
// their Slack id. ticketKey, when set, is appended as a trailer line.
func (s *Service) SendNotification(ctx context.Context, assignee, message string, members []settings.TeamMember, ticketKey string) NotificationResult {
	member := findMember(assignee, members)
	if member == nil {
		return NotificationResult{
			Success:    false,
			Message:    fmt.Sprintf("Team member '%s' not found", assignee),
			Recipients: []string{},
		}
	}

	if member.SlackID == "" {
		return NotificationResult{
			Success:    false,
			Message:    fmt.Sprintf("Team member '%s' has no Slack ID configured", assignee),
			Recipients: []string{},
		}
	}

	fullMessage := message
	if ticketKey != "" {
		fullMessage = message + "\n\nTicket: " + ticketKey
	}

	result := s.SendMessage(ctx, member.SlackID, fullMessage, nil)
	if result.Success {
		return NotificationResult{
			Success:    true,
			Message:    "Notification sent successfully",
			Recipients: []string{assignee},
		}
	}
	return result
}

// SendTicketNotification sends the canned ticket-assigned message.
func (s *Service) SendTicketNotification(ctx context.Context, assignee, ticketKey, ticketURL string, members []settings.TeamMember) NotificationResult {
	message := fmt.Sprintf(
		"🎫 A new Jira ticket has been assigned to you!\n\n*<%s|%s>*\n\nPlease review and take action.",
		ticketURL, ticketKey,
	)
	return s.SendNotification(ctx, assignee, message, members, ticketKey)
}

// SendBulk notifies each assignee in input order. One failure does not stop
// the remaining sends.
func (s *Service) SendBulk(ctx context.Context, assignees []string, message string, members []settings.TeamMember) BulkResult {
	result := BulkResult{
		FailedRecipients: []string{},
	}

	if len(assignees) == 0 {
		return result
	}

	for _, assignee := range assignees {
		res := s.SendNotification(ctx, assignee, message, members, "")
		if res.Success {
			result.TotalSent++
		} else {
			result.TotalFailed++
			result.FailedRecipients = append(result.FailedRecipients, assignee)
		}
	}

	return result
}
