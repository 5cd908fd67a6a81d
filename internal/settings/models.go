package settings

type TeamMember struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Initials      string `json:"initials"`
	SlackID       string `json:"slack_id,omitempty"`
	JiraAccountID string `json:"jira_account_id,omitempty"`
	Email         string `json:"email,omitempty"`
}

type TeamMemberCreate struct {
	Name          string `json:"name"`
	Initials      string `json:"initials"`
	SlackID       string `json:"slack_id"`
	JiraAccountID string `json:"jira_account_id"`
	Email         string `json:"email"`
}

// TeamMemberUpdate is a partial patch: nil fields are left untouched.
type TeamMemberUpdate struct {
	Name          *string `json:"name"`
	Initials      *string `json:"initials"`
	SlackID       *string `json:"slack_id"`
	JiraAccountID *string `json:"jira_account_id"`
	Email         *string `json:"email"`
}

type ReminderSettings struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"`
	Day       string `json:"day"`
	Time      string `json:"time"`
}

type NotificationSettings struct {
	OnCreate        bool `json:"on_create"`
	OverdueWarnings bool `json:"overdue_warnings"`
}

type DefaultSettings struct {
	Project   string `json:"project"`
	IssueType string `json:"issue_type"`
}

type UserSettings struct {
	Reminders     ReminderSettings     `json:"reminders"`
	Notifications NotificationSettings `json:"notifications"`
	Defaults      DefaultSettings      `json:"defaults"`
}

// DefaultUserSettings mirrors the seed row written by db.InitSchema.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Reminders: ReminderSettings{
			Enabled:   true,
			Frequency: "Weekly",
			Day:       "Monday",
			Time:      "9:00 AM",
		},
		Notifications: NotificationSettings{
			OnCreate:        true,
			OverdueWarnings: true,
		},
		Defaults: DefaultSettings{
			Project:   "SANAS",
			IssueType: "Task",
		},
	}
}

type IntegrationStatus struct {
	JiraConnected  bool   `json:"jira_connected"`
	SlackConnected bool   `json:"slack_connected"`
	JiraProject    string `json:"jira_project,omitempty"`
	SlackWorkspace string `json:"slack_workspace,omitempty"`
}
