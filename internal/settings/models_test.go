package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The patch type must tell "field absent" apart from "field set to empty",
// since only explicitly provided fields may change.
func TestTeamMemberUpdateDecoding(t *testing.T) {
	var patch TeamMemberUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"slack_id": "", "name": "New Name"}`), &patch))

	require.NotNil(t, patch.Name)
	assert.Equal(t, "New Name", *patch.Name)

	require.NotNil(t, patch.SlackID)
	assert.Equal(t, "", *patch.SlackID)

	assert.Nil(t, patch.Initials)
	assert.Nil(t, patch.JiraAccountID)
	assert.Nil(t, patch.Email)
}

func TestUserSettingsRoundTrip(t *testing.T) {
	raw := `{
		"reminders": {"enabled": false, "frequency": "Daily", "day": "Friday", "time": "8:00 AM"},
		"notifications": {"on_create": false, "overdue_warnings": true},
		"defaults": {"project": "OPS", "issue_type": "Bug"}
	}`

	var s UserSettings
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.False(t, s.Reminders.Enabled)
	assert.Equal(t, "Daily", s.Reminders.Frequency)
	assert.False(t, s.Notifications.OnCreate)
	assert.Equal(t, "OPS", s.Defaults.Project)
	assert.Equal(t, "Bug", s.Defaults.IssueType)
}
