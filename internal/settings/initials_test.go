package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "John Smith", "JS"},
		{"single word", "Madonna", "M"},
		{"three words truncate to two", "Anita Patel Kumar", "AP"},
		{"lowercase input", "sarah lee", "SL"},
		{"extra whitespace", "  Muthu   K  ", "MK"},
		{"empty string", "", ""},
		{"non-ascii first letters", "Øyvind Åse", "ØÅ"},
		{"one rune per token", "ßen Smith", "ßS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveInitials(tt.in))
		})
	}
}

func TestDeriveInitialsIdempotent(t *testing.T) {
	first := DeriveInitials("John Smith")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, DeriveInitials("John Smith"))
	}
}

func TestDefaultUserSettings(t *testing.T) {
	s := DefaultUserSettings()

	assert.True(t, s.Reminders.Enabled)
	assert.Equal(t, "Weekly", s.Reminders.Frequency)
	assert.Equal(t, "Monday", s.Reminders.Day)
	assert.Equal(t, "9:00 AM", s.Reminders.Time)
	assert.True(t, s.Notifications.OnCreate)
	assert.True(t, s.Notifications.OverdueWarnings)
	assert.Equal(t, "SANAS", s.Defaults.Project)
	assert.Equal(t, "Task", s.Defaults.IssueType)
}
