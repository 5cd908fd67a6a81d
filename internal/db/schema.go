package db

import (
	"context"
	"database/sql"
)

// defaultSettings is the seed value for the user_settings row.
const defaultSettings = `{
	"reminders": {"enabled": true, "frequency": "Weekly", "day": "Monday", "time": "9:00 AM"},
	"notifications": {"on_create": true, "overdue_warnings": true},
	"defaults": {"project": "SANAS", "issue_type": "Task"}
}`

var defaultTeamMembers = [][5]string{
	{"John Smith", "JS", "@john.smith", "JIRA-123", "john.smith@example.com"},
	{"Sarah Lee", "SL", "@sarah.lee", "JIRA-456", "sarah.lee@example.com"},
	{"Muthu K", "MK", "@muthu.k", "JIRA-789", "muthu.k@example.com"},
	{"Anita Patel", "AP", "@anita.patel", "JIRA-101", "anita.patel@example.com"},
}

// InitSchema creates tables and seeds default data. Safe to run on every start.
func InitSchema(ctx context.Context, dbx *sql.DB) error {
	stmts := []string{
		`CREATE SEQUENCE IF NOT EXISTS action_item_ids START 1`,

		`CREATE TABLE IF NOT EXISTS team_members (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			initials TEXT NOT NULL,
			slack_id TEXT,
			jira_account_id TEXT,
			email TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS action_items (
			id INTEGER PRIMARY KEY DEFAULT nextval('action_item_ids'),
			title TEXT NOT NULL,
			assignee TEXT,
			due_date TEXT,
			selected BOOLEAN DEFAULT TRUE,
			overdue BOOLEAN DEFAULT FALSE,
			ticket_key TEXT,
			created_at TIMESTAMPTZ DEFAULT now(),
			completed_at TIMESTAMPTZ
		)`,
	}

	for _, stmt := range stmts {
		if _, err := dbx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return seedDefaults(ctx, dbx)
}

func seedDefaults(ctx context.Context, dbx *sql.DB) error {
	_, err := dbx.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES ('user_settings', $1::jsonb)
		ON CONFLICT (key) DO NOTHING
	`, defaultSettings)
	if err != nil {
		return err
	}

	var count int
	if err := dbx.QueryRowContext(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, m := range defaultTeamMembers {
		_, err := dbx.ExecContext(ctx, `
			INSERT INTO team_members (name, initials, slack_id, jira_account_id, email)
			VALUES ($1, $2, $3, $4, $5)
		`, m[0], m[1], m[2], m[3], m[4])
		if err != nil {
			return err
		}
	}

	return nil
}
