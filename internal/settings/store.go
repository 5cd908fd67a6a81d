package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
)

const settingsKey = "user_settings"

// GetUserSettings reads the singleton settings blob, falling back to defaults
// when the row is missing.
func GetUserSettings(ctx context.Context, dbx *sql.DB) (UserSettings, error) {
	var raw []byte
	err := dbx.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = $1`, settingsKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return DefaultUserSettings(), nil
	}
	if err != nil {
		return UserSettings{}, err
	}

	var s UserSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return UserSettings{}, err
	}
	return s, nil
}

// SaveUserSettings replaces the settings blob wholesale.
func SaveUserSettings(ctx context.Context, dbx *sql.DB, s UserSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = dbx.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, settingsKey, raw)
	return err
}

const memberColumns = `id, name, initials, COALESCE(slack_id,''), COALESCE(jira_account_id,''), COALESCE(email,'')`

func scanMember(row interface{ Scan(...any) error }) (TeamMember, error) {
	var m TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Initials, &m.SlackID, &m.JiraAccountID, &m.Email)
	return m, err
}

// ListMembers returns the roster ordered by name, then id.
func ListMembers(ctx context.Context, dbx *sql.DB) ([]TeamMember, error) {
	rows, err := dbx.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM team_members ORDER BY name, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []TeamMember{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetMember returns the member and false when the id is unknown.
func GetMember(ctx context.Context, dbx *sql.DB, id int) (TeamMember, bool, error) {
	row := dbx.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM team_members WHERE id = $1`, id,
	)
	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return TeamMember{}, false, nil
	}
	if err != nil {
		return TeamMember{}, false, err
	}
	return m, true, nil
}

// CreateMember inserts a new member, deriving initials from the name when
// none are supplied.
func CreateMember(ctx context.Context, dbx *sql.DB, in TeamMemberCreate) (TeamMember, error) {
	initials := strings.TrimSpace(in.Initials)
	if initials == "" {
		initials = DeriveInitials(in.Name)
	}

	row := dbx.QueryRowContext(ctx, `
		INSERT INTO team_members (name, initials, slack_id, jira_account_id, email)
		VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''))
		RETURNING `+memberColumns+`
	`, in.Name, initials, in.SlackID, in.JiraAccountID, in.Email)

	return scanMember(row)
}

// UpdateMember patches only the explicitly provided fields. Returns false
// when the id is unknown.
func UpdateMember(ctx context.Context, dbx *sql.DB, id int, patch TeamMemberUpdate) (TeamMember, bool, error) {
	row := dbx.QueryRowContext(ctx, `
		UPDATE team_members SET
			name = COALESCE($1::text, name),
			initials = COALESCE($2::text, initials),
			slack_id = COALESCE($3::text, slack_id),
			jira_account_id = COALESCE($4::text, jira_account_id),
			email = COALESCE($5::text, email)
		WHERE id = $6
		RETURNING `+memberColumns+`
	`, patch.Name, patch.Initials, patch.SlackID, patch.JiraAccountID, patch.Email, id)

	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return TeamMember{}, false, nil
	}
	if err != nil {
		return TeamMember{}, false, err
	}
	return m, true, nil
}

// DeleteMember reports false when the id is unknown.
func DeleteMember(ctx context.Context, dbx *sql.DB, id int) (bool, error) {
	res, err := dbx.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
