package db

import (
	"context"
	"database/sql"
)

// NextActionID reserves the next id from the store-owned sequence.
// Extraction and direct inserts share the same sequence, so ids never collide.
func NextActionID(ctx context.Context, dbx *sql.DB) (int, error) {
	var id int
	err := dbx.QueryRowContext(ctx, `SELECT nextval('action_item_ids')`).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertActionItem stores an extracted item under its pre-assigned id.
func InsertActionItem(ctx context.Context, dbx *sql.DB, id int, title, assignee, dueDate string, selected, overdue bool) error {
	_, err := dbx.ExecContext(ctx, `
		INSERT INTO action_items (id, title, assignee, due_date, selected, overdue)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		ON CONFLICT (id) DO NOTHING
	`, id, title, assignee, dueDate, selected, overdue)
	return err
}

// MarkCompleted sets the completion timestamp and attaches the ticket key.
// Returns false when the id is unknown.
func MarkCompleted(ctx context.Context, dbx *sql.DB, id int, ticketKey string) (bool, error) {
	res, err := dbx.ExecContext(ctx, `
		UPDATE action_items
		SET completed_at = now(), ticket_key = NULLIF($1, '')
		WHERE id = $2
	`, ticketKey, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
