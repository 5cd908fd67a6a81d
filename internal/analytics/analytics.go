package analytics

import (
	"context"
	"database/sql"
	"math"
	"sort"

	"sanas-actions-backend/internal/settings"
)

type Stats struct {
	CompletedThisWeek int `json:"completed_this_week"`
	PendingActions    int `json:"pending_actions"`
	OverdueCount      int `json:"overdue_count"`
	ActiveTeamMembers int `json:"active_team_members"`
}

type PendingItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Assignee string `json:"assignee,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
	Overdue  bool   `json:"overdue"`
}

type MemberStats struct {
	Name                 string  `json:"name"`
	Initials             string  `json:"initials"`
	Completed            int     `json:"completed"`
	Total                int     `json:"total"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type TrendPoint struct {
	Week      string `json:"week"`
	Completed int    `json:"completed"`
}

type Response struct {
	Stats        Stats         `json:"stats"`
	PendingItems []PendingItem `json:"pending_items"`
	Leaderboard  []MemberStats `json:"leaderboard"`
	WeeklyTrend  []TrendPoint  `json:"weekly_trend"`
}

// assigneeStat is one leaderboard row as aggregated from the store.
type assigneeStat struct {
	Assignee  string
	Completed int
	Total     int
}

// weeklyTrendPlaceholder keeps the Monday-first seven-point contract until
// real per-day aggregation lands.
func weeklyTrendPlaceholder() []TrendPoint {
	return []TrendPoint{
		{Week: "Mon", Completed: 4},
		{Week: "Tue", Completed: 6},
		{Week: "Wed", Completed: 5},
		{Week: "Thu", Completed: 8},
		{Week: "Fri", Completed: 10},
		{Week: "Sat", Completed: 2},
		{Week: "Sun", Completed: 1},
	}
}

func pendingItems(ctx context.Context, dbx *sql.DB) ([]PendingItem, error) {
	rows, err := dbx.QueryContext(ctx, `
		SELECT id, title, COALESCE(assignee,''), COALESCE(due_date,''), overdue
		FROM action_items
		WHERE completed_at IS NULL
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []PendingItem{}
	for rows.Next() {
		var item PendingItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Assignee, &item.DueDate, &item.Overdue); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func completedThisWeek(ctx context.Context, dbx *sql.DB) (int, error) {
	var n int
	err := dbx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM action_items
		WHERE completed_at IS NOT NULL
		AND completed_at >= now() - interval '7 days'
	`).Scan(&n)
	return n, err
}

func activeAssignees(ctx context.Context, dbx *sql.DB) (int, error) {
	var n int
	err := dbx.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT assignee) FROM action_items
		WHERE assignee IS NOT NULL AND completed_at IS NULL
	`).Scan(&n)
	return n, err
}

func assigneeStats(ctx context.Context, dbx *sql.DB) ([]assigneeStat, error) {
	rows, err := dbx.QueryContext(ctx, `
		SELECT assignee,
		       COUNT(*) FILTER (WHERE completed_at IS NOT NULL AND completed_at >= now() - interval '7 days') AS completed,
		       COUNT(*) AS total
		FROM action_items
		WHERE assignee IS NOT NULL
		GROUP BY assignee
		ORDER BY completed DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []assigneeStat{}
	for rows.Next() {
		var s assigneeStat
		if err := rows.Scan(&s.Assignee, &s.Completed, &s.Total); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// buildStats derives the headline numbers. ActiveTeamMembers is the true
// distinct-assignee count from the store; zero means zero.
func buildStats(pending []PendingItem, completed, active int) Stats {
	overdue := 0
	for _, item := range pending {
		if item.Overdue {
			overdue++
		}
	}

	return Stats{
		CompletedThisWeek: completed,
		PendingActions:    len(pending),
		OverdueCount:      overdue,
		ActiveTeamMembers: active,
	}
}

// buildLeaderboard resolves initials from the roster, falling back to the
// directory derivation rule for unknown names.
func buildLeaderboard(stats []assigneeStat, initialsByName map[string]string) []MemberStats {
	board := make([]MemberStats, 0, len(stats))
	for _, s := range stats {
		initials, ok := initialsByName[s.Assignee]
		if !ok {
			initials = settings.DeriveInitials(s.Assignee)
		}

		pct := 0.0
		if s.Total > 0 {
			pct = math.Round(float64(s.Completed) / float64(s.Total) * 100)
		}

		board = append(board, MemberStats{
			Name:                 s.Assignee,
			Initials:             initials,
			Completed:            s.Completed,
			Total:                s.Total,
			CompletionPercentage: pct,
		})
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Completed > board[j].Completed
	})

	return board
}

// Build assembles the dashboard payload from the store.
func Build(ctx context.Context, dbx *sql.DB) (Response, error) {
	pending, err := pendingItems(ctx, dbx)
	if err != nil {
		return Response{}, err
	}

	completed, err := completedThisWeek(ctx, dbx)
	if err != nil {
		return Response{}, err
	}

	members, err := settings.ListMembers(ctx, dbx)
	if err != nil {
		return Response{}, err
	}

	active, err := activeAssignees(ctx, dbx)
	if err != nil {
		return Response{}, err
	}

	stats, err := assigneeStats(ctx, dbx)
	if err != nil {
		return Response{}, err
	}

	initialsByName := make(map[string]string, len(members))
	for _, m := range members {
		initialsByName[m.Name] = m.Initials
	}

	return Response{
		Stats:        buildStats(pending, completed, active),
		PendingItems: pending,
		Leaderboard:  buildLeaderboard(stats, initialsByName),
		WeeklyTrend:  weeklyTrendPlaceholder(),
	}, nil
}
