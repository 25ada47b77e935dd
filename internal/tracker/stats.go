package tracker

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

// StatRow is one bar in the tracker's grouped chart: how many complaints of
// a category were filed in a given month.
type StatRow struct {
	Category string `json:"category"`
	Month    string `json:"month"`
	Count    int    `json:"count"`
}

// AggregateCounts groups complaint records by category and creation month.
// An empty category filter aggregates everything.
func AggregateCounts(ctx context.Context, categories []string) ([]StatRow, error) {
	query := `
		SELECT category,
		       to_char(date_trunc('month', date_created), 'YYYY-MM') AS month,
		       COUNT(*) AS count
		FROM tracker.complaint_records
	`
	var args []interface{}
	if len(categories) > 0 {
		query += ` WHERE category = ANY($1)`
		args = append(args, pq.Array(categories))
	}
	query += `
		GROUP BY category, month
		ORDER BY month, category
	`

	rows, err := Service.DB.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("stats query failed: %w", err)
	}
	defer rows.Close()

	stats := []StatRow{}
	for rows.Next() {
		var row StatRow
		if err := rows.Scan(&row.Category, &row.Month, &row.Count); err != nil {
			return nil, fmt.Errorf("scan stat row: %w", err)
		}
		stats = append(stats, row)
	}

	return stats, rows.Err()
}
