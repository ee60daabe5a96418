package graph

import (
	"context"
	"fmt"
)

// ============================================================================
// Progress Operations
// ============================================================================

// StudentProgress returns completed vs total activities for a student,
// plus one row per activity the student has touched. A student with no
// recorded results gets Completed 0 and an empty row list, not an error;
// an unknown email is ErrStudentNotFound.
func (r *Repository) StudentProgress(ctx context.Context, email string) (*ProgressSummary, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (s:Student {email: $email})
		OPTIONAL MATCH (s)-[rel:COMPLETED]->(a:Activity)
		WITH s, collect({
			id: a.id,
			name: a.name,
			kind: a.kind,
			status: rel.status,
			score: rel.score
		}) as rows
		OPTIONAL MATCH (total:Activity)
		RETURN s.email as email, rows, count(DISTINCT total) as total
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"email": email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to fetch progress record: %w", err)
		}
		return nil, ErrStudentNotFound{Email: email}
	}

	record := result.Record()
	summary := &ProgressSummary{
		Email: getStringFromRecord(record, "email"),
		Total: int(getInt64FromRecord(record, "total")),
		Rows:  []ProgressRow{},
	}

	rows, _ := record.Get("rows")
	if rowList, ok := rows.([]interface{}); ok {
		for _, row := range rowList {
			rowMap, ok := row.(map[string]interface{})
			if !ok {
				continue
			}
			// OPTIONAL MATCH leaves one all-null entry for students
			// with no results
			id := getStringFromMap(rowMap, "id")
			if id == "" {
				continue
			}
			pr := ProgressRow{
				ActivityID:   id,
				ActivityName: getStringFromMap(rowMap, "name"),
				Kind:         getStringFromMap(rowMap, "kind"),
				Status:       getStringFromMap(rowMap, "status"),
				Score:        getIntFromMap(rowMap, "score"),
			}
			summary.Rows = append(summary.Rows, pr)
			if pr.Status == StatusCompleted || pr.Status == StatusPerfect {
				summary.Completed++
			}
		}
	}

	return summary, nil
}
