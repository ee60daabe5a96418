package graph

import (
	"context"
	"fmt"
)

// ============================================================================
// Cohort Operations
// ============================================================================

// ListCohorts returns the distinct cohorts students are enrolled in,
// ordered by name. Students without a cohort are ignored.
func (r *Repository) ListCohorts(ctx context.Context) ([]string, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (s:Student)
		WHERE s.cohort IS NOT NULL AND s.cohort <> ''
		RETURN DISTINCT s.cohort as cohort
		ORDER BY cohort
	`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohorts: %w", err)
	}

	var cohorts []string
	for result.Next(ctx) {
		if cohort := getStringFromRecord(result.Record(), "cohort"); cohort != "" {
			cohorts = append(cohorts, cohort)
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cohorts: %w", err)
	}

	return cohorts, nil
}

// CohortStats aggregates the results recorded by one cohort: how many
// students it has, how many results they produced, how many of those are
// completed or perfect, and the average score. A cohort with students
// but no results is a valid summary with zero counts; a cohort no
// student carries is ErrCohortNotFound.
func (r *Repository) CohortStats(ctx context.Context, cohort string) (*CohortSummary, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (s:Student {cohort: $cohort})
		OPTIONAL MATCH (s)-[rel:COMPLETED]->(:Activity)
		WITH count(DISTINCT s) as students,
		     count(rel) as results,
		     sum(CASE WHEN rel.status IN [$completed, $perfect] THEN 1 ELSE 0 END) as done,
		     sum(CASE WHEN rel.status = $perfect THEN 1 ELSE 0 END) as perfect,
		     avg(rel.score) as avgScore
		OPTIONAL MATCH (a:Activity)
		RETURN students, results, done, perfect, avgScore,
		       count(DISTINCT a) as activities
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"cohort":    cohort,
		"completed": StatusCompleted,
		"perfect":   StatusPerfect,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query cohort stats: %w", err)
	}

	record, err := result.Single(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cohort record: %w", err)
	}

	summary := &CohortSummary{
		Cohort:          cohort,
		Students:        int(getInt64FromRecord(record, "students")),
		Activities:      int(getInt64FromRecord(record, "activities")),
		ResultsRecorded: int(getInt64FromRecord(record, "results")),
		Completed:       int(getInt64FromRecord(record, "done")),
		Perfect:         int(getInt64FromRecord(record, "perfect")),
		AverageScore:    getFloatFromRecord(record, "avgScore"),
	}
	if summary.Students == 0 {
		return nil, ErrCohortNotFound{Cohort: cohort}
	}
	if slots := summary.Students * summary.Activities; slots > 0 {
		summary.CompletionPercent = float64(summary.Completed) / float64(slots) * 100
	}

	return summary, nil
}
