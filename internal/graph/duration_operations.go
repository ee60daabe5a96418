package graph

import (
	"context"
	"fmt"
)

// ============================================================================
// Duration Analysis
// ============================================================================

// slowActivityMinSamples is the minimum number of recorded durations an
// activity needs before a student's time is compared against the
// average; below it the average is not meaningful.
const slowActivityMinSamples = 2

const slowActivitiesQuery = `
	MATCH (s:Student {email: $email})-[rel:COMPLETED]->(a:Activity)
	WHERE rel.duration_seconds IS NOT NULL AND rel.duration_seconds > 0
	WITH a, rel.duration_seconds as studentSeconds
	MATCH (:Student)-[every:COMPLETED]->(a)
	WHERE every.duration_seconds IS NOT NULL AND every.duration_seconds > 0
	WITH a, studentSeconds,
	     avg(every.duration_seconds) as averageSeconds,
	     count(every) as samples
	WHERE samples >= $minSamples AND studentSeconds > averageSeconds
	RETURN a.id as id, a.name as name, a.kind as kind,
	       studentSeconds, averageSeconds, samples,
	       ((studentSeconds - averageSeconds) / averageSeconds) * 100 as slowerBy
	ORDER BY slowerBy DESC
	LIMIT 10
`

// SlowActivities lists the activities where the student's recorded
// duration is above the average over every student's duration for the
// same activity, slowest first. Students with no timed results (or
// unknown to the graph) get an empty slice.
func (r *Repository) SlowActivities(ctx context.Context, email string) ([]SlowActivityRow, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, slowActivitiesQuery, map[string]interface{}{
		"email":      email,
		"minSamples": slowActivityMinSamples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query slow activities: %w", err)
	}

	rows := []SlowActivityRow{}
	for result.Next(ctx) {
		record := result.Record()
		rows = append(rows, SlowActivityRow{
			ActivityID:      getStringFromRecord(record, "id"),
			ActivityName:    getStringFromRecord(record, "name"),
			Kind:            getStringFromRecord(record, "kind"),
			StudentSeconds:  getIntFromRecord(record, "studentSeconds"),
			AverageSeconds:  getFloatFromRecord(record, "averageSeconds"),
			SlowerByPercent: getFloatFromRecord(record, "slowerBy"),
			Samples:         getIntFromRecord(record, "samples"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read slow activities: %w", err)
	}

	return rows, nil
}
