package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// ============================================================================
// Quiz Result Operations
// ============================================================================

// RecordResult merges a COMPLETED relationship between a student and an
// activity. The edge is keyed by its endpoints (student email, activity
// id): re-recording the same pair updates score, duration and status in
// place, which is what keeps seed reloads from duplicating edges.
func (r *Repository) RecordResult(ctx context.Context, res QuizResult) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (s:Student {email: $email})
		MATCH (a:Activity {id: $activityID})
		MERGE (s)-[rel:COMPLETED]->(a)
		ON CREATE SET rel.first_recorded = datetime($now)
		SET rel.score = $score,
		    rel.duration_seconds = $duration,
		    rel.status = $status,
		    rel.updated_at = datetime($now)
		RETURN rel.status as status
	`

	now := time.Now().UTC().Format(time.RFC3339)
	result, err := session.Run(ctx, query, map[string]interface{}{
		"email":      res.StudentEmail,
		"activityID": res.ActivityID,
		"score":      res.Score,
		"duration":   res.DurationSeconds,
		"status":     res.Status,
		"now":        now,
	})
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return fmt.Errorf("failed to verify result: %w", err)
		}
		// MATCH found nothing: figure out which endpoint is missing
		return r.missingEndpoint(ctx, session, res)
	}

	r.logger.Debug("Result recorded",
		zap.String("email", res.StudentEmail),
		zap.String("activity_id", res.ActivityID),
		zap.String("status", res.Status),
	)
	return nil
}

// missingEndpoint names the endpoint that made the result merge match
// nothing: an unknown student wins over an unknown activity.
func (r *Repository) missingEndpoint(ctx context.Context, session neo4j.SessionWithContext, res QuizResult) error {
	check, err := session.Run(ctx,
		"MATCH (s:Student {email: $email}) RETURN s.email as email",
		map[string]interface{}{"email": res.StudentEmail})
	if err != nil {
		return fmt.Errorf("failed to verify result endpoints: %w", err)
	}
	if !check.Next(ctx) {
		if err := check.Err(); err != nil {
			return fmt.Errorf("failed to verify result endpoints: %w", err)
		}
		return ErrStudentNotFound{Email: res.StudentEmail}
	}
	return ErrActivityNotFound{ActivityID: res.ActivityID}
}
