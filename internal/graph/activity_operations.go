package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================================================
// Topic and Activity Operations
// ============================================================================

// MergeTopic creates a topic keyed by id, or refreshes the name and
// description of an existing one.
func (r *Repository) MergeTopic(ctx context.Context, topic Topic) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (t:Topic {id: $id})
		ON CREATE SET t.created_at = datetime($now)
		SET t.name = $name,
		    t.description = CASE WHEN $description <> '' THEN $description ELSE t.description END
		RETURN t.id as id
	`

	now := time.Now().UTC().Format(time.RFC3339)
	result, err := session.Run(ctx, query, map[string]interface{}{
		"id":          topic.ID,
		"name":        topic.Name,
		"description": topic.Description,
		"now":         now,
	})
	if err != nil {
		return fmt.Errorf("failed to merge topic: %w", err)
	}

	if _, err := result.Single(ctx); err != nil {
		return fmt.Errorf("failed to verify topic merge: %w", err)
	}

	return nil
}

// MergeActivity creates or updates an activity keyed by id. When the
// activity names a topic, the BELONGS_TO edge is merged in the same
// statement; a topic referenced before it has been loaded is created as
// a stub and filled in by a later MergeTopic.
func (r *Repository) MergeActivity(ctx context.Context, activity Activity) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (a:Activity {id: $id})
		ON CREATE SET a.created_at = datetime($now)
		SET a.name = $name,
		    a.kind = $kind,
		    a.difficulty = $difficulty
		RETURN a.id as id
	`

	now := time.Now().UTC().Format(time.RFC3339)
	params := map[string]interface{}{
		"id":         activity.ID,
		"name":       activity.Name,
		"kind":       activity.Kind,
		"difficulty": activity.Difficulty,
		"now":        now,
	}

	if activity.TopicID != "" {
		query = `
			MERGE (a:Activity {id: $id})
			ON CREATE SET a.created_at = datetime($now)
			SET a.name = $name,
			    a.kind = $kind,
			    a.difficulty = $difficulty
			MERGE (t:Topic {id: $topicID})
			ON CREATE SET t.uuid = $topicUUID, t.created_at = datetime($now)
			MERGE (a)-[:BELONGS_TO]->(t)
			RETURN a.id as id
		`
		params["topicID"] = activity.TopicID
		params["topicUUID"] = uuid.New().String()
	}

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return fmt.Errorf("failed to merge activity: %w", err)
	}

	if _, err := result.Single(ctx); err != nil {
		return fmt.Errorf("failed to verify activity merge: %w", err)
	}

	r.logger.Debug("Activity merged",
		zap.String("activity_id", activity.ID),
		zap.String("topic_id", activity.TopicID),
	)
	return nil
}

// LinkUnlocks merges an UNLOCKS edge between two activities. Both
// endpoints must already exist; an unknown id is reported as
// ErrActivityNotFound rather than silently creating a dangling node.
func (r *Repository) LinkUnlocks(ctx context.Context, fromID, toID string) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (from:Activity {id: $fromID})
		MATCH (to:Activity {id: $toID})
		MERGE (from)-[:UNLOCKS]->(to)
		RETURN from.id as id
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"fromID": fromID,
		"toID":   toID,
	})
	if err != nil {
		return fmt.Errorf("failed to link activities: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return fmt.Errorf("failed to verify unlock link: %w", err)
		}
		return ErrActivityNotFound{ActivityID: fromID + " -> " + toID}
	}

	return nil
}
