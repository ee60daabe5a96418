package graph

import (
	"context"
	"fmt"
)

// ============================================================================
// Recommendation Operations
// ============================================================================

// Candidate activities come from two fixed traversals, both plain graph
// adjacency:
//
//   - topic: activities sharing a topic with anything the student has
//     worked on, minus what they already completed
//   - unlock: the UNLOCKS chain from completed activities to not-yet-
//     completed ones
//
// Results are merged (topic first), deduplicated by activity id, and the
// database orders each traversal by difficulty ascending then name.

const topicCandidatesQuery = `
	MATCH (s:Student {email: $email})-[:COMPLETED]->(:Activity)-[:BELONGS_TO]->(t:Topic)
	WITH DISTINCT s, t
	MATCH (t)<-[:BELONGS_TO]-(cand:Activity)
	WHERE NOT EXISTS {
		MATCH (s)-[done:COMPLETED]->(cand)
		WHERE done.status IN [$completed, $perfect]
	}
	RETURN DISTINCT cand.id as id, cand.name as name, cand.kind as kind,
	       cand.difficulty as difficulty, t.name as topic
	ORDER BY difficulty, name
`

const unlockCandidatesQuery = `
	MATCH (s:Student {email: $email})-[done:COMPLETED]->(:Activity)-[:UNLOCKS]->(next:Activity)
	WHERE done.status IN [$completed, $perfect]
	  AND NOT EXISTS {
		MATCH (s)-[d2:COMPLETED]->(next)
		WHERE d2.status IN [$completed, $perfect]
	  }
	OPTIONAL MATCH (next)-[:BELONGS_TO]->(t:Topic)
	RETURN DISTINCT next.id as id, next.name as name, next.kind as kind,
	       next.difficulty as difficulty, t.name as topic
	ORDER BY difficulty, name
`

// Recommendations returns candidate activities for a student. A student
// connected to no topics (or unknown to the graph entirely, for the
// read path) yields an empty slice.
func (r *Repository) Recommendations(ctx context.Context, email string) ([]Recommendation, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	params := map[string]interface{}{
		"email":     email,
		"completed": StatusCompleted,
		"perfect":   StatusPerfect,
	}

	recommendations := []Recommendation{}
	seen := map[string]bool{}

	for _, q := range []struct {
		source string
		query  string
	}{
		{"topic", topicCandidatesQuery},
		{"unlock", unlockCandidatesQuery},
	} {
		result, err := session.Run(ctx, q.query, params)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s candidates: %w", q.source, err)
		}
		for result.Next(ctx) {
			record := result.Record()
			id := getStringFromRecord(record, "id")
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			recommendations = append(recommendations, Recommendation{
				ActivityID: id,
				Name:       getStringFromRecord(record, "name"),
				Kind:       getStringFromRecord(record, "kind"),
				Difficulty: getIntFromRecord(record, "difficulty"),
				TopicName:  getStringFromRecord(record, "topic"),
				Source:     q.source,
			})
		}
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s candidates: %w", q.source, err)
		}
	}

	return recommendations, nil
}
