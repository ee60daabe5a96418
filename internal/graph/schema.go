package graph

import (
	"context"
	"fmt"
)

// ============================================================================
// Schema Management
// ============================================================================

// EnsureSchema creates uniqueness constraints and indexes. Every
// statement uses IF NOT EXISTS, so repeated runs are safe. Statement
// failures are collected but do not stop the remaining statements
// (older Neo4j versions reject some index syntax).
func (r *Repository) EnsureSchema(ctx context.Context) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	constraints := []string{
		"CREATE CONSTRAINT student_email_unique IF NOT EXISTS FOR (s:Student) REQUIRE s.email IS UNIQUE",
		"CREATE CONSTRAINT activity_id_unique IF NOT EXISTS FOR (a:Activity) REQUIRE a.id IS UNIQUE",
		"CREATE CONSTRAINT topic_id_unique IF NOT EXISTS FOR (t:Topic) REQUIRE t.id IS UNIQUE",
	}

	indexes := []string{
		"CREATE INDEX student_cohort IF NOT EXISTS FOR (s:Student) ON (s.cohort)",
		"CREATE INDEX activity_kind IF NOT EXISTS FOR (a:Activity) ON (a.kind)",
		"CREATE INDEX activity_difficulty IF NOT EXISTS FOR (a:Activity) ON (a.difficulty)",
		"CREATE INDEX topic_name IF NOT EXISTS FOR (t:Topic) ON (t.name)",
	}

	var firstErr error
	for _, stmt := range append(constraints, indexes...) {
		if _, err := session.Run(ctx, stmt, nil); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("schema statement failed: %w", err)
		}
	}

	return firstErr
}

// Wipe removes every node and relationship. Destructive; only the seed
// script's -reset flag calls it.
func (r *Repository) Wipe(ctx context.Context) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	if _, err := session.Run(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
		return fmt.Errorf("failed to wipe graph: %w", err)
	}

	r.logger.Info("Graph wiped")
	return nil
}
