package graph

import (
	"context"
	"fmt"
)

// ============================================================================
// Graph Composition Stats
// ============================================================================

// GraphStats counts nodes by label and relationships by type, for
// diagnostic display. An empty graph returns empty maps.
func (r *Repository) GraphStats(ctx context.Context) (*GraphStats, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	stats := &GraphStats{
		Nodes:         map[string]int64{},
		Relationships: map[string]int64{},
	}

	nodeQuery := `
		MATCH (n)
		UNWIND labels(n) as label
		RETURN label, count(*) as count
		ORDER BY label
	`
	result, err := session.Run(ctx, nodeQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count nodes: %w", err)
	}
	for result.Next(ctx) {
		record := result.Record()
		stats.Nodes[getStringFromRecord(record, "label")] = getInt64FromRecord(record, "count")
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read node counts: %w", err)
	}

	relQuery := `
		MATCH ()-[rel]->()
		RETURN type(rel) as type, count(rel) as count
		ORDER BY type
	`
	result, err = session.Run(ctx, relQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count relationships: %w", err)
	}
	for result.Next(ctx) {
		record := result.Record()
		stats.Relationships[getStringFromRecord(record, "type")] = getInt64FromRecord(record, "count")
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read relationship counts: %w", err)
	}

	return stats, nil
}
