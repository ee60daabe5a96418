package graph

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ============================================================================
// Student Operations
// ============================================================================

// MergeStudent creates a student node keyed by email, or updates the
// name/cohort of an existing one. Safe to call repeatedly with the same
// record.
func (r *Repository) MergeStudent(ctx context.Context, student Student) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (s:Student {email: $email})
		ON CREATE SET s.created_at = datetime($now)
		SET s.name = $name,
		    s.cohort = $cohort
		RETURN s.email as email
	`

	now := time.Now().UTC().Format(time.RFC3339)
	result, err := session.Run(ctx, query, map[string]interface{}{
		"email":  student.Email,
		"name":   student.Name,
		"cohort": student.Cohort,
		"now":    now,
	})
	if err != nil {
		return fmt.Errorf("failed to merge student: %w", err)
	}

	if _, err := result.Single(ctx); err != nil {
		return fmt.Errorf("failed to verify student merge: %w", err)
	}

	r.logger.Debug("Student merged",
		zap.String("email", student.Email),
		zap.String("name", student.Name),
	)
	return nil
}

// ListStudents returns all students ordered by name
func (r *Repository) ListStudents(ctx context.Context) ([]Student, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (s:Student)
		RETURN s.email as email, s.name as name, s.cohort as cohort
		ORDER BY s.name
	`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	var students []Student
	for result.Next(ctx) {
		record := result.Record()
		students = append(students, Student{
			Email:  getStringFromRecord(record, "email"),
			Name:   getStringFromRecord(record, "name"),
			Cohort: getStringFromRecord(record, "cohort"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read students: %w", err)
	}

	return students, nil
}
