package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"edugraph/pkg/logger"
)

// Repository handles all Neo4j database operations
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Get(),
	}
}

func (r *Repository) readSession(ctx context.Context) neo4j.SessionWithContext {
	return r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
}

func (r *Repository) writeSession(ctx context.Context) neo4j.SessionWithContext {
	return r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
}

// Errors

// ErrStudentNotFound is returned when a student is not in the graph
type ErrStudentNotFound struct {
	Email string
}

func (e ErrStudentNotFound) Error() string {
	return fmt.Sprintf("student not found: %s", e.Email)
}

// ErrActivityNotFound is returned when an activity is not in the graph
type ErrActivityNotFound struct {
	ActivityID string
}

func (e ErrActivityNotFound) Error() string {
	return fmt.Sprintf("activity not found: %s", e.ActivityID)
}

// ErrCohortNotFound is returned when no student carries the cohort
type ErrCohortNotFound struct {
	Cohort string
}

func (e ErrCohortNotFound) Error() string {
	return fmt.Sprintf("cohort not found: %s", e.Cohort)
}
