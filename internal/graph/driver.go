package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"edugraph/pkg/config"
	apperrors "edugraph/pkg/errors"
)

// NewDriver creates a Neo4j driver from configuration and verifies
// connectivity before returning it. An unreachable address or rejected
// credentials surface as a connection error, and no handle is returned.
// The caller owns the driver and must close it on shutdown.
func NewDriver(ctx context.Context, cfg *config.Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		return nil, apperrors.NewConnectionFailed(cfg.Neo4jURI, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, apperrors.NewConnectionFailed(cfg.Neo4jURI, err)
	}

	return driver, nil
}
