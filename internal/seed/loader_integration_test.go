package seed

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"edugraph/internal/graph"
)

// This test wipes and reseeds the target database. Point NEO4J_URI at a
// disposable instance.

func createTestDriver(t *testing.T) neo4j.DriverWithContext {
	t.Helper()
	uri := envOr("NEO4J_URI", "bolt://localhost:7687")
	user := envOr("NEO4J_USER", "neo4j")
	password := envOr("NEO4J_PASSWORD", "password")

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		t.Skipf("Skipping: cannot create driver: %v", err)
	}

	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		t.Skipf("Skipping: Neo4j not reachable: %v", err)
	}

	return driver
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestLoader_ReloadIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver := createTestDriver(t)
	defer driver.Close(ctx)

	repo := graph.NewRepository(driver)
	if err := repo.Wipe(ctx); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Logf("EnsureSchema reported: %v", err)
	}

	loader := NewLoader(repo)

	// First load on a clean graph must produce the exact composition
	// derived from the seed collections
	report := loader.Load(ctx)
	if report.Failed() {
		t.Fatalf("First load failed:\n%s", report.Summary())
	}

	first, err := repo.GraphStats(ctx)
	if err != nil {
		t.Fatalf("GraphStats failed: %v", err)
	}
	expected := ExpectedStats()
	if !reflect.DeepEqual(first.Nodes, expected.Nodes) {
		t.Errorf("Node counts after load: got %v, want %v", first.Nodes, expected.Nodes)
	}
	if !reflect.DeepEqual(first.Relationships, expected.Relationships) {
		t.Errorf("Relationship counts after load: got %v, want %v", first.Relationships, expected.Relationships)
	}

	// Second load merges onto the same keys and must change nothing
	report = loader.Load(ctx)
	if report.Failed() {
		t.Fatalf("Second load failed:\n%s", report.Summary())
	}

	second, err := repo.GraphStats(ctx)
	if err != nil {
		t.Fatalf("GraphStats failed: %v", err)
	}
	if !reflect.DeepEqual(second.Nodes, first.Nodes) {
		t.Errorf("Node counts changed on reload: %v -> %v", first.Nodes, second.Nodes)
	}
	if !reflect.DeepEqual(second.Relationships, first.Relationships) {
		t.Errorf("Relationship counts changed on reload: %v -> %v", first.Relationships, second.Relationships)
	}
}
