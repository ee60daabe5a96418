package seed

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"edugraph/internal/graph"
	"edugraph/pkg/logger"
)

// Store is the subset of graph operations the loader writes through.
type Store interface {
	MergeTopic(ctx context.Context, topic graph.Topic) error
	MergeActivity(ctx context.Context, activity graph.Activity) error
	MergeStudent(ctx context.Context, student graph.Student) error
	RecordResult(ctx context.Context, result graph.QuizResult) error
	LinkUnlocks(ctx context.Context, fromID, toID string) error
}

// GroupResult reports the outcome of one record group.
type GroupResult struct {
	Name    string
	Records int
	Failed  int
	Err     error // first error in the group, nil if all records landed
}

// Report is the per-group outcome of a full load.
type Report struct {
	Groups []GroupResult
}

// Failed reports whether any group had failures.
func (r *Report) Failed() bool {
	for _, g := range r.Groups {
		if g.Err != nil {
			return true
		}
	}
	return false
}

// Summary renders the report as one line per group.
func (r *Report) Summary() string {
	var b strings.Builder
	for _, g := range r.Groups {
		if g.Err != nil {
			fmt.Fprintf(&b, "%s: %d/%d records failed (%v)\n", g.Name, g.Failed, g.Records, g.Err)
		} else {
			fmt.Fprintf(&b, "%s: %d records ok\n", g.Name, g.Records)
		}
	}
	return b.String()
}

// Loader populates the graph from the fixed seed collections.
type Loader struct {
	store Store
	log   *zap.Logger
}

// NewLoader creates a loader writing through the given store.
func NewLoader(store Store) *Loader {
	return &Loader{
		store: store,
		log:   logger.Get(),
	}
}

// Load materializes the seed data in dependency order: topics,
// activities, students, results, unlock chain. Each group is committed
// independently; a failure inside one group is recorded in the report
// and the remaining groups still run, so already-committed groups are
// never rolled back.
func (l *Loader) Load(ctx context.Context) *Report {
	report := &Report{}

	report.Groups = append(report.Groups, l.loadGroup(ctx, "topics", len(Topics()), func(i int) error {
		return l.store.MergeTopic(ctx, Topics()[i])
	}))
	report.Groups = append(report.Groups, l.loadGroup(ctx, "activities", len(Activities()), func(i int) error {
		return l.store.MergeActivity(ctx, Activities()[i])
	}))
	report.Groups = append(report.Groups, l.loadGroup(ctx, "students", len(Students()), func(i int) error {
		return l.store.MergeStudent(ctx, Students()[i])
	}))
	report.Groups = append(report.Groups, l.loadGroup(ctx, "results", len(Results()), func(i int) error {
		return l.store.RecordResult(ctx, Results()[i])
	}))
	report.Groups = append(report.Groups, l.loadGroup(ctx, "unlocks", len(Unlocks()), func(i int) error {
		pair := Unlocks()[i]
		return l.store.LinkUnlocks(ctx, pair[0], pair[1])
	}))

	if report.Failed() {
		l.log.Warn("Seed load finished with failures", zap.String("report", report.Summary()))
	} else {
		l.log.Info("Seed load complete", zap.String("report", report.Summary()))
	}
	return report
}

func (l *Loader) loadGroup(ctx context.Context, name string, count int, merge func(i int) error) GroupResult {
	group := GroupResult{Name: name, Records: count}
	for i := 0; i < count; i++ {
		if err := merge(i); err != nil {
			group.Failed++
			if group.Err == nil {
				group.Err = err
			}
			l.log.Warn("Seed record failed",
				zap.String("group", name),
				zap.Int("index", i),
				zap.Error(err),
			)
		}
	}
	return group
}
