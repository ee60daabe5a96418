package console

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"edugraph/internal/graph"
	"edugraph/internal/seed"
)

// fakeStore returns canned results for the menu's read operations.
type fakeStore struct {
	students []graph.Student
	progress map[string]*graph.ProgressSummary
	recs     map[string][]graph.Recommendation
	slow     map[string][]graph.SlowActivityRow
	cohorts  map[string]*graph.CohortSummary
	stats    *graph.GraphStats
	err      error
}

func (f *fakeStore) ListStudents(context.Context) ([]graph.Student, error) {
	return f.students, f.err
}

func (f *fakeStore) StudentProgress(_ context.Context, email string) (*graph.ProgressSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.progress[email]; ok {
		return p, nil
	}
	return nil, graph.ErrStudentNotFound{Email: email}
}

func (f *fakeStore) Recommendations(_ context.Context, email string) ([]graph.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recs[email], nil
}

func (f *fakeStore) SlowActivities(_ context.Context, email string) ([]graph.SlowActivityRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slow[email], nil
}

func (f *fakeStore) ListCohorts(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	cohorts := make([]string, 0, len(f.cohorts))
	for c := range f.cohorts {
		cohorts = append(cohorts, c)
	}
	sort.Strings(cohorts)
	return cohorts, nil
}

func (f *fakeStore) CohortStats(_ context.Context, cohort string) (*graph.CohortSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.cohorts[cohort]; ok {
		return s, nil
	}
	return nil, graph.ErrCohortNotFound{Cohort: cohort}
}

func (f *fakeStore) GraphStats(context.Context) (*graph.GraphStats, error) {
	return f.stats, f.err
}

type fakeLoader struct {
	calls  int
	report *seed.Report
}

func (f *fakeLoader) Load(context.Context) *seed.Report {
	f.calls++
	return f.report
}

func runMenu(t *testing.T, store Store, loader DataLoader, input string) string {
	t.Helper()
	var out bytes.Buffer
	menu := NewMenu(store, loader, strings.NewReader(input), &out)
	menu.Run(context.Background())
	return out.String()
}

func TestMenu_Exit(t *testing.T) {
	out := runMenu(t, &fakeStore{}, &fakeLoader{}, "0\n")
	assert.Contains(t, out, "Bye.")
}

func TestMenu_LoadSeedData(t *testing.T) {
	loader := &fakeLoader{report: &seed.Report{Groups: []seed.GroupResult{
		{Name: "students", Records: 3},
	}}}
	out := runMenu(t, &fakeStore{}, loader, "1\n0\n")

	assert.Equal(t, 1, loader.calls)
	assert.Contains(t, out, "students: 3 records ok")
}

func TestMenu_LoadReportsGroupFailures(t *testing.T) {
	loader := &fakeLoader{report: &seed.Report{Groups: []seed.GroupResult{
		{Name: "results", Records: 4, Failed: 2, Err: errors.New("edge rejected")},
	}}}
	out := runMenu(t, &fakeStore{}, loader, "1\n0\n")

	assert.Contains(t, out, "results: 2/4 records failed")
	assert.Contains(t, out, "committed groups were kept")
}

func TestMenu_Progress(t *testing.T) {
	store := &fakeStore{
		students: []graph.Student{{Email: "ana@example.edu", Name: "Ana"}},
		progress: map[string]*graph.ProgressSummary{
			"ana@example.edu": {
				Email:     "ana@example.edu",
				Completed: 1,
				Total:     5,
				Rows: []graph.ProgressRow{
					{ActivityID: "quiz-1", ActivityName: "Quiz One", Kind: "quiz", Status: graph.StatusPerfect, Score: 100},
				},
			},
		},
	}
	out := runMenu(t, store, &fakeLoader{}, "2\n1\n0\n")

	assert.Contains(t, out, "1 of 5 activities completed")
	assert.Contains(t, out, "Quiz One")
}

func TestMenu_ProgressZeroCompleted(t *testing.T) {
	store := &fakeStore{
		students: []graph.Student{{Email: "carla@example.edu", Name: "Carla"}},
		progress: map[string]*graph.ProgressSummary{
			"carla@example.edu": {Email: "carla@example.edu", Completed: 0, Total: 5, Rows: []graph.ProgressRow{}},
		},
	}
	out := runMenu(t, store, &fakeLoader{}, "2\n1\n0\n")

	assert.Contains(t, out, "0 of 5 activities completed")
	assert.Contains(t, out, "No activity recorded yet.")
}

func TestMenu_RecommendationsEmpty(t *testing.T) {
	store := &fakeStore{
		students: []graph.Student{{Email: "carla@example.edu", Name: "Carla"}},
		recs:     map[string][]graph.Recommendation{},
	}
	out := runMenu(t, store, &fakeLoader{}, "3\n1\n0\n")

	assert.Contains(t, out, "No recommendations for Carla yet")
}

func TestMenu_Recommendations(t *testing.T) {
	store := &fakeStore{
		students: []graph.Student{{Email: "ana@example.edu", Name: "Ana"}},
		recs: map[string][]graph.Recommendation{
			"ana@example.edu": {
				{ActivityID: "quiz-2", Name: "Quiz Two", Kind: "quiz", Difficulty: 2, TopicName: "Algebra Basics", Source: "topic"},
			},
		},
	}
	out := runMenu(t, store, &fakeLoader{}, "3\n1\n0\n")

	assert.Contains(t, out, "Recommendations for Ana:")
	assert.Contains(t, out, "Quiz Two (quiz, difficulty 2, topic Algebra Basics, via topic)")
}

func TestMenu_Stats(t *testing.T) {
	store := &fakeStore{
		stats: &graph.GraphStats{
			Nodes:         map[string]int64{"Student": 3, "Activity": 5, "Topic": 2},
			Relationships: map[string]int64{"COMPLETED": 4, "UNLOCKS": 3},
		},
	}
	out := runMenu(t, store, &fakeLoader{}, "6\n0\n")

	assert.Contains(t, out, "Student: 3")
	assert.Contains(t, out, "Activity: 5")
	assert.Contains(t, out, "COMPLETED: 4")
}

func TestMenu_SlowActivities(t *testing.T) {
	store := &fakeStore{
		students: []graph.Student{{Email: "bruno@example.edu", Name: "Bruno"}},
		slow: map[string][]graph.SlowActivityRow{
			"bruno@example.edu": {
				{ActivityID: "quiz-1", ActivityName: "Quiz One", Kind: "quiz",
					StudentSeconds: 780, AverageSeconds: 660, SlowerByPercent: 18.2, Samples: 2},
			},
		},
	}
	out := runMenu(t, store, &fakeLoader{}, "4\n1\n0\n")

	assert.Contains(t, out, "Slow activities for Bruno (slowest first):")
	assert.Contains(t, out, "Quiz One (quiz): 780s vs 660s average, 18.2% slower (2 recordings)")
}

func TestMenu_SlowActivitiesEmpty(t *testing.T) {
	store := &fakeStore{
		students: []graph.Student{{Email: "ana@example.edu", Name: "Ana"}},
	}
	out := runMenu(t, store, &fakeLoader{}, "4\n1\n0\n")

	assert.Contains(t, out, "No slow activities for Ana")
}

func TestMenu_CohortStats(t *testing.T) {
	store := &fakeStore{
		cohorts: map[string]*graph.CohortSummary{
			"P03": {Cohort: "P03", Students: 2, Activities: 5, ResultsRecorded: 4,
				Completed: 3, Perfect: 2, AverageScore: 82.5, CompletionPercent: 30},
		},
	}
	out := runMenu(t, store, &fakeLoader{}, "5\n1\n0\n")

	assert.Contains(t, out, "Cohort P03:")
	assert.Contains(t, out, "Students: 2")
	assert.Contains(t, out, "Results recorded: 4 (3 completed, 2 perfect)")
	assert.Contains(t, out, "Average score: 82.5")
	assert.Contains(t, out, "Completion: 30.0% of 5 activities per student")
}

func TestMenu_NoCohortsHint(t *testing.T) {
	out := runMenu(t, &fakeStore{}, &fakeLoader{}, "5\n0\n")
	assert.Contains(t, out, "No cohorts in the graph. Load seed data first")
}

func TestMenu_CohortInvalidSelection(t *testing.T) {
	store := &fakeStore{cohorts: map[string]*graph.CohortSummary{"P03": {Cohort: "P03", Students: 1}}}
	out := runMenu(t, store, &fakeLoader{}, "5\n9\n0\n")
	assert.Contains(t, out, "Invalid selection.")
}

func TestMenu_QueryErrorKeepsLoopRunning(t *testing.T) {
	store := &fakeStore{err: errors.New("neo4j unavailable")}
	// First choice fails, menu must come back and accept exit
	out := runMenu(t, store, &fakeLoader{}, "6\n0\n")

	assert.Contains(t, out, "Operation failed")
	assert.Contains(t, out, "Bye.")
}

func TestMenu_StudentNotFoundIsMessageNotError(t *testing.T) {
	store := &fakeStore{
		students: []graph.Student{{Email: "ghost@example.edu", Name: "Ghost"}},
		progress: map[string]*graph.ProgressSummary{},
	}
	out := runMenu(t, store, &fakeLoader{}, "2\n1\n0\n")

	assert.Contains(t, out, "No records for student ghost@example.edu")
	assert.NotContains(t, out, "Operation failed")
}

func TestMenu_NoStudentsHint(t *testing.T) {
	out := runMenu(t, &fakeStore{}, &fakeLoader{}, "2\n0\n")
	assert.Contains(t, out, "Load seed data first")
}

func TestMenu_InvalidSelection(t *testing.T) {
	store := &fakeStore{students: []graph.Student{{Email: "a@example.edu", Name: "A"}}}
	out := runMenu(t, store, &fakeLoader{}, "2\n9\n0\n")
	assert.Contains(t, out, "Invalid selection.")
}

func TestMenu_InvalidOption(t *testing.T) {
	out := runMenu(t, &fakeStore{}, &fakeLoader{}, "7\n0\n")
	assert.Contains(t, out, "Invalid option.")
}
