package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edugraph/internal/graph"
)

// fakeStore records merge calls and can fail selected operations.
type fakeStore struct {
	topics    []graph.Topic
	activity  []graph.Activity
	students  []graph.Student
	results   []graph.QuizResult
	unlocks   [][2]string
	failGroup string
}

var errInjected = errors.New("injected failure")

func (f *fakeStore) MergeTopic(_ context.Context, topic graph.Topic) error {
	if f.failGroup == "topics" {
		return errInjected
	}
	f.topics = append(f.topics, topic)
	return nil
}

func (f *fakeStore) MergeActivity(_ context.Context, activity graph.Activity) error {
	if f.failGroup == "activities" {
		return errInjected
	}
	f.activity = append(f.activity, activity)
	return nil
}

func (f *fakeStore) MergeStudent(_ context.Context, student graph.Student) error {
	if f.failGroup == "students" {
		return errInjected
	}
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStore) RecordResult(_ context.Context, result graph.QuizResult) error {
	if f.failGroup == "results" {
		return errInjected
	}
	f.results = append(f.results, result)
	return nil
}

func (f *fakeStore) LinkUnlocks(_ context.Context, fromID, toID string) error {
	if f.failGroup == "unlocks" {
		return errInjected
	}
	f.unlocks = append(f.unlocks, [2]string{fromID, toID})
	return nil
}

func TestLoader_LoadsEverything(t *testing.T) {
	store := &fakeStore{}
	report := NewLoader(store).Load(context.Background())

	require.False(t, report.Failed())
	assert.Len(t, store.topics, len(Topics()))
	assert.Len(t, store.activity, len(Activities()))
	assert.Len(t, store.students, len(Students()))
	assert.Len(t, store.results, len(Results()))
	assert.Len(t, store.unlocks, len(Unlocks()))

	// Group order follows node dependencies
	names := make([]string, 0, len(report.Groups))
	for _, g := range report.Groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"topics", "activities", "students", "results", "unlocks"}, names)
}

func TestLoader_GroupFailureDoesNotAbortOthers(t *testing.T) {
	store := &fakeStore{failGroup: "results"}
	report := NewLoader(store).Load(context.Background())

	require.True(t, report.Failed())

	// Groups before and after the failing one still ran
	assert.Len(t, store.students, len(Students()))
	assert.Len(t, store.unlocks, len(Unlocks()))
	assert.Empty(t, store.results)

	for _, g := range report.Groups {
		if g.Name == "results" {
			assert.ErrorIs(t, g.Err, errInjected)
			assert.Equal(t, len(Results()), g.Failed)
		} else {
			assert.NoError(t, g.Err)
		}
	}
}

func TestReport_Summary(t *testing.T) {
	report := &Report{Groups: []GroupResult{
		{Name: "topics", Records: 2},
		{Name: "results", Records: 4, Failed: 1, Err: errInjected},
	}}
	summary := report.Summary()
	assert.Contains(t, summary, "topics: 2 records ok")
	assert.Contains(t, summary, "results: 1/4 records failed")
}
