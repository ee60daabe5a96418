package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edugraph/internal/graph"
)

func TestSeedData_UniqueKeys(t *testing.T) {
	emails := map[string]bool{}
	for _, s := range Students() {
		assert.False(t, emails[s.Email], "duplicate student email %s", s.Email)
		emails[s.Email] = true
	}

	activityIDs := map[string]bool{}
	for _, a := range Activities() {
		assert.False(t, activityIDs[a.ID], "duplicate activity id %s", a.ID)
		activityIDs[a.ID] = true
	}

	topicIDs := map[string]bool{}
	for _, tp := range Topics() {
		assert.False(t, topicIDs[tp.ID], "duplicate topic id %s", tp.ID)
		topicIDs[tp.ID] = true
	}
}

func TestSeedData_ReferencesResolve(t *testing.T) {
	students := map[string]bool{}
	for _, s := range Students() {
		students[s.Email] = true
	}
	activities := map[string]bool{}
	topics := map[string]bool{}
	for _, tp := range Topics() {
		topics[tp.ID] = true
	}
	for _, a := range Activities() {
		activities[a.ID] = true
		assert.True(t, topics[a.TopicID], "activity %s names unknown topic %s", a.ID, a.TopicID)
	}

	for _, r := range Results() {
		assert.True(t, students[r.StudentEmail], "result references unknown student %s", r.StudentEmail)
		assert.True(t, activities[r.ActivityID], "result references unknown activity %s", r.ActivityID)
		assert.Contains(t,
			[]string{graph.StatusAttempted, graph.StatusCompleted, graph.StatusPerfect},
			r.Status)
	}

	for _, pair := range Unlocks() {
		assert.True(t, activities[pair[0]], "unlock source %s unknown", pair[0])
		assert.True(t, activities[pair[1]], "unlock target %s unknown", pair[1])
		assert.NotEqual(t, pair[0], pair[1], "activity cannot unlock itself")
	}
}

func TestSeedData_ZeroProgressStudentExists(t *testing.T) {
	// The seed set keeps one student with no results so the
	// empty-progress and empty-recommendation paths stay exercised.
	withResults := map[string]bool{}
	for _, r := range Results() {
		withResults[r.StudentEmail] = true
	}
	zero := 0
	for _, s := range Students() {
		if !withResults[s.Email] {
			zero++
		}
	}
	assert.GreaterOrEqual(t, zero, 1)
}

func TestExpectedStats_MatchesData(t *testing.T) {
	stats := ExpectedStats()
	assert.Equal(t, int64(len(Students())), stats.Nodes["Student"])
	assert.Equal(t, int64(len(Topics())), stats.Nodes["Topic"])
	assert.Equal(t, int64(len(Activities())), stats.Nodes["Activity"])
	assert.Equal(t, int64(len(Results())), stats.Relationships["COMPLETED"])
	assert.Equal(t, int64(len(Unlocks())), stats.Relationships["UNLOCKS"])
	assert.Equal(t, int64(len(Activities())), stats.Relationships["BELONGS_TO"])
}
