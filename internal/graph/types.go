package graph

// ============================================================================
// Graph Types
// ============================================================================

// Completion statuses recorded on COMPLETED relationships.
const (
	StatusAttempted = "attempted"
	StatusCompleted = "completed"
	StatusPerfect   = "perfect"
)

// Student represents a student node
type Student struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Cohort string `json:"cohort,omitempty"`
}

// Topic represents a curricular topic node
type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Activity represents a learning activity node. Kind is "quiz" or
// "workshop". TopicID, when set, attaches the activity to a topic via
// BELONGS_TO.
type Activity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Difficulty int    `json:"difficulty"`
	TopicID    string `json:"topic_id,omitempty"`
}

// QuizResult links a student to an activity with an outcome. Merged on
// (StudentEmail, ActivityID), so reloading the same result updates the
// existing edge instead of duplicating it.
type QuizResult struct {
	StudentEmail    string `json:"student_email"`
	ActivityID      string `json:"activity_id"`
	Score           int    `json:"score"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	Status          string `json:"status"`
}

// ProgressRow is one activity line in a student's progress report
type ProgressRow struct {
	ActivityID   string `json:"activity_id"`
	ActivityName string `json:"activity_name"`
	Kind         string `json:"kind"`
	Status       string `json:"status"`
	Score        int    `json:"score"`
}

// ProgressSummary is the per-student progress report: completed vs the
// total number of activities known to the graph.
type ProgressSummary struct {
	Email     string        `json:"email"`
	Completed int           `json:"completed"`
	Total     int           `json:"total"`
	Rows      []ProgressRow `json:"rows"`
}

// Recommendation is one candidate activity for a student. Source is
// "topic" (same-topic adjacency) or "unlock" (unlock chain traversal).
type Recommendation struct {
	ActivityID string `json:"activity_id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Difficulty int    `json:"difficulty"`
	TopicName  string `json:"topic_name,omitempty"`
	Source     string `json:"source"`
}

// GraphStats reports graph composition: node counts by label and
// relationship counts by type.
type GraphStats struct {
	Nodes         map[string]int64 `json:"nodes"`
	Relationships map[string]int64 `json:"relationships"`
}

// CohortSummary aggregates results for one cohort. CompletionPercent is
// completed results over the cohort's activity slots (students x total
// activities).
type CohortSummary struct {
	Cohort            string  `json:"cohort"`
	Students          int     `json:"students"`
	Activities        int     `json:"activities"`
	ResultsRecorded   int     `json:"results_recorded"`
	Completed         int     `json:"completed"`
	Perfect           int     `json:"perfect"`
	AverageScore      float64 `json:"average_score"`
	CompletionPercent float64 `json:"completion_percent"`
}

// SlowActivityRow is one activity where a student's recorded duration
// sits above the average across all students.
type SlowActivityRow struct {
	ActivityID      string  `json:"activity_id"`
	ActivityName    string  `json:"activity_name"`
	Kind            string  `json:"kind"`
	StudentSeconds  int     `json:"student_seconds"`
	AverageSeconds  float64 `json:"average_seconds"`
	SlowerByPercent float64 `json:"slower_by_percent"`
	Samples         int     `json:"samples"`
}
