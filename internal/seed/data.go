// Package seed holds the fixed demonstration record set and the loader
// that materializes it in the graph. All writes merge on natural keys,
// so loading the same data any number of times leaves the graph in the
// same state as loading it once.
package seed

import "edugraph/internal/graph"

// Students is the fixed student roster. Email is the unique key.
func Students() []graph.Student {
	return []graph.Student{
		{Email: "ana.rios@example.edu", Name: "Ana Ríos", Cohort: "P03"},
		{Email: "bruno.leiva@example.edu", Name: "Bruno Leiva", Cohort: "P03"},
		{Email: "carla.munoz@example.edu", Name: "Carla Muñoz", Cohort: "P04"},
	}
}

// Topics is the fixed curricular topic set.
func Topics() []graph.Topic {
	return []graph.Topic{
		{ID: "algebra-basics", Name: "Algebra Basics", Description: "Linear and quadratic equations"},
		{ID: "geometry-intro", Name: "Introductory Geometry", Description: "Angles, triangles and plane figures"},
	}
}

// Activities is the fixed activity catalog. Each activity belongs to one
// topic and carries a difficulty used to order recommendations.
func Activities() []graph.Activity {
	return []graph.Activity{
		{ID: "quiz-linear-equations", Name: "Linear Equations Quiz", Kind: "quiz", Difficulty: 1, TopicID: "algebra-basics"},
		{ID: "quiz-quadratics", Name: "Quadratic Equations Quiz", Kind: "quiz", Difficulty: 2, TopicID: "algebra-basics"},
		{ID: "workshop-factoring", Name: "Factoring Workshop", Kind: "workshop", Difficulty: 2, TopicID: "algebra-basics"},
		{ID: "quiz-angles", Name: "Angles Quiz", Kind: "quiz", Difficulty: 1, TopicID: "geometry-intro"},
		{ID: "workshop-triangles", Name: "Triangle Construction Workshop", Kind: "workshop", Difficulty: 3, TopicID: "geometry-intro"},
	}
}

// Results is the fixed quiz/workshop outcome set. Carla has none on
// purpose: she is the zero-progress case.
func Results() []graph.QuizResult {
	return []graph.QuizResult{
		{StudentEmail: "ana.rios@example.edu", ActivityID: "quiz-linear-equations", Score: 100, DurationSeconds: 540, Status: graph.StatusPerfect},
		{StudentEmail: "ana.rios@example.edu", ActivityID: "quiz-quadratics", Score: 55, DurationSeconds: 1260, Status: graph.StatusAttempted},
		{StudentEmail: "bruno.leiva@example.edu", ActivityID: "quiz-linear-equations", Score: 80, DurationSeconds: 780, Status: graph.StatusCompleted},
		{StudentEmail: "bruno.leiva@example.edu", ActivityID: "quiz-angles", Score: 95, DurationSeconds: 600, Status: graph.StatusPerfect},
	}
}

// Unlocks is the fixed prerequisite chain: completing the first activity
// of a pair makes the second a recommendation candidate.
func Unlocks() [][2]string {
	return [][2]string{
		{"quiz-linear-equations", "quiz-quadratics"},
		{"quiz-quadratics", "workshop-factoring"},
		{"quiz-angles", "workshop-triangles"},
	}
}

// ExpectedStats is the graph composition a clean load of this data must
// produce. Derived from the collections above so tests never drift from
// the data.
func ExpectedStats() graph.GraphStats {
	return graph.GraphStats{
		Nodes: map[string]int64{
			"Student":  int64(len(Students())),
			"Topic":    int64(len(Topics())),
			"Activity": int64(len(Activities())),
		},
		Relationships: map[string]int64{
			"COMPLETED":  int64(len(Results())),
			"BELONGS_TO": int64(len(Activities())), // every activity names a topic
			"UNLOCKS":    int64(len(Unlocks())),
		},
	}
}
