package console

import (
	"fmt"
	"io"
	"sort"

	"edugraph/internal/graph"
)

func writeProgress(w io.Writer, summary *graph.ProgressSummary) {
	fmt.Fprintf(w, "\nProgress for %s: %d of %d activities completed\n",
		summary.Email, summary.Completed, summary.Total)
	if len(summary.Rows) == 0 {
		fmt.Fprintln(w, "No activity recorded yet.")
		return
	}
	for _, row := range summary.Rows {
		fmt.Fprintf(w, "  [%s] %s (%s) score %d\n", row.Status, row.ActivityName, row.Kind, row.Score)
	}
}

func writeRecommendations(w io.Writer, student graph.Student, recs []graph.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintf(w, "\nNo recommendations for %s yet. Completing an activity connects them to a topic.\n", student.Name)
		return
	}
	fmt.Fprintf(w, "\nRecommendations for %s:\n", student.Name)
	for i, rec := range recs {
		topic := rec.TopicName
		if topic == "" {
			topic = "-"
		}
		fmt.Fprintf(w, "  %d. %s (%s, difficulty %d, topic %s, via %s)\n",
			i+1, rec.Name, rec.Kind, rec.Difficulty, topic, rec.Source)
	}
}

func writeSlowActivities(w io.Writer, student graph.Student, rows []graph.SlowActivityRow) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "\nNo slow activities for %s. Every recorded time is at or below the average.\n", student.Name)
		return
	}
	fmt.Fprintf(w, "\nSlow activities for %s (slowest first):\n", student.Name)
	for i, row := range rows {
		fmt.Fprintf(w, "  %d. %s (%s): %ds vs %.0fs average, %.1f%% slower (%d recordings)\n",
			i+1, row.ActivityName, row.Kind, row.StudentSeconds,
			row.AverageSeconds, row.SlowerByPercent, row.Samples)
	}
}

func writeCohortSummary(w io.Writer, summary *graph.CohortSummary) {
	fmt.Fprintf(w, "\nCohort %s:\n", summary.Cohort)
	fmt.Fprintf(w, "  Students: %d\n", summary.Students)
	fmt.Fprintf(w, "  Results recorded: %d (%d completed, %d perfect)\n",
		summary.ResultsRecorded, summary.Completed, summary.Perfect)
	fmt.Fprintf(w, "  Average score: %.1f\n", summary.AverageScore)
	fmt.Fprintf(w, "  Completion: %.1f%% of %d activities per student\n",
		summary.CompletionPercent, summary.Activities)
}

func writeStats(w io.Writer, stats *graph.GraphStats) {
	fmt.Fprintln(w, "\nGraph composition:")
	fmt.Fprintln(w, "Nodes:")
	for _, label := range sortedKeys(stats.Nodes) {
		fmt.Fprintf(w, "  %s: %d\n", label, stats.Nodes[label])
	}
	fmt.Fprintln(w, "Relationships:")
	for _, relType := range sortedKeys(stats.Relationships) {
		fmt.Fprintf(w, "  %s: %d\n", relType, stats.Relationships[relType])
	}
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
