// Package console implements the interactive text menu over the graph
// repository: load seed data, inspect a student's progress, list
// recommendation candidates, flag slow activities, summarize cohorts,
// show graph composition stats.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"edugraph/internal/graph"
	"edugraph/internal/seed"
	"edugraph/pkg/logger"
)

// Store is the subset of graph operations the menu reads through.
type Store interface {
	ListStudents(ctx context.Context) ([]graph.Student, error)
	StudentProgress(ctx context.Context, email string) (*graph.ProgressSummary, error)
	Recommendations(ctx context.Context, email string) ([]graph.Recommendation, error)
	SlowActivities(ctx context.Context, email string) ([]graph.SlowActivityRow, error)
	ListCohorts(ctx context.Context) ([]string, error)
	CohortStats(ctx context.Context, cohort string) (*graph.CohortSummary, error)
	GraphStats(ctx context.Context) (*graph.GraphStats, error)
}

// DataLoader runs the seed load.
type DataLoader interface {
	Load(ctx context.Context) *seed.Report
}

// Menu is the interactive console loop. One operation runs at a time;
// operation errors are printed and the loop continues.
type Menu struct {
	store  Store
	loader DataLoader
	in     *bufio.Scanner
	out    io.Writer
	log    *zap.Logger
}

// NewMenu creates a menu reading choices from in and writing to out.
func NewMenu(store Store, loader DataLoader, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store:  store,
		loader: loader,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    logger.Get(),
	}
}

// Run executes the menu loop until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Learning Graph ===")
		fmt.Fprintln(m.out, "1. Load seed data")
		fmt.Fprintln(m.out, "2. View student progress")
		fmt.Fprintln(m.out, "3. View recommendations")
		fmt.Fprintln(m.out, "4. View slow activities")
		fmt.Fprintln(m.out, "5. View cohort stats")
		fmt.Fprintln(m.out, "6. View graph stats")
		fmt.Fprintln(m.out, "0. Exit")
		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.runLoad(ctx)
		case "2":
			m.runStudentOp(ctx, m.showProgress)
		case "3":
			m.runStudentOp(ctx, m.showRecommendations)
		case "4":
			m.runStudentOp(ctx, m.showSlowActivities)
		case "5":
			m.runCohortOp(ctx)
		case "6":
			m.showStats(ctx)
		case "0", "exit", "q":
			fmt.Fprintln(m.out, "Bye.")
			return
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) runLoad(ctx context.Context) {
	fmt.Fprintln(m.out, "Loading seed data...")
	report := m.loader.Load(ctx)
	fmt.Fprint(m.out, report.Summary())
	if report.Failed() {
		fmt.Fprintln(m.out, "Some record groups failed; committed groups were kept.")
	}
}

// runStudentOp lists students, asks for a selection, and runs op against
// the chosen one. Shared by the progress and recommendation options.
func (m *Menu) runStudentOp(ctx context.Context, op func(ctx context.Context, student graph.Student)) {
	students, err := m.store.ListStudents(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	if len(students) == 0 {
		fmt.Fprintln(m.out, "No students in the graph. Load seed data first (option 1).")
		return
	}

	fmt.Fprintln(m.out)
	for i, s := range students {
		fmt.Fprintf(m.out, "%d. %s <%s>\n", i+1, s.Name, s.Email)
	}
	choice, ok := m.prompt(fmt.Sprintf("Select a student (1-%d): ", len(students)))
	if !ok {
		return
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(students) {
		fmt.Fprintln(m.out, "Invalid selection.")
		return
	}

	op(ctx, students[idx-1])
}

func (m *Menu) showProgress(ctx context.Context, student graph.Student) {
	summary, err := m.store.StudentProgress(ctx, student.Email)
	if err != nil {
		m.reportError(err)
		return
	}
	writeProgress(m.out, summary)
}

func (m *Menu) showRecommendations(ctx context.Context, student graph.Student) {
	recs, err := m.store.Recommendations(ctx, student.Email)
	if err != nil {
		m.reportError(err)
		return
	}
	writeRecommendations(m.out, student, recs)
}

func (m *Menu) showSlowActivities(ctx context.Context, student graph.Student) {
	rows, err := m.store.SlowActivities(ctx, student.Email)
	if err != nil {
		m.reportError(err)
		return
	}
	writeSlowActivities(m.out, student, rows)
}

// runCohortOp lists cohorts, asks for a selection, and shows the
// aggregate summary of the chosen one.
func (m *Menu) runCohortOp(ctx context.Context) {
	cohorts, err := m.store.ListCohorts(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	if len(cohorts) == 0 {
		fmt.Fprintln(m.out, "No cohorts in the graph. Load seed data first (option 1).")
		return
	}

	fmt.Fprintln(m.out)
	for i, c := range cohorts {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, c)
	}
	choice, ok := m.prompt(fmt.Sprintf("Select a cohort (1-%d): ", len(cohorts)))
	if !ok {
		return
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(cohorts) {
		fmt.Fprintln(m.out, "Invalid selection.")
		return
	}

	summary, err := m.store.CohortStats(ctx, cohorts[idx-1])
	if err != nil {
		m.reportError(err)
		return
	}
	writeCohortSummary(m.out, summary)
}

func (m *Menu) showStats(ctx context.Context) {
	stats, err := m.store.GraphStats(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	writeStats(m.out, stats)
}

// reportError maps errors to user-facing messages at the dispatch
// boundary. NotFound is a message, not a failure; everything else is
// reported and logged, and the loop continues.
func (m *Menu) reportError(err error) {
	var notFound graph.ErrStudentNotFound
	if errors.As(err, &notFound) {
		fmt.Fprintf(m.out, "No records for student %s.\n", notFound.Email)
		return
	}
	var noCohort graph.ErrCohortNotFound
	if errors.As(err, &noCohort) {
		fmt.Fprintf(m.out, "No students in cohort %s.\n", noCohort.Cohort)
		return
	}
	fmt.Fprintf(m.out, "Operation failed: %v\n", err)
	m.log.Error("Menu operation failed", zap.Error(err))
}
