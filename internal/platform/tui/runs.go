package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catch-treasure/internal/storage"
)

// Runs table layout constants
const (
	runIDWidth   = 8
	maxTableRows = 15
)

// recentRuns is how many of the latest runs the report lists.
const recentRuns = 5

// RunsReport renders the session ledger: every run ranked by score with
// the aggregate stats, followed by the latest runs newest first.
func RunsReport(store *storage.Store, fps int) (string, error) {
	top, err := store.TopRuns(maxTableRows)
	if err != nil {
		return "", err
	}
	stats, err := store.Stats()
	if err != nil {
		return "", err
	}
	recent, err := store.RecentRuns(recentRuns)
	if err != nil {
		return "", err
	}

	out := RunsTable("RUNS THIS SESSION", top, stats, fps)
	if len(recent) > 1 {
		out += "\n" + RunsTable("LAST RUNS", recent, nil, fps)
	}
	return out, nil
}

// RunsTable renders the recorded runs as a bordered table under title.
// Stats are printed below the table when non-nil.
func RunsTable(title string, runs []storage.Run, stats *storage.Stats, fps int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No runs recorded."))
		b.WriteString("\n")
		return b.String()
	}

	t := newRunsTable(runs, fps)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(t.View()))
	b.WriteString("\n")

	if stats != nil {
		statStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(statStyle.Render(fmt.Sprintf(
			"%d runs  best %d  avg %.1f", stats.Runs, stats.BestScore, stats.AvgScore,
		)))
		b.WriteString("\n")
	}

	return b.String()
}

func newRunsTable(runs []storage.Run, fps int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "End", Width: 10},
		{Title: "Run", Width: runIDWidth},
	}

	if len(runs) > maxTableRows {
		runs = runs[:maxTableRows]
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			formatTicks(r.Ticks, fps),
			string(r.Outcome),
			shortID(r.RunID),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// formatTicks shows a tick count as m:ss of play time.
func formatTicks(ticks, fps int) string {
	if fps <= 0 {
		fps = 60
	}
	secs := ticks / fps
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func shortID(id string) string {
	if len(id) > runIDWidth {
		return id[:runIDWidth]
	}
	return id
}
