package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// ProgressBar renders done/total as a bar of width cells (at least 5) followed
// by the percentage. An empty list reads as 0%.
func ProgressBar(done, total, width int) string {
	width = max(width, 5)
	filled, pct := 0, 0
	if total > 0 {
		done = min(max(done, 0), total)
		filled = done * width / total
		pct = done * 100 / total
	}
	return fmt.Sprintf("%s%s %3d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		pct,
	)
}

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Stats counts done and pending todos.
func Stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Header renders "<title>  ✔ d  • p  Total n".
func Header(title string, todos []model.Todo) string {
	t := Current()
	d, p := Stats(todos)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(title),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(todos),
	)
}

// TodoLine renders one entry: id, box and text, with the done treatment.
func TodoLine(todo model.Todo) string {
	t := Current()
	box := t.Muted.Render(t.BoxUnchecked)
	text := todo.Text
	if todo.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	return fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("#%d", todo.ID)), box, text)
}
