package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
}

// Runner executes one-shot subcommands against a persisted list and returns
// exit codes (0 ok, 1 error, 2 usage).
type Runner struct {
	Out   io.Writer
	Err   io.Writer
	State *state.Manager
	Title string
}

// -------------- subcommand impls ----------------

// Add commits text as a new todo through the pending buffer, the same path
// an interactive surface takes.
func (r *Runner) Add(text string) int {
	r.State.SetPending(text)
	if err := r.State.Add(); err != nil {
		ui.Fail(r.Err, "add: "+err.Error())
		return 2
	}
	if code := r.checkSave(); code != 0 {
		return code
	}
	todos := r.State.Todos()
	ui.OK(r.Out, fmt.Sprintf("added #%d", todos[len(todos)-1].ID))
	return 0
}

func (r *Runner) List(opt Options) int {
	todos := r.State.Todos()
	d, p := ui.Stats(todos)

	var lines []string
	lines = append(lines, ui.Header(r.Title, todos))
	lines = append(lines, ui.Current().Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Current().Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	fmt.Fprintln(r.Out, ui.Panel(lines))
	return 0
}

func (r *Runner) Toggle(id int) int {
	if !r.State.ToggleDone(id) {
		return r.unknownID(id)
	}
	if code := r.checkSave(); code != 0 {
		return code
	}
	ui.OK(r.Out, fmt.Sprintf("toggled #%d", id))
	return 0
}

func (r *Runner) Remove(id int) int {
	if !r.State.Delete(id) {
		return r.unknownID(id)
	}
	if code := r.checkSave(); code != 0 {
		return code
	}
	ui.OK(r.Out, fmt.Sprintf("removed #%d", id))
	return 0
}

func (r *Runner) unknownID(id int) int {
	ui.Fail(r.Err, fmt.Sprintf("no todo with id %d", id))
	ui.Hint(r.Err, "run `todo ls` to see valid ids")
	return 2
}

func (r *Runner) checkSave() int {
	if err := r.State.Err(); err != nil {
		ui.Fail(r.Err, "save: "+err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

// maxTextWidth is the widest a todo's text may render in `ls`, in cells.
const maxTextWidth = 80

func flatLines(todos []model.Todo) []string {
	if len(todos) == 0 {
		return []string{ui.Current().Muted.Render("no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		t.Text = ansi.Truncate(t.Text, maxTextWidth, "...")
		out = append(out, ui.TodoLine(t))
	}
	return out
}

// groupLines renders the pending todos, then the done ones, each under its
// own heading.
func groupLines(todos []model.Todo) []string {
	sections := []struct {
		heading string
		done    bool
	}{
		{"Pending", false},
		{"Done", true},
	}

	t := ui.Current()
	var lines []string
	for i, sec := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(sec.heading))
		var picked []model.Todo
		for _, todo := range todos {
			if todo.Done == sec.done {
				picked = append(picked, todo)
			}
		}
		if len(picked) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			continue
		}
		lines = append(lines, flatLines(picked)...)
	}
	return lines
}
