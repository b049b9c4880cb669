package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const surfaceGap = 2

// App hosts one or more surfaces side by side in a single Bubble Tea
// program. Only the active surface receives keys.
type App struct {
	title    string
	surfaces []Surface
	active   int
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

func NewApp(title string, surfaces ...Surface) App {
	a := App{
		title:    title,
		surfaces: surfaces,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	for i := range a.surfaces {
		a.surfaces[i].SetActive(i == 0)
	}
	return a
}

func (a App) Surfaces() []Surface { return a.surfaces }
func (a App) Active() int         { return a.active }

// Init implements tea.Model.
func (a App) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(a.surfaces) == 0 {
		return a, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.layout()
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			a.quitting = true
			return a, tea.Quit
		}
		if !a.surfaces[a.active].Typing() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit
			case key.Matches(msg, a.keys.Help):
				a.help.ShowAll = !a.help.ShowAll
				return a, nil
			case len(a.surfaces) > 1 && key.Matches(msg, a.keys.NextSurface):
				return a, a.focus((a.active + 1) % len(a.surfaces))
			case len(a.surfaces) > 1 && key.Matches(msg, a.keys.PrevSurface):
				return a, a.focus((a.active - 1 + len(a.surfaces)) % len(a.surfaces))
			}
		}
		var cmd tea.Cmd
		a.surfaces[a.active], cmd = a.surfaces[a.active].Update(msg)
		return a, cmd
	}

	// Non-key messages (cursor blink) only matter to the active input.
	var cmd tea.Cmd
	a.surfaces[a.active], cmd = a.surfaces[a.active].Update(msg)
	return a, cmd
}

func (a *App) focus(i int) tea.Cmd {
	a.surfaces[a.active].SetActive(false)
	a.active = i
	return a.surfaces[a.active].SetActive(true)
}

// layout splits the window width between surfaces.
func (a *App) layout() {
	if a.width <= 0 || len(a.surfaces) == 0 {
		return
	}
	n := len(a.surfaces)
	w := (a.width-surfaceGap*(n-1))/n - 2
	for i := range a.surfaces {
		a.surfaces[i].SetWidth(w)
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting || len(a.surfaces) == 0 {
		return ""
	}
	todos := a.surfaces[a.active].State().Todos()
	d, _ := Stats(todos)

	header := Header(a.title, todos)
	progress := Current().Muted.Render(ProgressBar(d, len(todos), 28))

	views := make([]string, 0, len(a.surfaces)*2)
	for i, s := range a.surfaces {
		if i > 0 {
			views = append(views, strings.Repeat(" ", surfaceGap))
		}
		views = append(views, s.View())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	var keys help.KeyMap = listKeys{k: a.keys, multi: len(a.surfaces) > 1}
	if a.surfaces[a.active].Typing() {
		keys = inputKeys{k: a.keys}
	}
	footer := Current().Help.Render(a.help.View(keys))

	return lipgloss.JoinVertical(lipgloss.Left, header, progress, "", body, "", footer)
}
