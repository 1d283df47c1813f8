// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkaski/focusforge/internal/config"
	"github.com/mkaski/focusforge/internal/domain"
	"github.com/mkaski/focusforge/internal/services"
	"github.com/mkaski/focusforge/internal/timeutil"
)

// noticeTicks is how many seconds a transient notice stays visible.
const noticeTicks = 2

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// Model represents the TUI state.
type Model struct {
	controller *services.Controller
	theme      config.ThemeConfig
	gitBranch  string

	width  int
	height int

	inputMode bool
	input     textinput.Model

	showHelp   bool
	notice     string
	noticeLeft int
	quitting   bool
}

// NewModel creates a new TUI model.
func NewModel(controller *services.Controller, theme *config.ThemeConfig, gitBranch string) Model {
	input := textinput.New()
	input.Prompt = "Add task: "
	input.CharLimit = domain.MaxTaskLen
	input.Width = 50

	resolved := config.DefaultThemeConfig()
	if theme != nil {
		resolved = *theme
	}

	return Model{
		controller: controller,
		theme:      resolved,
		gitBranch:  gitBranch,
		input:      input,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		result := m.controller.Tick(context.Background())
		if result.Message != "" {
			m.notice = result.Message
			m.noticeLeft = noticeTicks + 1
		}
		if m.noticeLeft > 0 {
			m.noticeLeft--
			if m.noticeLeft == 0 {
				m.notice = ""
			}
		}
		return m, tickCmd()

	case tea.KeyMsg:
		if m.inputMode {
			return m.updateInput(msg)
		}
		if m.showHelp {
			// Any key dismisses the help screen.
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			m.showHelp = false
			return m, nil
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// updateNormal handles single-key commands outside input mode.
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "ctrl+c", "q", "Q":
		m.quitting = true
		return m, tea.Quit

	case "?", "h", "H":
		m.showHelp = true
		return m, nil

	// Session controls on the left hand home row.
	case "a", "A":
		return m.apply(m.controller.Execute(ctx, domain.Command{Type: domain.CommandStartFocus}))
	case "s", "S":
		return m.apply(m.controller.Execute(ctx, domain.Command{Type: domain.CommandStop}))
	case "d", "D":
		return m.apply(m.controller.Execute(ctx, domain.Command{Type: domain.CommandSkip}))
	case "f", "F":
		return m.apply(m.controller.Execute(ctx, domain.Command{Type: domain.CommandStartBreak}))

	// Task controls on the right hand home row.
	case "j", "J":
		result := m.controller.MarkSelectedDone(ctx)
		m.controller.SelectNext()
		return m.apply(result)
	case "k", "K":
		return m.apply(m.controller.UnmarkSelected(ctx))
	case "l", "L":
		return m.apply(m.controller.RemoveSelected(ctx))

	// Navigation.
	case "w", "W", "up":
		m.controller.SelectPrev()
		return m, nil
	case "x", "X", "down":
		m.controller.SelectNext()
		return m, nil

	case "enter":
		m.inputMode = true
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink

	case " ":
		return m.apply(m.controller.FocusFromSelected())
	}

	return m, nil
}

// updateInput handles keys while the command line is open.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.inputMode = false
		m.input.Blur()
		return m, nil

	case "enter":
		line := m.input.Value()
		m.inputMode = false
		m.input.Blur()
		return m.apply(m.controller.Execute(context.Background(), domain.ParseCommand(line)))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply folds a command result into the model.
func (m Model) apply(result services.Result) (tea.Model, tea.Cmd) {
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if result.ShowHelp {
		m.showHelp = true
		return m, nil
	}
	if result.Message != "" {
		m.notice = result.Message
		m.noticeLeft = noticeTicks
	}
	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.viewHelp()
	}

	snap := m.controller.Snapshot()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	timerStyle := lipgloss.NewStyle().Bold(true).Foreground(m.phaseColor(snap.Phase))
	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))
	streakStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorStreak))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render("=== FOCUSFORGE ==="))
	sections = append(sections, timerStyle.Render(fmt.Sprintf("[%s %s]", snap.Phase.Label(), timeutil.FormatClock(snap.Remaining))))
	sections = append(sections, "")
	sections = append(sections, taskStyle.Render(fmt.Sprintf("Focus: %s", snap.FocusTask)))
	sections = append(sections, streakStyle.Render(fmt.Sprintf("Streak: %d day(s) | Today: %d session(s)", snap.Streak.Current, snap.TodayCount)))
	sections = append(sections, "")
	sections = append(sections, m.viewTasks(snap, taskStyle))

	if m.notice != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Bold(true).Render(m.notice))
	}

	sections = append(sections, "")
	if m.inputMode {
		sections = append(sections, m.input.View())
	} else if m.gitBranch != "" {
		sections = append(sections, helpStyle.Render(fmt.Sprintf("Press '?' for help, 'q' to quit  [%s]", m.gitBranch)))
	} else {
		sections = append(sections, helpStyle.Render("Press '?' for help, 'q' to quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewTasks renders the numbered task list with the selection marker.
func (m Model) viewTasks(snap services.Snapshot, taskStyle lipgloss.Style) string {
	var b strings.Builder
	b.WriteString("Tasks:\n")

	if !snap.HasTasks {
		b.WriteString(taskStyle.Render("  (no tasks, press Enter to add one)"))
		return b.String()
	}

	for i, task := range snap.Tasks {
		marker := "  "
		if i == snap.Selected {
			marker = "> "
		}
		status := " "
		if task.Done {
			status = "X"
		}
		line := fmt.Sprintf("%s%d. [%s] %s", marker, i+1, status, task.Text)
		if i == snap.Selected {
			b.WriteString(lipgloss.NewStyle().Bold(true).Render(line))
		} else {
			b.WriteString(taskStyle.Render(line))
		}
		if i < len(snap.Tasks)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// viewHelp renders the full-screen key reference.
func (m Model) viewHelp() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	lines := []string{
		titleStyle.Render("FOCUSFORGE HELP"),
		"",
		"SESSION COMMANDS:",
		"a          - Start focus session",
		"f          - Start break session",
		"s          - Stop session",
		"d          - Skip current session",
		"",
		"TASK COMMANDS:",
		"Enter      - Add new task / command line",
		"Space      - Set focus task",
		"j          - Mark task done",
		"k          - Unmark task",
		"l          - Remove task",
		"w/x        - Navigate tasks",
		"",
		"COMMAND LINE:",
		"a <text>   - Add task",
		"t <text>   - Set focus task",
		"d/u/r <n>  - Done/unmark/remove task n",
		"anything else adds a task",
		"",
		"OTHER:",
		"q          - Quit",
		"?          - Toggle help",
		"",
		helpStyle.Render("Press any key to continue..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// phaseColor maps the timer phase to its theme color.
func (m Model) phaseColor(phase domain.Phase) lipgloss.Color {
	if phase == domain.PhaseBreak {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorFocus)
}

// tickCmd schedules the next one-second tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
