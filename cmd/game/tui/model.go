package tui

import (
	"fmt"
	"strings"
	"time"

	"worldsporta/internal/game"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	boardCols = 40
	boardRows = 12
	lowTime   = 5 // Seconds left when the clock turns red
)

// targetKeys are the keys a target can ask for
var targetKeys = []string{"a", "s", "d", "f", "j", "k", "l"}

// tickMsg is one second of countdown
type tickMsg time.Time

// Model is the bubbletea model for the terminal game
type Model struct {
	session  *game.Session
	quitting bool
}

// NewModel wraps a session whose ticks are driven manually
func NewModel(session *game.Session) Model {
	return Model{session: session}
}

// Init starts idle; the countdown begins with the first Start
func (m Model) Init() tea.Cmd {
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(game.TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles key presses and countdown ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.session.Close()
			return m, tea.Quit
		}
		snap := m.session.Snapshot()
		if snap.Phase != game.Playing {
			if key == " " || key == "enter" {
				m.session.Start()
				return m, tickCmd()
			}
			return m, nil
		}
		if key == TargetKey(snap.Target) {
			m.session.Hit()
		}
		return m, nil

	case tickMsg:
		if m.session.Tick() {
			return m, tickCmd()
		}
		return m, nil
	}
	return m, nil
}

// View renders the HUD, the board and the key help
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("REFLEX ARENA."))
	b.WriteString("\n")

	clock := hudStyle
	if snap.Phase == game.Playing && snap.TimeLeft <= lowTime {
		clock = lowTimeStyle
	}
	b.WriteString(hudStyle.Render(fmt.Sprintf("Score: %d", snap.Score)))
	b.WriteString("   ")
	b.WriteString(clock.Render(fmt.Sprintf("Time: %ds", snap.TimeLeft)))
	b.WriteString("\n")

	b.WriteString(boardStyle.Render(board(snap)))
	b.WriteString("\n")

	switch snap.Phase {
	case game.Playing:
		b.WriteString(helpStyle.Render("press the highlighted key • q quit"))
	case game.Finished:
		b.WriteString(helpStyle.Render(fmt.Sprintf("final score %d • space to play again • q quit", snap.Score)))
	default:
		b.WriteString(helpStyle.Render("space to start • q quit"))
	}
	return b.String()
}

// Summary is printed after the program exits
func (m Model) Summary() string {
	snap := m.session.Snapshot()
	return fmt.Sprintf("Final score: %d", snap.Score)
}

// TargetKey maps a target position to the key that hits it
func TargetKey(p game.Position) string {
	return targetKeys[int(p.X+p.Y)%len(targetKeys)]
}

// board draws the playing field with the target key in place
func board(snap game.Snapshot) string {
	blank := strings.Repeat(" ", boardCols)
	rows := make([]string, boardRows)
	for i := range rows {
		rows[i] = blank
	}
	if snap.Phase == game.Playing {
		col := cell(snap.Target.X, boardCols)
		row := cell(snap.Target.Y, boardRows)
		rows[row] = blank[:col] + targetStyle.Render(TargetKey(snap.Target)) + blank[col+1:]
	}
	return strings.Join(rows, "\n")
}

// cell maps a target coordinate in [10, 90) onto one of n board cells
func cell(v float64, n int) int {
	return max(0, min(int((v-10)/80*float64(n)), n-1))
}
