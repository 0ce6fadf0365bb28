package tui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"worldsporta/internal/game"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() (Model, *game.Session) {
	s := game.NewSession(game.WithManualTicks(), game.WithRand(rand.New(rand.NewPCG(1, 2))))
	return NewModel(s), s
}

func press(m tea.Model, key string) (tea.Model, tea.Cmd) {
	if key == " " {
		return m.Update(tea.KeyMsg{Type: tea.KeySpace})
	}
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestModel_SpaceStartsGame(t *testing.T) {
	m, s := newTestModel()

	_, cmd := press(m, " ")

	assert.NotNil(t, cmd)
	assert.Equal(t, game.Playing, s.Snapshot().Phase)
}

func TestModel_KeysIgnoredWhileIdle(t *testing.T) {
	m, s := newTestModel()

	_, cmd := press(m, "a")

	assert.Nil(t, cmd)
	assert.Equal(t, game.Idle, s.Snapshot().Phase)
}

func TestModel_TargetKeyScores(t *testing.T) {
	m, s := newTestModel()
	next, _ := press(m, " ")

	key := TargetKey(s.Snapshot().Target)
	next, _ = press(next, key)

	assert.Equal(t, game.HitPoints, s.Snapshot().Score)
	assert.NotNil(t, next)
}

func TestModel_WrongKeyMisses(t *testing.T) {
	m, s := newTestModel()
	next, _ := press(m, " ")

	target := TargetKey(s.Snapshot().Target)
	var wrong string
	for _, k := range targetKeys {
		if k != target {
			wrong = k
			break
		}
	}
	press(next, wrong)

	assert.Zero(t, s.Snapshot().Score)
}

func TestModel_TicksRunOutTheClock(t *testing.T) {
	m, s := newTestModel()
	var next tea.Model = m
	next, _ = press(next, " ")

	var cmd tea.Cmd
	for i := 0; i < game.Duration; i++ {
		next, cmd = next.Update(tickMsg(time.Now()))
	}

	assert.Nil(t, cmd, "no further tick is scheduled once the game ends")
	snap := s.Snapshot()
	assert.Equal(t, game.Finished, snap.Phase)
	assert.Zero(t, snap.TimeLeft)
	assert.Contains(t, next.View(), "final score 0")
}

func TestModel_QuitClosesSession(t *testing.T) {
	m, s := newTestModel()
	next, _ := press(m, " ")

	next, cmd := press(next, "q")

	require.NotNil(t, cmd)
	assert.Equal(t, game.Finished, s.Snapshot().Phase)
	assert.Empty(t, next.View())
}

func TestModel_ViewShowsTarget(t *testing.T) {
	m, s := newTestModel()
	next, _ := press(m, " ")

	view := next.View()

	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "Time: 15s")
	assert.Contains(t, view, TargetKey(s.Snapshot().Target))
	assert.Equal(t, "Final score: 0", m.Summary())
}

func TestBoard_PlacesTargetWithinBounds(t *testing.T) {
	snap := game.Snapshot{Phase: game.Playing, Target: game.Position{X: 89.9, Y: 89.9}}

	rows := strings.Split(board(snap), "\n")

	require.Len(t, rows, boardRows)
	assert.Contains(t, rows[boardRows-1], TargetKey(snap.Target))
}

func TestBoard_TargetRangeCoversWholeBoard(t *testing.T) {
	assert.Equal(t, 0, cell(10, boardRows))
	assert.Equal(t, boardRows-1, cell(89.99, boardRows))
	assert.Equal(t, 0, cell(10, boardCols))
	assert.Equal(t, boardCols-1, cell(89.99, boardCols))

	rows := strings.Split(board(game.Snapshot{Phase: game.Playing, Target: game.Position{X: 10, Y: 10}}), "\n")
	assert.True(t, strings.HasPrefix(rows[0], TargetKey(game.Position{X: 10, Y: 10})))
}
