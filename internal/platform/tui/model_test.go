package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catch-treasure/internal/core"
	"github.com/vovakirdan/catch-treasure/internal/storage"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
	endOn  int // Step index that ends the run, 0 for never
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1, Lives: 3}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionReset) {
		g.state = core.GameState{Level: 1, Lives: 3, BestScore: g.state.BestScore}
		return core.StepResult{State: g.state}
	}
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}

	g.state.Ticks++
	g.state.Score++
	if g.endOn > 0 && len(g.frames) == g.endOn {
		g.state.GameOver = true
		g.state.BestScore = max(g.state.BestScore, g.state.Score)
		return core.StepResult{State: g.state, Ended: true}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return NewModel(g, store, nil, cfg)
}

func pressKey(m Model, msg tea.KeyMsg, now time.Time) (Model, tea.Cmd) {
	next, cmd := m.handleKey(msg, now)
	return next.(Model), cmd
}

func stepAt(m Model, now time.Time) Model {
	next, _ := m.handleTick(now)
	return next.(Model)
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{runeKey("a"), core.ActionMoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{runeKey("d"), core.ActionMoveRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionShoot},
		{runeKey("p"), core.ActionTogglePause},
		{runeKey("r"), core.ActionReset},
		{runeKey("f"), core.ActionToggleFullscreen},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{runeKey("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey("x"), core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.action {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.action)
		}
	}
}

func TestNewModelResetsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	if g.resets != 1 {
		t.Errorf("expected one reset, got %d", g.resets)
	}
	if m.screen.Height() != 23 {
		t.Errorf("play area height = %d, expected one row left for help", m.screen.Height())
	}
}

func TestNewModelLogsGameTitle(t *testing.T) {
	var buf bytes.Buffer
	g := &stubGame{}
	m := NewModel(g, nil, log.New(&buf), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	if !strings.Contains(buf.String(), "game=Stub") {
		t.Errorf("run start log should name the game, got %q", buf.String())
	}
	if m.Init() == nil {
		t.Error("Init should return the title and tick commands")
	}
}

func TestHeldMovementWindow(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	t0 := time.Unix(1000, 0)

	m, _ = pressKey(m, tea.KeyMsg{Type: tea.KeyLeft}, t0)
	m = stepAt(m, t0.Add(50*time.Millisecond))
	m = stepAt(m, t0.Add(150*time.Millisecond))
	m = stepAt(m, t0.Add(DefaultHoldWindow+time.Millisecond))

	want := []bool{true, true, false}
	for i, w := range want {
		if got := g.frames[i].Has(core.ActionMoveLeft); got != w {
			t.Errorf("tick %d: MoveLeft = %v, expected %v", i, got, w)
		}
	}

	// Key repeat extends the hold
	t1 := t0.Add(time.Second)
	m, _ = pressKey(m, tea.KeyMsg{Type: tea.KeyLeft}, t1)
	m, _ = pressKey(m, tea.KeyMsg{Type: tea.KeyLeft}, t1.Add(150*time.Millisecond))
	stepAt(m, t1.Add(300*time.Millisecond))
	if !g.frames[3].Has(core.ActionMoveLeft) {
		t.Error("repeated key should keep the paddle moving")
	}
}

func TestOppositeDirectionCancelsHold(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	t0 := time.Unix(1000, 0)

	m, _ = pressKey(m, tea.KeyMsg{Type: tea.KeyLeft}, t0)
	m, _ = pressKey(m, tea.KeyMsg{Type: tea.KeyRight}, t0.Add(10*time.Millisecond))
	stepAt(m, t0.Add(20*time.Millisecond))

	f := g.frames[0]
	if f.Has(core.ActionMoveLeft) || !f.Has(core.ActionMoveRight) {
		t.Errorf("expected only MoveRight, got %v", f.Actions)
	}
}

func TestOneShotActions(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)
	now := time.Unix(1000, 0)

	m, _ = pressKey(m, runeKey(" "), now)
	m, _ = pressKey(m, runeKey("p"), now)
	m = stepAt(m, now)
	stepAt(m, now)

	if !g.frames[0].Has(core.ActionShoot) || !g.frames[0].Has(core.ActionTogglePause) {
		t.Errorf("first tick missing one-shot actions: %v", g.frames[0].Actions)
	}
	if len(g.frames[1].Actions) != 0 {
		t.Errorf("one-shot actions leaked into the next tick: %v", g.frames[1].Actions)
	}
}

func TestQuitAndFullscreen(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m, cmd := pressKey(m, runeKey("f"), time.Now())
	if m.fullscreen || cmd == nil {
		t.Error("f should leave the alternate screen")
	}
	m, cmd = pressKey(m, runeKey("f"), time.Now())
	if !m.fullscreen || cmd == nil {
		t.Error("f again should re-enter the alternate screen")
	}

	m, cmd = pressKey(m, tea.KeyMsg{Type: tea.KeyEsc}, time.Now())
	if !m.quitting || cmd == nil {
		t.Error("esc should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if len(g.frames) != 0 {
		t.Error("platform keys must not reach the simulation")
	}
}

func TestGameOverRecordsRunOnce(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{endOn: 5}
	m := newTestModel(t, g, store)
	now := time.Unix(1000, 0)

	for range 8 {
		m = stepAt(m, now)
	}
	// Quitting after game over must not add a second row
	pressKey(m, runeKey("q"), now)

	runs, _ := store.TopRuns(10)
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 5 || r.Ticks != 5 || r.Outcome != storage.OutcomeGameOver || r.Seed != 7 {
		t.Errorf("unexpected run: %+v", r)
	}
}

func TestRestartRecordsAbandonedRun(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := newTestModel(t, g, store)
	now := time.Unix(1000, 0)

	m = stepAt(m, now)
	m = stepAt(m, now)
	m, _ = pressKey(m, runeKey("r"), now)
	m = stepAt(m, now)

	// Nothing played since the restart: quitting records nothing
	pressKey(m, runeKey("q"), now)

	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeQuit || runs[0].Score != 2 {
		t.Errorf("unexpected run: %+v", runs[0])
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	next, _ := m.handleResize(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if g.resets != 1 {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("view should contain the rendered game")
	}
}

func TestRunsTable(t *testing.T) {
	runs := []storage.Run{
		{RunID: "0123456789abcdef", Score: 42, Level: 5, Ticks: 3900, Outcome: storage.OutcomeGameOver},
		{RunID: "fedcba9876543210", Score: 7, Level: 1, Ticks: 600, Outcome: storage.OutcomeQuit},
	}
	out := RunsTable("RUNS THIS SESSION", runs, &storage.Stats{Runs: 2, BestScore: 42, AvgScore: 24.5}, 60)

	for _, want := range []string{"RUNS THIS SESSION", "42", "1:05", "game_over", "01234567", "best 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("runs table missing %q:\n%s", want, out)
		}
	}

	if out := RunsTable("RUNS THIS SESSION", nil, nil, 60); !strings.Contains(out, "No runs recorded.") {
		t.Error("empty ledger should say so")
	}
}

func TestRunsReport(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	tests := []struct {
		name       string
		scores     []int
		wantRecent bool
	}{
		{"empty", nil, false},
		{"single run", []int{12}, false},
		{"several runs", []int{9, 31, 4}, true},
	}

	recorded := 0
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, score := range tc.scores {
				if _, err := store.RecordRun(storage.Run{Score: score, Level: 1, Ticks: 60}); err != nil {
					t.Fatalf("RecordRun() failed: %v", err)
				}
				recorded++
			}

			out, err := RunsReport(store, 60)
			if err != nil {
				t.Fatalf("RunsReport() failed: %v", err)
			}
			if !strings.Contains(out, "RUNS THIS SESSION") {
				t.Errorf("report missing ranked table:\n%s", out)
			}
			if got := strings.Contains(out, "LAST RUNS"); got != tc.wantRecent {
				t.Errorf("recent table shown = %v, expected %v (%d runs)", got, tc.wantRecent, recorded)
			}
		})
	}
}
