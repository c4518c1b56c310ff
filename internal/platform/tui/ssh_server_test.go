package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSessionModel(testRuntime(), "alice", nil)
	b := NewSessionModel(testRuntime(), "alice", nil)

	if a.ID() == uuid.Nil {
		t.Error("session ID should not be nil")
	}
	if a.ID() == b.ID() {
		t.Error("sessions should get distinct IDs")
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := NewSessionModel(testRuntime(), "alice", nil)

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	if m.quitting {
		t.Error("selecting a game must not end the session")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InGame() {
		t.Fatal("esc should return to the menu")
	}
	if m.quitting {
		t.Error("back to menu must not end the session")
	}

	m, cmd = updateSession(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(testRuntime(), "bob", nil)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("ctrl+c in a game should end the session")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestSessionTracksResize(t *testing.T) {
	m := NewSessionModel(testRuntime(), "carol", nil)
	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.gameModel == nil {
		t.Fatal("game model not created")
	}
	if m.gameModel.config.ScreenW != 90 || m.gameModel.config.ScreenH != 30 {
		t.Errorf("game screen = %dx%d, want 90x30", m.gameModel.config.ScreenW, m.gameModel.config.ScreenH)
	}
}

func TestSSHServerConfigFrom(t *testing.T) {
	cfg := config.Default()
	cfg.Board.Size = 5
	cfg.Platform.TickRate = 30
	cfg.Server.Address = ":2222"
	cfg.Server.HostKey = "/tmp/key"
	cfg.Server.IdleTimeout = 5 * time.Minute

	got := SSHServerConfigFrom(cfg)
	if got.Address != ":2222" || got.HostKeyPath != "/tmp/key" || got.IdleTimeout != 5*time.Minute {
		t.Errorf("SSHServerConfigFrom() = %+v", got)
	}
	if got.Runtime.BoardSize != 5 || got.Runtime.TickRate != 30 {
		t.Errorf("Runtime = %+v, want size 5 at 30 ticks", got.Runtime)
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if want := filepath.Join(home, ".t2048", "host_key"); got != want {
		t.Errorf("resolveHostKeyPath(\"\") = %q, want %q", got, want)
	}

	if got, _ := resolveHostKeyPath("/etc/key"); got != "/etc/key" {
		t.Errorf("resolveHostKeyPath(/etc/key) = %q", got)
	}
}

func TestSessionGameDoesNotWriteScreenshots(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewSessionModel(testRuntime(), "mallory", nil)
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("enter should start the selected game")
	}
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.gameModel.shotDir != "" {
		t.Errorf("session game screenshot dir = %q, want disabled", m.gameModel.shotDir)
	}
	entries, err := os.ReadDir(home)
	if err != nil {
		t.Fatalf("ReadDir(%s) failed: %v", home, err)
	}
	if len(entries) != 0 {
		t.Errorf("remote ctrl+s wrote %d entries to the server's $HOME", len(entries))
	}
}
