package terminal

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/entities"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

func newTestClient(t *testing.T, cfg *config.GameConfig, stats *game.StatsManager) (*Client, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	if cfg == nil {
		cfg = config.DefaultGameConfig()
		cfg.Seed = 3
		cfg.Camera.ScrollSpeed = 0
		cfg.Capture.SpawnInterval = 1e9
		cfg.Hazard.SpawnInterval = 1e9
	}
	s, err := sim.NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return NewClient(screen, s, stats), screen
}

func playerPosition(c *Client) utils.Vector2 {
	pos, _ := ecs.GetComponent[*components.PositionComponent](c.sim.EntityManager(), c.sim.PlayerID())
	return pos.Vector2
}

func TestClientQuitKeys(t *testing.T) {
	c, _ := newTestClient(t, nil, nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"other keys continue", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("HandleEvent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientMouseSteersPlayer(t *testing.T) {
	c, _ := newTestClient(t, nil, nil)
	start := playerPosition(c)

	// 右下角的格子在玩家的右下方
	target := c.projector().WorldOf(79, 22)
	c.HandleEvent(tcell.NewEventMouse(79, 22+hudRows, tcell.Button1, tcell.ModNone))
	c.Tick(0.1)

	got := playerPosition(c)
	if !(target.Sub(got).Length() < target.Sub(start).Length()) {
		t.Errorf("player did not move toward %v: %v -> %v", target, start, got)
	}
}

func TestClientFirstFrameHasZeroDelta(t *testing.T) {
	c, _ := newTestClient(t, nil, nil)
	start := time.Unix(1000, 0)

	c.advance(start)
	if got := c.sim.Snapshot().Elapsed; got != 0 {
		t.Fatalf("elapsed after first frame: got %v, want 0", got)
	}
	c.advance(start.Add(100 * time.Millisecond))
	if got := c.sim.Snapshot().Elapsed; math.Abs(got-0.1) > 1e-9 {
		t.Errorf("elapsed after second frame: got %v, want 0.1", got)
	}

	// 重新开始后第一帧同样从 0 开始
	c.restart()
	c.advance(start.Add(time.Hour))
	if got := c.sim.Snapshot().Elapsed; got != 0 {
		t.Errorf("elapsed after restart: got %v, want 0", got)
	}
}

func TestClientRecordsLossAndRestarts(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Seed = 3
	cfg.Player.Lives = 1
	cfg.Camera.ScrollSpeed = 0
	cfg.Capture.SpawnInterval = 1e9
	cfg.Hazard.SpawnInterval = 1e9

	stats := game.NewStatsManager(nil)
	c, screen := newTestClient(t, cfg, stats)

	if _, err := entities.NewHazardEntity(c.sim.EntityManager(), cfg, playerPosition(c), utils.Vector2{}); err != nil {
		t.Fatalf("NewHazardEntity: %v", err)
	}
	c.Tick(0.016)
	c.Tick(0.016)

	if got := stats.Stats().Losses; got != 1 {
		t.Fatalf("Losses = %d, want 1", got)
	}

	c.Draw()
	contents, w, _ := screen.GetContents()
	var row strings.Builder
	for _, cell := range contents[(24/2)*w : (24/2+1)*w] {
		if len(cell.Runes) > 0 {
			row.WriteRune(cell.Runes[0])
		}
	}
	if !strings.Contains(row.String(), "GAME OVER") {
		t.Errorf("banner row = %q, want GAME OVER", row.String())
	}

	c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if c.sim.Phase() != game.PhasePlaying {
		t.Errorf("phase after restart = %v, want playing", c.sim.Phase())
	}
	if c.recorded {
		t.Error("restart should clear the recorded flag")
	}
}

func TestBeeperStreamer(t *testing.T) {
	b := NewBeeper(nil)
	if b.Play(game.SoundCapture) {
		t.Error("uninitialized beeper should not play")
	}

	s, err := b.Streamer(game.SoundCapture)
	if err != nil {
		t.Fatalf("Streamer: %v", err)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	notes, _ := game.SoundNotes(game.SoundCapture)
	want := 0
	for _, n := range notes {
		want += int(n.Seconds * float64(sampleRate))
	}
	if total < want-len(notes) || total > want+len(notes) {
		t.Errorf("streamed %d samples, want about %d", total, want)
	}

	if _, err := b.Streamer("missing"); err == nil {
		t.Error("unknown sound should fail")
	}
}
