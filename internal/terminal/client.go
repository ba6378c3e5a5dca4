package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

// FrameInterval 终端刷新间隔（约 60 FPS）
const FrameInterval = 16 * time.Millisecond

// maxFrameDelta 单帧最大时间间隔（秒）
const maxFrameDelta = 0.25

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	kindStyles   = map[components.ActorKind]tcell.Style{
		components.KindPlayer:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		components.KindCapture:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
		components.KindConvoyLink: tcell.StyleDefault.Foreground(tcell.ColorAqua),
		components.KindHazard:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
)

// Client 终端前端：把 tcell 事件转换为转向目标，按快照绘制
type Client struct {
	screen tcell.Screen
	sim    *sim.Simulation
	stats  *game.StatsManager

	clock    utils.FrameClock
	recorded bool
}

// NewClient 创建终端前端，screen 必须已经 Init；stats 可为 nil
func NewClient(screen tcell.Screen, s *sim.Simulation, stats *game.StatsManager) *Client {
	return &Client{screen: screen, sim: s, stats: stats}
}

// hudRows 顶部 HUD 占用的行数
const hudRows = 1

// projector 当前屏幕尺寸下的投影（HUD 行之外的区域）
func (c *Client) projector() Projector {
	cols, rows := c.screen.Size()
	rows -= hudRows
	if rows < 1 {
		rows = 1
	}
	return Projector{Cols: cols, Rows: rows, Visible: c.sim.VisibleRect()}
}

// HandleEvent 处理一个 tcell 事件，返回 false 表示退出
func (c *Client) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				c.restart()
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if y >= hudRows {
				c.sim.SetSteeringTarget(c.projector().WorldOf(x, y-hudRows))
			}
		}

	case *tcell.EventResize:
		c.screen.Sync()
	}
	return true
}

// Tick 推进一帧并记录终局
func (c *Client) Tick(dt float64) {
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	c.sim.Step(dt)

	if c.sim.Phase() != game.PhasePlaying && !c.recorded {
		c.recorded = true
		if c.stats != nil {
			result := c.sim.Result()
			if err := c.stats.RecordResult(&result); err != nil {
				log.Printf("[Terminal] Warning: failed to record result: %v", err)
			}
		}
	}
}

// advance 按墙钟时间推进一帧，新的一局第一帧间隔为 0
func (c *Client) advance(now time.Time) {
	c.Tick(c.clock.Delta(now))
}

func (c *Client) restart() {
	c.sim.Reset()
	c.clock.Reset()
	c.recorded = false
}

// Draw 把当前快照绘制到屏幕
func (c *Client) Draw() {
	c.screen.Clear()
	snap := c.sim.Snapshot()

	for _, cell := range c.projector().Cells(snap) {
		style, ok := kindStyles[cell.Kind]
		if !ok {
			style = styleDefault
		}
		c.screen.SetContent(cell.Col, cell.Row+hudRows, cell.Rune, nil, style)
	}

	c.drawText(0, 0, styleHUD, hudText(snap))
	if snap.GameOver {
		c.drawBanner(bannerText(snap))
	}
	c.screen.Show()
}

func hudText(snap *sim.Snapshot) string {
	return fmt.Sprintf(" Lives %d | Convoy %d/%d | Captured %d | %.0fs | click: move  r: restart  q: quit",
		snap.Lives, snap.ChainLength(), snap.WinThreshold, snap.CapturedTotal, snap.Elapsed)
}

func bannerText(snap *sim.Snapshot) string {
	if snap.Phase == game.PhaseWon.String() {
		return " CONGA COMPLETE! press r to play again "
	}
	return " GAME OVER - press r to try again "
}

func (c *Client) drawBanner(text string) {
	cols, rows := c.screen.Size()
	x := (cols - len(text)) / 2
	if x < 0 {
		x = 0
	}
	c.drawText(x, rows/2, styleBanner, text)
}

func (c *Client) drawText(x, y int, style tcell.Style, text string) {
	cols, _ := c.screen.Size()
	for _, r := range text {
		if x >= cols {
			return
		}
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run 主循环：后台 goroutine 读取事件，按 FrameInterval 推进和绘制
func (c *Client) Run() {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !c.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			c.advance(now)
			c.Draw()
		}
	}
}
