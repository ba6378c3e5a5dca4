// Package terminal 在字符终端中运行对局（tcell 绘制，beep 发声）
package terminal

import (
	"math"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

// Projector 在可见区域和字符网格之间做坐标换算
//
// 终端字符宽高比约 1:2，横纵方向使用各自的缩放，整块网格始终覆盖整个可见区域。
type Projector struct {
	Cols, Rows int
	Visible    utils.Rect
}

// CellOf 世界坐标所在的字符格，落在网格外时返回 false
func (p Projector) CellOf(pos utils.Vector2) (col, row int, ok bool) {
	if p.Cols <= 0 || p.Rows <= 0 || p.Visible.Width <= 0 || p.Visible.Height <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor((pos.X - p.Visible.MinX()) / p.Visible.Width * float64(p.Cols)))
	row = int(math.Floor((pos.Y - p.Visible.MinY()) / p.Visible.Height * float64(p.Rows)))
	if col < 0 || col >= p.Cols || row < 0 || row >= p.Rows {
		return col, row, false
	}
	return col, row, true
}

// WorldOf 字符格中心对应的世界坐标
func (p Projector) WorldOf(col, row int) utils.Vector2 {
	if p.Cols <= 0 || p.Rows <= 0 {
		return p.Visible.Center()
	}
	return utils.Vector2{
		X: p.Visible.MinX() + (float64(col)+0.5)*p.Visible.Width/float64(p.Cols),
		Y: p.Visible.MinY() + (float64(row)+0.5)*p.Visible.Height/float64(p.Rows),
	}
}

// Glyph 每种实体的显示字符
func Glyph(kind components.ActorKind) rune {
	switch kind {
	case components.KindPlayer:
		return '@'
	case components.KindCapture:
		return 'o'
	case components.KindConvoyLink:
		return '*'
	case components.KindHazard:
		return 'X'
	default:
		return ' '
	}
}

// Cell 网格中的一个字符
type Cell struct {
	Col, Row int
	Rune     rune
	Kind     components.ActorKind
}

// Cells 把快照投影成字符列表
//
// 背景图块和不可见实体不输出；同一格内按 ID 升序后写入者覆盖先写入者，
// 玩家最后输出，保证总在最上层。
func (p Projector) Cells(snap *sim.Snapshot) []Cell {
	var cells []Cell
	var player *Cell
	for _, a := range snap.Actors {
		if a.Kind == components.KindBackgroundTile || !a.Visible {
			continue
		}
		col, row, ok := p.CellOf(utils.Vec2(a.X, a.Y))
		if !ok {
			continue
		}
		c := Cell{Col: col, Row: row, Rune: Glyph(a.Kind), Kind: a.Kind}
		if a.Kind == components.KindPlayer {
			player = &c
			continue
		}
		cells = append(cells, c)
	}
	if player != nil {
		cells = append(cells, *player)
	}
	return cells
}
