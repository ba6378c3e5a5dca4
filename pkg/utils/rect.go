package utils

// Rect 轴对齐矩形（世界坐标，Y 轴向上或向下均可，只依赖 Min/Max）
type Rect struct {
	X      float64 `json:"x"` // 左边界
	Y      float64 `json:"y"` // 下边界（数值较小的一侧）
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// NewRect 创建矩形
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCenter 以中心点和尺寸创建矩形
func RectFromCenter(center Vector2, width, height float64) Rect {
	return Rect{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// MinX 左边界
func (r Rect) MinX() float64 { return r.X }

// MaxX 右边界
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY 下边界
func (r Rect) MinY() float64 { return r.Y }

// MaxY 上边界
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center 矩形中心
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects 判断两个矩形是否重叠（边界接触也算重叠）
func (r Rect) Intersects(o Rect) bool {
	return r.MaxX() >= o.MinX() &&
		r.MinX() <= o.MaxX() &&
		r.MaxY() >= o.MinY() &&
		r.MinY() <= o.MaxY()
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Inset 向内收缩 dx/dy（两侧各收缩），尺寸不会小于 0
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
	if out.Width < 0 {
		out.X = r.X + r.Width/2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = r.Y + r.Height/2
		out.Height = 0
	}
	return out
}
