package utils

import "math"

// Vector2 二维向量（值类型，不可变）
// 同时用于表示位置（点）和速度/位移（向量）
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec2 构造一个二维向量
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add 向量加法
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法（v - o）
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 标量乘法
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Length 向量长度
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized 返回单位向量
//
// 零向量（或长度非有限值）返回零向量，保证不会产生 NaN。
func (v Vector2) Normalized() Vector2 {
	length := v.Length()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Angle 返回向量方向角（弧度，atan2 语义）
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero 是否为零向量
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite 两个分量是否都是有限值
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// ShortestAngleBetween 计算从 angle1 转到 angle2 的最短有符号角度差
//
// 返回值范围 (-π, π]。
func ShortestAngleBetween(angle1, angle2 float64) float64 {
	twoPi := math.Pi * 2
	angle := math.Mod(angle2-angle1, twoPi)
	if angle > math.Pi {
		angle -= twoPi
	}
	if angle <= -math.Pi {
		angle += twoPi
	}
	return angle
}

// Sign 返回 1（x >= 0）或 -1（x < 0）
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// Clamp 将值限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
