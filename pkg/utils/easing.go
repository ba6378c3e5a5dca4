package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，超出范围先被截断

// EaseOutCubic 三次方缓出，开始快结束慢
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad 二次方缓入，开始慢结束快
func EaseInQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b（t 不做截断）
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVector 按分量线性插值
func LerpVector(a, b Vector2, t float64) Vector2 {
	return Vector2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}
