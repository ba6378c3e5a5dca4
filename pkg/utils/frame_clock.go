package utils

import "time"

// FrameClock 把墙钟时间换算成帧间隔（秒）
//
// 第一次调用返回 0，时钟回拨时返回 0。
type FrameClock struct {
	last time.Time
}

// Delta 返回距上次调用经过的秒数
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset 下一次 Delta 重新从 0 开始
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
