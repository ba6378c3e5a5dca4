package components

// ScaleComponent 存储实体级别的缩放因子
// 用于出现/待机/散落动画，仅影响表现层，不参与碰撞计算
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleY float64
}
