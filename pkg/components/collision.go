package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
	Inset  float64 // 碰撞盒四边各向内收缩的距离（像素），危险实体用来缩小判定范围
}
