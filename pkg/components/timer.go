package components

// SpawnTimer 固定间隔的生成计时器
//
// 累积时间达到间隔后触发，并把累积值重置为 0（不保留余数），
// 因此一次卡顿的长帧不会导致补偿性的连续生成。
type SpawnTimer struct {
	Kind        ActorKind // 触发时生成的实体种类
	Interval    float64   // 触发间隔（秒）
	Accumulated float64   // 当前累积时间（秒）
}
