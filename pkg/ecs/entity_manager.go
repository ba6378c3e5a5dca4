package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 组件按类型分桶存储（ComponentType -> EntityID -> Component），
// 查询只需遍历最小的那个桶，查询结果按 EntityID 升序返回，保证每帧遍历顺序确定。
type EntityManager struct {
	nextID uint64
	// 存活实体集合
	entities map[EntityID]struct{}
	// 组件存储: ComponentType -> EntityID -> Component实例
	stores map[reflect.Type]map[EntityID]interface{}
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		entities:          make(map[EntityID]struct{}),
		stores:            make(map[reflect.Type]map[EntityID]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities[id] = struct{}{}
	return id
}

// Exists 检查实体是否存活（标记删除但尚未清理的实体仍视为存活）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.entities[id]
	return ok
}

// Count 返回存活实体数量
func (em *EntityManager) Count() int {
	return len(em.entities)
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	for _, pending := range em.entitiesToDestroy {
		if pending == id {
			return
		}
	}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarkedForDestroy 检查实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	for _, pending := range em.entitiesToDestroy {
		if pending == id {
			return true
		}
	}
	return false
}

// AddComponent 为实体添加组件（同类型组件会被替换）
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if !em.Exists(id) {
		return
	}
	componentType := reflect.TypeOf(component)
	store, ok := em.stores[componentType]
	if !ok {
		store = make(map[EntityID]interface{})
		em.stores[componentType] = store
	}
	store[id] = component
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if store, ok := em.stores[componentType]; ok {
		delete(store, id)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	store, ok := em.stores[componentType]
	if !ok {
		return nil, false
	}
	comp, found := store[id]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体
//
// 返回被清理的实体ID（按标记顺序）
func (em *EntityManager) RemoveMarkedEntities() []EntityID {
	if len(em.entitiesToDestroy) == 0 {
		return nil
	}
	removed := make([]EntityID, 0, len(em.entitiesToDestroy))
	for _, id := range em.entitiesToDestroy {
		if !em.Exists(id) {
			continue
		}
		for _, store := range em.stores {
			delete(store, id)
		}
		delete(em.entities, id)
		removed = append(removed, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	return removed
}

// Clear 删除所有实体（ID 计数不重置，避免新旧实体 ID 混淆）
func (em *EntityManager) Clear() {
	em.entities = make(map[EntityID]struct{})
	em.stores = make(map[reflect.Type]map[EntityID]interface{})
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（升序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	if len(componentTypes) == 0 {
		for id := range em.entities {
			result = append(result, id)
		}
		sortIDs(result)
		return result
	}

	// 从最小的组件桶开始遍历
	var smallest map[EntityID]interface{}
	for _, ct := range componentTypes {
		store, ok := em.stores[ct]
		if !ok || len(store) == 0 {
			return result
		}
		if smallest == nil || len(store) < len(smallest) {
			smallest = store
		}
	}

	for id := range smallest {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := em.stores[ct][id]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sortIDs(result)
	return result
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// ========================================
// 泛型 API（类型安全，调用方无需 reflect.TypeOf 和类型断言）
// ========================================

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 泛型版本的组件获取
//
// 用法: pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// AddComponent 泛型版本的组件添加
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// HasComponent 泛型版本的组件检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 泛型版本的组件移除
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有 1 种组件的实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询拥有 2 种组件的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询拥有 3 种组件的实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
