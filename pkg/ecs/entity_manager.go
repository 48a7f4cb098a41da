package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// 仅作为弱引用使用：持有 ID 不会延长实体生命周期，使用前应通过 IsAlive 校验
type EntityID uint64

// ChangeKind 描述实体集合发生的结构性变化
type ChangeKind int

const (
	// ComponentAdded 实体新增（或替换）了一个组件
	ComponentAdded ChangeKind = iota
	// ComponentRemoved 实体移除了一个组件
	ComponentRemoved
	// EntityRemoved 实体被彻底清理
	EntityRemoved
)

// Change 是一次结构性变化通知
type Change struct {
	Kind          ChangeKind
	Entity        EntityID
	ComponentType reflect.Type // EntityRemoved 时为 nil
}

// ObserverID 是变化观察者的句柄，用于取消订阅
type ObserverID uint64

type observer struct {
	id ObserverID
	fn func(Change)
}

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 存活实体，按创建顺序排列（查询结果的顺序以此为准）
	order []EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID

	nextObserverID uint64
	observers      []observer
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// IsAlive 检查实体是否仍然存在
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	compMap, exists := em.components[id]
	if !exists {
		return
	}
	compMap[componentType] = component
	em.notify(Change{Kind: ComponentAdded, Entity: id, ComponentType: componentType})
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	compMap, exists := em.components[id]
	if !exists {
		return
	}
	if _, found := compMap[componentType]; !found {
		return
	}
	delete(compMap, componentType)
	em.notify(Change{Kind: ComponentRemoved, Entity: id, ComponentType: componentType})
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 每个被清理的实体都会产生一次 EntityRemoved 通知
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	removed := make([]EntityID, 0, len(em.entitiesToDestroy))
	for _, id := range em.entitiesToDestroy {
		if _, exists := em.components[id]; !exists {
			continue // 重复标记
		}
		delete(em.components, id)
		removed = append(removed, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	if len(removed) == 0 {
		return
	}
	kept := em.order[:0]
	for _, id := range em.order {
		if _, exists := em.components[id]; exists {
			kept = append(kept, id)
		}
	}
	em.order = kept

	for _, id := range removed {
		em.notify(Change{Kind: EntityRemoved, Entity: id})
	}
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按创建顺序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// Observe 注册结构性变化的观察者
// 回调在变化发生时同步调用
func (em *EntityManager) Observe(fn func(Change)) ObserverID {
	em.nextObserverID++
	id := ObserverID(em.nextObserverID)
	em.observers = append(em.observers, observer{id: id, fn: fn})
	return id
}

// Unobserve 取消观察者，返回是否确实移除了一个观察者
func (em *EntityManager) Unobserve(id ObserverID) bool {
	for i, o := range em.observers {
		if o.id == id {
			em.observers = append(em.observers[:i], em.observers[i+1:]...)
			return true
		}
	}
	return false
}

// ObserverCount 返回当前观察者数量
func (em *EntityManager) ObserverCount() int {
	return len(em.observers)
}

func (em *EntityManager) notify(c Change) {
	if len(em.observers) == 0 {
		return
	}
	// 快照：回调内部可能取消订阅
	snapshot := make([]observer, len(em.observers))
	copy(snapshot, em.observers)
	for _, o := range snapshot {
		o.fn(c)
	}
}
