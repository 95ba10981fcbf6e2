package shared

// AggregateRoot 聚合根接口
// 聚合根是一致性边界的入口，所有对内部值对象的修改都必须经过它。
type AggregateRoot interface {
	// AggregateID 返回聚合根的全局标识（持久化前为空字符串）
	AggregateID() string

	// PullEvents 获取并清空聚合根记录的领域事件
	PullEvents() []DomainEvent
}

// Entity 实体接口，通过标识判断相等性
type Entity interface {
	AggregateID() string
}

// ValueObject 值对象接口
// 值对象没有标识，不可变，通过属性值判断相等性
type ValueObject[T any] interface {
	Equals(other T) bool
}
