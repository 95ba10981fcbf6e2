package person

import "context"

// Repository 联系人仓储接口
// 1. 只负责聚合根的持久化，列表查询走应用层的查询仓储
// 2. 软删除的联系人对所有方法不可见
type Repository interface {
	// FindByID loads a person with both addresses. Missing or soft-deleted
	// people yield an error wrapping shared.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*Person, error)

	// Add inserts a new person and assigns its identity via Person.AssignID.
	Add(ctx context.Context, p *Person) error

	// Save persists changes to an existing person, including soft deletion.
	Save(ctx context.Context, p *Person) error
}
