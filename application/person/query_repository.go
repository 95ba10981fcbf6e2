package person

import (
	"context"

	"contactbook/domain/person"
	"contactbook/domain/shared"
)

//go:generate mockgen -source=query_repository.go -destination=mocks/query_repository.go -package=mocks

// PeopleQueryRepository 读侧查询接口，直接返回 DTO，不经过聚合根。
// 软删除的联系人不可见。
type PeopleQueryRepository interface {
	// GetPerson returns nil, nil when the person does not exist.
	GetPerson(ctx context.Context, id int64) (*PersonDto, error)

	// ListPeople returns one page ordered by id ascending plus the total
	// number of matches.
	ListPeople(ctx context.Context, filter shared.Specification[*person.Person], offset, limit int) ([]PersonDto, int64, error)
}

// PeopleReadModel is the denormalised read path served by hand-written SQL.
type PeopleReadModel interface {
	FindPerson(ctx context.Context, id int64) (*PersonDto, error)
	SearchPeople(ctx context.Context, fullName string, offset, limit int) ([]PersonDto, int64, error)
}
