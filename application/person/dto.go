package person

// CreatePersonCommand 表示创建联系人的入参。
type CreatePersonCommand struct {
	FullName        string         `json:"fullName" validate:"notblank,max=70"`
	HomeAddress     AddressRequest `json:"homeAddress"`
	BusinessAddress AddressRequest `json:"businessAddress"`
}

// AddressRequest 表示一个地址及其电话号码。
type AddressRequest struct {
	AddressLine  string   `json:"addressLine" validate:"notblank,min=2,max=256"`
	PhoneNumbers []string `json:"phoneNumbers" validate:"dive,phone"`
}

// EditPersonCommand 表示修改联系人姓名的入参。
type EditPersonCommand struct {
	ID       int64  `json:"id" validate:"gt=0"`
	FullName string `json:"fullName" validate:"notblank,max=70"`
}

// DeletePersonCommand 表示删除联系人的入参。
type DeletePersonCommand struct {
	ID int64 `json:"id" validate:"gt=0"`
}

// UpdateAddressCommand replaces one address slot. AddressType is set by the
// endpoint, not the body.
type UpdateAddressCommand struct {
	PersonID    int64          `json:"personId" validate:"gt=0"`
	AddressType string         `json:"-" validate:"oneof=Home Business"`
	Address     AddressRequest `json:"address"`
}

type GetPersonQuery struct {
	ID int64 `json:"id" validate:"gt=0"`
}

// ListPeopleQuery 分页查询入参；缺省的页码和页大小由绑定层填默认值，显式的 0 视为非法。
type ListPeopleQuery struct {
	FullName   string `form:"fullName" validate:"omitempty,max=70"`
	PageNumber int    `form:"pageNumber,default=1" validate:"gte=1"`
	PageSize   int    `form:"pageSize,default=10" validate:"gte=1"`
}

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// NewListPeopleQuery returns a first-page query with the default page size.
func NewListPeopleQuery(fullName string) ListPeopleQuery {
	return ListPeopleQuery{FullName: fullName, PageNumber: DefaultPageNumber, PageSize: DefaultPageSize}
}

// Offset 按页码计算偏移量
func (q ListPeopleQuery) Offset() int {
	return (q.PageNumber - 1) * q.PageSize
}

// PersonDto 表示联系人返回模型。
type PersonDto struct {
	ID        int64        `json:"id"`
	FullName  string       `json:"fullName"`
	Addresses []AddressDto `json:"addresses"`
}

// AddressDto 表示地址返回模型。
type AddressDto struct {
	AddressLine  string   `json:"addressLine"`
	AddressType  string   `json:"addressType"`
	PhoneNumbers []string `json:"phoneNumbers"`
}

// PaginatedList 分页结果
type PaginatedList[T any] struct {
	Items           []T   `json:"items"`
	PageNumber      int   `json:"pageNumber"`
	TotalPages      int   `json:"totalPages"`
	TotalCount      int64 `json:"totalCount"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}

func NewPaginatedList[T any](items []T, totalCount int64, pageNumber, pageSize int) *PaginatedList[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return &PaginatedList[T]{
		Items:           items,
		PageNumber:      pageNumber,
		TotalPages:      totalPages,
		TotalCount:      totalCount,
		HasPreviousPage: pageNumber > 1,
		HasNextPage:     pageNumber < totalPages,
	}
}
