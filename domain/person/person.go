package person

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"contactbook/domain/shared"
)

// Person 聚合根 - 联系人
//
// 不变量:
//   - fullName 非空白且不超过 MaxFullNameLength 个字符
//   - 恰好两个地址：一个 Home，一个 Business
//
// Person 实例不是并发安全的，不应在多个请求之间共享。
type Person struct {
	id        int64
	fullName  string
	addresses []*Address

	created        time.Time
	createdBy      string
	lastModified   time.Time
	lastModifiedBy string

	isDeleted bool
	deleted   time.Time
	deletedBy string

	events []shared.DomainEvent
}

// NewPerson validates the name and both addresses before anything is built;
// on failure no instance is returned.
func NewPerson(fullName string, home, business *Address) (*Person, error) {
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}
	if err := validateSlot(home, Home, "home_address"); err != nil {
		return nil, err
	}
	if err := validateSlot(business, Business, "business_address"); err != nil {
		return nil, err
	}

	return &Person{
		fullName:  fullName,
		addresses: []*Address{home, business},
		events:    make([]shared.DomainEvent, 0),
	}, nil
}

func validateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return NewInvalidPersonError("full_name", "Full name cannot be empty.")
	}
	if utf8.RuneCountInString(fullName) > MaxFullNameLength {
		return NewInvalidPersonError("full_name",
			fmt.Sprintf("Full name must not exceed %d characters.", MaxFullNameLength))
	}
	return nil
}

func validateSlot(a *Address, want AddressType, field string) error {
	if a == nil {
		return NewInvalidPersonError(field, fmt.Sprintf("%s address is required.", want))
	}
	if a.Type() != want {
		return NewInvalidPersonError(field,
			fmt.Sprintf("%s address must be of type %s, got %s.", want, want, a.Type()))
	}
	return nil
}

// ============================================================================
// 业务行为
// ============================================================================

func (p *Person) UpdateFullName(fullName string) error {
	if err := validateFullName(fullName); err != nil {
		return err
	}
	previous := p.fullName
	p.fullName = fullName
	if p.id != 0 {
		p.recordEvent(NewPersonRenamedEvent(p.id, previous, fullName))
	}
	return nil
}

// UpdateAddress replaces the address held in slot t. A nil address, a missing
// slot, a type mismatch or an unchanged address is rejected.
func (p *Person) UpdateAddress(t AddressType, address *Address) error {
	if address == nil {
		return NewInvalidPersonError("address", "Address cannot be empty.")
	}
	idx := p.slotIndex(t)
	if idx < 0 {
		return NewInvalidPersonError("address_type",
			fmt.Sprintf("Person has no %s address to update.", t))
	}
	if address.Type() != t {
		return NewInvalidPersonError("address_type",
			fmt.Sprintf("Cannot replace the %s address with a %s address.", t, address.Type()))
	}
	if p.addresses[idx].Equals(address) {
		return NewInvalidPersonError("address", "No changes detected.")
	}

	p.addresses[idx] = address
	if p.id != 0 {
		p.recordEvent(NewPersonAddressUpdatedEvent(p.id, t, address.AddressLine()))
	}
	return nil
}

// Delete marks the person as soft-deleted. Deleting twice keeps the first stamp.
func (p *Person) Delete(actor string, at time.Time) {
	if p.isDeleted {
		return
	}
	p.isDeleted = true
	p.deleted = at
	p.deletedBy = actor
	if p.id != 0 {
		p.recordEvent(NewPersonDeletedEvent(p.id, actor, at))
	}
}

// SetCreationDetails 由持久化层在首次保存时调用
func (p *Person) SetCreationDetails(actor string, at time.Time) {
	p.created = at
	p.createdBy = actor
}

// SetLastModifiedDetails 由持久化层在每次保存时调用
func (p *Person) SetLastModifiedDetails(actor string, at time.Time) {
	p.lastModified = at
	p.lastModifiedBy = actor
}

// AssignID is called by the repository once storage has issued an identity.
func (p *Person) AssignID(id int64) {
	if p.id != 0 {
		return
	}
	p.id = id
	p.recordEvent(NewPersonCreatedEvent(id, p.fullName))
}

func (p *Person) slotIndex(t AddressType) int {
	for i, a := range p.addresses {
		if a != nil && a.Type() == t {
			return i
		}
	}
	return -1
}

// ============================================================================
// Getters
// ============================================================================

func (p *Person) ID() int64        { return p.id }
func (p *Person) FullName() string { return p.fullName }

// Addresses returns a copy ordered Home, Business.
func (p *Person) Addresses() []*Address {
	out := make([]*Address, 0, len(p.addresses))
	for _, t := range []AddressType{Home, Business} {
		if a := p.Address(t); a != nil {
			out = append(out, a)
		}
	}
	return out
}

func (p *Person) Address(t AddressType) *Address {
	if idx := p.slotIndex(t); idx >= 0 {
		return p.addresses[idx]
	}
	return nil
}

func (p *Person) Created() time.Time        { return p.created }
func (p *Person) CreatedBy() string         { return p.createdBy }
func (p *Person) LastModified() time.Time   { return p.lastModified }
func (p *Person) LastModifiedBy() string    { return p.lastModifiedBy }
func (p *Person) IsDeleted() bool           { return p.isDeleted }
func (p *Person) Deleted() time.Time        { return p.deleted }
func (p *Person) DeletedBy() string         { return p.deletedBy }
func (p *Person) IsNew() bool               { return p.id == 0 }
func (p *Person) AggregateID() string {
	if p.id == 0 {
		return ""
	}
	return strconv.FormatInt(p.id, 10)
}

// PullEvents 获取并清空聚合根的事件列表
func (p *Person) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(p.events))
	copy(events, p.events)
	p.events = make([]shared.DomainEvent, 0)
	return events
}

func (p *Person) recordEvent(event shared.DomainEvent) {
	p.events = append(p.events, event)
}

// ============================================================================
// 重建
// ============================================================================

// ReconstructionDTO 联系人重建数据传输对象
// ⚠️ 仅限仓储实现使用，跳过所有不变量校验
type ReconstructionDTO struct {
	ID             int64
	FullName       string
	Addresses      []AddressDTO
	Created        time.Time
	CreatedBy      string
	LastModified   time.Time
	LastModifiedBy string
	IsDeleted      bool
	Deleted        time.Time
	DeletedBy      string
}

type AddressDTO struct {
	AddressLine  string
	Type         AddressType
	PhoneNumbers []string
}

// RebuildFromDTO 从DTO重建Person聚合根
// ⚠️ 仅限仓储实现使用，不应在应用层调用
func RebuildFromDTO(dto ReconstructionDTO) *Person {
	addresses := make([]*Address, 0, len(dto.Addresses))
	for _, a := range dto.Addresses {
		addresses = append(addresses, RebuildAddress(a.AddressLine, a.Type, a.PhoneNumbers))
	}
	return &Person{
		id:             dto.ID,
		fullName:       dto.FullName,
		addresses:      addresses,
		created:        dto.Created,
		createdBy:      dto.CreatedBy,
		lastModified:   dto.LastModified,
		lastModifiedBy: dto.LastModifiedBy,
		isDeleted:      dto.IsDeleted,
		deleted:        dto.Deleted,
		deletedBy:      dto.DeletedBy,
		events:         make([]shared.DomainEvent, 0),
	}
}

var _ shared.AggregateRoot = (*Person)(nil)
