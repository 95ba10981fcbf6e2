package po

import (
	"database/sql"
	"strings"
	"time"

	"contactbook/domain/person"
)

// PersonPO 联系人持久化对象
// Note: Only used for database mapping, does not contain any business logic
// Defining GORM associations is prohibited here
type PersonPO struct {
	ID             int64        `gorm:"primaryKey;autoIncrement"`
	FullName       string       `gorm:"size:70;not null"`
	// FullNameSearch 保存 Go 侧小写后的姓名，LIKE 查询不依赖数据库的 LOWER()
	FullNameSearch string       `gorm:"size:280;not null;index"`
	Created        time.Time    `gorm:"not null"`
	CreatedBy      string       `gorm:"size:100;not null"`
	LastModified   time.Time    `gorm:"not null"`
	LastModifiedBy string       `gorm:"size:100;not null"`
	IsDeleted      bool         `gorm:"not null;default:false;index"`
	Deleted        sql.NullTime `gorm:""`
	DeletedBy      string       `gorm:"size:100"`
}

func (PersonPO) TableName() string {
	return "people"
}

// AddressPO 地址持久化对象，只存储 PersonID，不建立 GORM 关联
type AddressPO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	PersonID    int64  `gorm:"not null;index"`
	AddressLine string `gorm:"size:256;not null"`
	AddressType int    `gorm:"not null"`
}

func (AddressPO) TableName() string {
	return "addresses"
}

// PhoneNumberPO 电话号码持久化对象；Position 保留插入顺序
type PhoneNumberPO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	AddressID int64  `gorm:"not null;index"`
	Number    string `gorm:"size:20;not null"`
	Position  int    `gorm:"not null"`
}

func (PhoneNumberPO) TableName() string {
	return "phone_numbers"
}

// AllModels lists every table the store migrates.
func AllModels() []any {
	return []any{&PersonPO{}, &AddressPO{}, &PhoneNumberPO{}, &OutboxEventPO{}}
}

// FromPersonDomain Convert domain model to persistence object
func FromPersonDomain(p *person.Person) *PersonPO {
	out := &PersonPO{
		ID:             p.ID(),
		FullName:       p.FullName(),
		FullNameSearch: SearchKey(p.FullName()),
		Created:        p.Created(),
		CreatedBy:      p.CreatedBy(),
		LastModified:   p.LastModified(),
		LastModifiedBy: p.LastModifiedBy(),
		IsDeleted:      p.IsDeleted(),
		DeletedBy:      p.DeletedBy(),
	}
	if p.IsDeleted() {
		out.Deleted = sql.NullTime{Time: p.Deleted(), Valid: true}
	}
	return out
}

// SearchKey normalises a full name for substring search. sqlite's LOWER only
// folds ASCII, so folding happens here for every driver.
func SearchKey(fullName string) string {
	return strings.ToLower(fullName)
}

// AddressRow groups an address with its phone numbers for writing.
type AddressRow struct {
	Address AddressPO
	Phones  []PhoneNumberPO
}

func FromAddressDomain(personID int64, a *person.Address) AddressRow {
	numbers := a.Numbers()
	phones := make([]PhoneNumberPO, len(numbers))
	for i, n := range numbers {
		phones[i] = PhoneNumberPO{Number: n, Position: i}
	}
	return AddressRow{
		Address: AddressPO{
			PersonID:    personID,
			AddressLine: a.AddressLine(),
			AddressType: int(a.Type()),
		},
		Phones: phones,
	}
}

// ToDomain Convert persistence objects to domain model.
// phones is keyed by address id and must already be ordered by Position.
func (po *PersonPO) ToDomain(addresses []AddressPO, phones map[int64][]string) *person.Person {
	dtos := make([]person.AddressDTO, len(addresses))
	for i, a := range addresses {
		dtos[i] = person.AddressDTO{
			AddressLine:  a.AddressLine,
			Type:         person.AddressType(a.AddressType),
			PhoneNumbers: phones[a.ID],
		}
	}

	return person.RebuildFromDTO(person.ReconstructionDTO{
		ID:             po.ID,
		FullName:       po.FullName,
		Addresses:      dtos,
		Created:        po.Created,
		CreatedBy:      po.CreatedBy,
		LastModified:   po.LastModified,
		LastModifiedBy: po.LastModifiedBy,
		IsDeleted:      po.IsDeleted,
		Deleted:        po.Deleted.Time,
		DeletedBy:      po.DeletedBy,
	})
}
