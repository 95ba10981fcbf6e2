package gormstore

import (
	"context"
	"strings"

	personapp "contactbook/application/person"
	"contactbook/domain/person"
	"contactbook/infrastructure/persistence"
	"contactbook/infrastructure/persistence/specification"

	"gorm.io/gorm"
)

// ReadModelRepository 读模型查询（v2）：手写 SQL 联表，分页与计数分开执行
type ReadModelRepository struct {
	db *gorm.DB
}

func NewReadModelRepository(db *gorm.DB) *ReadModelRepository {
	return &ReadModelRepository{db: db}
}

func (r *ReadModelRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

const (
	selectPersonSQL = `SELECT p.id, p.full_name FROM people p WHERE p.id = ? AND p.is_deleted = ?`

	countPeopleSQL = `SELECT COUNT(*) FROM people p WHERE p.is_deleted = ? AND p.full_name_search LIKE ? ESCAPE '!'`

	pagePeopleSQL = `SELECT p.id, p.full_name FROM people p
WHERE p.is_deleted = ? AND p.full_name_search LIKE ? ESCAPE '!'
ORDER BY p.id ASC
LIMIT ? OFFSET ?`

	addressRowsSQL = `SELECT a.person_id, a.id AS address_id, a.address_line, a.address_type, ph.number
FROM addresses a
LEFT JOIN phone_numbers ph ON ph.address_id = a.id
WHERE a.person_id IN ?
ORDER BY a.person_id ASC, a.address_type ASC, a.id ASC, ph.position ASC`
)

type personRow struct {
	ID       int64
	FullName string
}

type addressRow struct {
	PersonID    int64
	AddressID   int64
	AddressLine string
	AddressType int
	Number      *string
}

func (r *ReadModelRepository) FindPerson(ctx context.Context, id int64) (*personapp.PersonDto, error) {
	db := r.getDB(ctx)
	var rows []personRow
	if err := db.Raw(selectPersonSQL, id, false).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	dtos, err := r.attachAddresses(db, rows)
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

func (r *ReadModelRepository) SearchPeople(ctx context.Context, fullName string, offset, limit int) ([]personapp.PersonDto, int64, error) {
	db := r.getDB(ctx)
	pattern := specification.ContainsPattern(strings.TrimSpace(fullName))

	var total int64
	if err := db.Raw(countPeopleSQL, false, pattern).Scan(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []personapp.PersonDto{}, 0, nil
	}

	var rows []personRow
	if err := db.Raw(pagePeopleSQL, false, pattern, limit, offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	dtos, err := r.attachAddresses(db, rows)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

func (r *ReadModelRepository) attachAddresses(db *gorm.DB, people []personRow) ([]personapp.PersonDto, error) {
	dtos := make([]personapp.PersonDto, len(people))
	if len(people) == 0 {
		return dtos, nil
	}

	ids := make([]int64, len(people))
	index := make(map[int64]int, len(people))
	for i, p := range people {
		ids[i] = p.ID
		index[p.ID] = i
		dtos[i] = personapp.PersonDto{ID: p.ID, FullName: p.FullName, Addresses: []personapp.AddressDto{}}
	}

	var rows []addressRow
	if err := db.Raw(addressRowsSQL, ids).Scan(&rows).Error; err != nil {
		return nil, err
	}

	// rows arrive grouped by person and address; one AddressDto per address id
	lastAddress := make(map[int64]int64, len(people))
	for _, row := range rows {
		dto := &dtos[index[row.PersonID]]
		if lastAddress[row.PersonID] != row.AddressID || len(dto.Addresses) == 0 {
			dto.Addresses = append(dto.Addresses, personapp.AddressDto{
				AddressLine:  row.AddressLine,
				AddressType:  person.AddressType(row.AddressType).String(),
				PhoneNumbers: []string{},
			})
			lastAddress[row.PersonID] = row.AddressID
		}
		if row.Number != nil {
			current := &dto.Addresses[len(dto.Addresses)-1]
			current.PhoneNumbers = append(current.PhoneNumbers, *row.Number)
		}
	}
	return dtos, nil
}

var _ personapp.PeopleReadModel = (*ReadModelRepository)(nil)
