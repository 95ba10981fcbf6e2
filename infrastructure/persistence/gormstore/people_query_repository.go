package gormstore

import (
	"context"
	"errors"

	personapp "contactbook/application/person"
	"contactbook/domain/person"
	"contactbook/domain/shared"
	"contactbook/infrastructure/persistence"
	"contactbook/infrastructure/persistence/gormstore/po"
	"contactbook/infrastructure/persistence/specification"

	"gorm.io/gorm"
)

// PeopleQueryRepository 基于 GORM 模型的读侧查询（v1）
// 领域规约在这里翻译为 WHERE 子句。
type PeopleQueryRepository struct {
	db         *gorm.DB
	translator specification.Translator[*person.Person]
}

func NewPeopleQueryRepository(db *gorm.DB) *PeopleQueryRepository {
	return &PeopleQueryRepository{db: db, translator: specification.NewPersonTranslator()}
}

func (r *PeopleQueryRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *PeopleQueryRepository) GetPerson(ctx context.Context, id int64) (*personapp.PersonDto, error) {
	db := r.getDB(ctx)
	var personPO po.PersonPO
	result := db.Where("is_deleted = ?", false).First(&personPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	dtos, err := r.toDtos(db, []po.PersonPO{personPO})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

func (r *PeopleQueryRepository) ListPeople(ctx context.Context, filter shared.Specification[*person.Person], offset, limit int) ([]personapp.PersonDto, int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&po.PersonPO{}).Scopes(r.translator.Translate(filter))

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []personapp.PersonDto{}, 0, nil
	}

	var personPOs []po.PersonPO
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&personPOs).Error; err != nil {
		return nil, 0, err
	}

	dtos, err := r.toDtos(db, personPOs)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

func (r *PeopleQueryRepository) toDtos(db *gorm.DB, personPOs []po.PersonPO) ([]personapp.PersonDto, error) {
	ids := make([]int64, len(personPOs))
	for i, p := range personPOs {
		ids[i] = p.ID
	}
	addresses, phones, err := loadAddresses(db, ids)
	if err != nil {
		return nil, err
	}

	dtos := make([]personapp.PersonDto, len(personPOs))
	for i, p := range personPOs {
		dto := personapp.PersonDto{
			ID:        p.ID,
			FullName:  p.FullName,
			Addresses: make([]personapp.AddressDto, 0, len(addresses[p.ID])),
		}
		for _, a := range addresses[p.ID] {
			numbers := phones[a.ID]
			if numbers == nil {
				numbers = []string{}
			}
			dto.Addresses = append(dto.Addresses, personapp.AddressDto{
				AddressLine:  a.AddressLine,
				AddressType:  person.AddressType(a.AddressType).String(),
				PhoneNumbers: numbers,
			})
		}
		dtos[i] = dto
	}
	return dtos, nil
}

var _ personapp.PeopleQueryRepository = (*PeopleQueryRepository)(nil)
