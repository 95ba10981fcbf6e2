package gormstore

import (
	"context"
	"errors"
	"time"

	"contactbook/domain/person"
	"contactbook/infrastructure/persistence"
	"contactbook/infrastructure/persistence/gormstore/po"

	"gorm.io/gorm"
)

// DefaultActor is recorded in audit columns when the context carries no actor.
const DefaultActor = "system"

// PersonRepository GORM implementation of person.Repository
// GORM usage specification: Association features are prohibited to maintain DDD aggregate boundaries
type PersonRepository struct {
	db           *gorm.DB
	now          func() time.Time
	defaultActor string
}

type PersonRepositoryOption func(*PersonRepository)

// WithClock overrides the clock used for audit timestamps.
func WithClock(now func() time.Time) PersonRepositoryOption {
	return func(r *PersonRepository) { r.now = now }
}

func WithDefaultActor(actor string) PersonRepositoryOption {
	return func(r *PersonRepository) {
		if actor != "" {
			r.defaultActor = actor
		}
	}
}

func NewPersonRepository(db *gorm.DB, opts ...PersonRepositoryOption) *PersonRepository {
	r := &PersonRepository{
		db:           db,
		now:          func() time.Time { return time.Now().UTC() },
		defaultActor: DefaultActor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// getDB returns the transaction from context if available, otherwise the default db
func (r *PersonRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *PersonRepository) actor(ctx context.Context) string {
	if actor := persistence.ActorFromContext(ctx); actor != "" {
		return actor
	}
	return r.defaultActor
}

// withTx uses the UoW transaction when present, otherwise opens its own for atomicity.
func (r *PersonRepository) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return fn(tx)
	}
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *PersonRepository) FindByID(ctx context.Context, id int64) (*person.Person, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	db := r.getDB(ctx)
	var personPO po.PersonPO
	result := db.Where("is_deleted = ?", false).First(&personPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, person.NewPersonNotFoundError(id)
		}
		return nil, result.Error
	}

	// Manually load addresses (no Preload, keeps aggregate boundaries explicit)
	addresses, phones, err := loadAddresses(db, []int64{id})
	if err != nil {
		return nil, err
	}
	return personPO.ToDomain(addresses[id], phones), nil
}

// Add inserts a new person with both addresses and assigns the generated id.
func (r *PersonRepository) Add(ctx context.Context, p *person.Person) error {
	if !p.IsNew() {
		return errors.New("person already has an identity")
	}
	now, actor := r.now(), r.actor(ctx)
	p.SetCreationDetails(actor, now)
	p.SetLastModifiedDetails(actor, now)

	return r.withTx(ctx, func(tx *gorm.DB) error {
		personPO := po.FromPersonDomain(p)
		if err := tx.Create(personPO).Error; err != nil {
			return err
		}
		if err := insertAddresses(tx, personPO.ID, p.Addresses()); err != nil {
			return err
		}
		p.AssignID(personPO.ID)
		return nil
	})
}

// Save persists the name, audit and soft-delete columns and rewrites both
// addresses (simple strategy: delete then insert).
func (r *PersonRepository) Save(ctx context.Context, p *person.Person) error {
	if p.IsNew() {
		return r.Add(ctx, p)
	}
	p.SetLastModifiedDetails(r.actor(ctx), r.now())

	return r.withTx(ctx, func(tx *gorm.DB) error {
		personPO := po.FromPersonDomain(p)
		result := tx.Model(&po.PersonPO{}).
			Where("id = ?", p.ID()).
			Updates(map[string]any{
				"full_name":        personPO.FullName,
				"full_name_search": personPO.FullNameSearch,
				"last_modified":    personPO.LastModified,
				"last_modified_by": personPO.LastModifiedBy,
				"is_deleted":       personPO.IsDeleted,
				"deleted":          personPO.Deleted,
				"deleted_by":       personPO.DeletedBy,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return person.NewPersonNotFoundError(p.ID())
		}

		if err := deleteAddresses(tx, p.ID()); err != nil {
			return err
		}
		return insertAddresses(tx, p.ID(), p.Addresses())
	})
}

func insertAddresses(tx *gorm.DB, personID int64, addresses []*person.Address) error {
	for _, a := range addresses {
		row := po.FromAddressDomain(personID, a)
		if err := tx.Create(&row.Address).Error; err != nil {
			return err
		}
		if len(row.Phones) == 0 {
			continue
		}
		for i := range row.Phones {
			row.Phones[i].AddressID = row.Address.ID
		}
		if err := tx.Create(&row.Phones).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteAddresses(tx *gorm.DB, personID int64) error {
	sub := tx.Model(&po.AddressPO{}).Select("id").Where("person_id = ?", personID)
	if err := tx.Where("address_id IN (?)", sub).Delete(&po.PhoneNumberPO{}).Error; err != nil {
		return err
	}
	return tx.Where("person_id = ?", personID).Delete(&po.AddressPO{}).Error
}

// loadAddresses batch-loads addresses grouped by person id, and phone numbers
// grouped by address id in insertion order.
func loadAddresses(db *gorm.DB, personIDs []int64) (map[int64][]po.AddressPO, map[int64][]string, error) {
	byPerson := make(map[int64][]po.AddressPO, len(personIDs))
	phones := make(map[int64][]string)
	if len(personIDs) == 0 {
		return byPerson, phones, nil
	}

	var addressPOs []po.AddressPO
	if err := db.Where("person_id IN ?", personIDs).
		Order("person_id ASC, address_type ASC").
		Find(&addressPOs).Error; err != nil {
		return nil, nil, err
	}
	if len(addressPOs) == 0 {
		return byPerson, phones, nil
	}

	addressIDs := make([]int64, len(addressPOs))
	for i, a := range addressPOs {
		addressIDs[i] = a.ID
		byPerson[a.PersonID] = append(byPerson[a.PersonID], a)
	}

	var phonePOs []po.PhoneNumberPO
	if err := db.Where("address_id IN ?", addressIDs).
		Order("address_id ASC, position ASC").
		Find(&phonePOs).Error; err != nil {
		return nil, nil, err
	}
	for _, ph := range phonePOs {
		phones[ph.AddressID] = append(phones[ph.AddressID], ph.Number)
	}
	return byPerson, phones, nil
}

// Compile-time interface implementation check
var _ person.Repository = (*PersonRepository)(nil)
