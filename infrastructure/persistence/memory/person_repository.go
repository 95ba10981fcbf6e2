package memory

import (
	"context"

	"contactbook/domain/person"
)

// PersonRepository in-memory implementation of person.Repository
type PersonRepository struct {
	store *Store
}

func NewPersonRepository(store *Store) *PersonRepository {
	return &PersonRepository{store: store}
}

func (r *PersonRepository) FindByID(ctx context.Context, id int64) (*person.Person, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	dto, ok := r.store.people[id]
	if !ok || dto.IsDeleted {
		return nil, person.NewPersonNotFoundError(id)
	}
	return person.RebuildFromDTO(dto), nil
}

func (r *PersonRepository) Add(ctx context.Context, p *person.Person) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	now, actor := r.store.now(), r.store.actor(ctx)
	p.SetCreationDetails(actor, now)
	p.SetLastModifiedDetails(actor, now)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	p.AssignID(r.store.nextID)
	r.store.people[p.ID()] = snapshot(p)
	return nil
}

func (r *PersonRepository) Save(ctx context.Context, p *person.Person) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if p.IsNew() {
		return r.Add(ctx, p)
	}
	p.SetLastModifiedDetails(r.store.actor(ctx), r.store.now())

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.people[p.ID()]; !ok {
		return person.NewPersonNotFoundError(p.ID())
	}
	r.store.people[p.ID()] = snapshot(p)
	return nil
}

var _ person.Repository = (*PersonRepository)(nil)
