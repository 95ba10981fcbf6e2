package memory

import (
	"context"
	"strings"

	personapp "contactbook/application/person"
	"contactbook/domain/person"
	"contactbook/domain/shared"
)

// PeopleQueryRepository evaluates specifications directly against stored people.
// It also serves the read-model path, where the name filter is a plain string.
type PeopleQueryRepository struct {
	store *Store
}

func NewPeopleQueryRepository(store *Store) *PeopleQueryRepository {
	return &PeopleQueryRepository{store: store}
}

func (r *PeopleQueryRepository) GetPerson(ctx context.Context, id int64) (*personapp.PersonDto, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	dto, ok := r.store.people[id]
	if !ok || dto.IsDeleted {
		return nil, nil
	}
	out := toPersonDto(dto)
	return &out, nil
}

func (r *PeopleQueryRepository) ListPeople(ctx context.Context, filter shared.Specification[*person.Person], offset, limit int) ([]personapp.PersonDto, int64, error) {
	if filter == nil {
		filter = person.ActiveSpecification{}
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]person.ReconstructionDTO, 0)
	for _, id := range r.store.sortedIDs() {
		dto := r.store.people[id]
		if filter.IsSatisfiedBy(ctx, person.RebuildFromDTO(dto)) {
			matched = append(matched, dto)
		}
	}
	return page(matched, offset, limit), int64(len(matched)), nil
}

func (r *PeopleQueryRepository) FindPerson(ctx context.Context, id int64) (*personapp.PersonDto, error) {
	return r.GetPerson(ctx, id)
}

func (r *PeopleQueryRepository) SearchPeople(ctx context.Context, fullName string, offset, limit int) ([]personapp.PersonDto, int64, error) {
	term := strings.TrimSpace(fullName)
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]person.ReconstructionDTO, 0)
	for _, id := range r.store.sortedIDs() {
		dto := r.store.people[id]
		if !dto.IsDeleted && containsFold(dto.FullName, term) {
			matched = append(matched, dto)
		}
	}
	return page(matched, offset, limit), int64(len(matched)), nil
}

func page(matched []person.ReconstructionDTO, offset, limit int) []personapp.PersonDto {
	out := make([]personapp.PersonDto, 0, limit)
	if offset >= len(matched) {
		return out
	}
	end := min(offset+limit, len(matched))
	for _, dto := range matched[offset:end] {
		out = append(out, toPersonDto(dto))
	}
	return out
}

var (
	_ personapp.PeopleQueryRepository = (*PeopleQueryRepository)(nil)
	_ personapp.PeopleReadModel       = (*PeopleQueryRepository)(nil)
)
