package person

import (
	"context"

	"contactbook/domain/person"
)

// GetPerson returns nil, nil when the person does not exist or was deleted.
func (s *ApplicationService) GetPerson(ctx context.Context, q GetPersonQuery) (dto *PersonDto, err error) {
	ctx, done := s.begin(ctx, "GetPerson")
	defer func() { done(dto != nil, err) }()

	if err := s.validator.Validate(q); err != nil {
		return nil, err
	}
	return s.queries.GetPerson(ctx, q.ID)
}

func (s *ApplicationService) ListPeopleWithPagination(ctx context.Context, q ListPeopleQuery) (page *PaginatedList[PersonDto], err error) {
	ctx, done := s.begin(ctx, "ListPeopleWithPagination")
	defer func() { done(err == nil, err) }()

	if err := s.validator.Validate(q); err != nil {
		return nil, err
	}
	items, total, err := s.queries.ListPeople(ctx, person.ListingSpecification(q.FullName), q.Offset(), q.PageSize)
	if err != nil {
		return nil, err
	}
	return NewPaginatedList(items, total, q.PageNumber, q.PageSize), nil
}

// GetPersonFromReadModel 与 GetPerson 语义相同，走手写 SQL 读路径
func (s *ApplicationService) GetPersonFromReadModel(ctx context.Context, q GetPersonQuery) (dto *PersonDto, err error) {
	ctx, done := s.begin(ctx, "GetPersonFromReadModel")
	defer func() { done(dto != nil, err) }()

	if err := s.validator.Validate(q); err != nil {
		return nil, err
	}
	return s.readModel.FindPerson(ctx, q.ID)
}

func (s *ApplicationService) ListPeopleFromReadModel(ctx context.Context, q ListPeopleQuery) (page *PaginatedList[PersonDto], err error) {
	ctx, done := s.begin(ctx, "ListPeopleFromReadModel")
	defer func() { done(err == nil, err) }()

	if err := s.validator.Validate(q); err != nil {
		return nil, err
	}
	items, total, err := s.readModel.SearchPeople(ctx, q.FullName, q.Offset(), q.PageSize)
	if err != nil {
		return nil, err
	}
	return NewPaginatedList(items, total, q.PageNumber, q.PageSize), nil
}
