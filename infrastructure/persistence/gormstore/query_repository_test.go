package gormstore

import (
	"context"
	"testing"

	personapp "contactbook/application/person"
	"contactbook/domain/person"
	"contactbook/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPeople stores the given names in order and soft-deletes the ones listed in deleted.
func seedPeople(t *testing.T, repo *PersonRepository, names []string, deleted ...string) map[string]int64 {
	t.Helper()
	ctx := context.Background()
	ids := make(map[string]int64, len(names))
	for _, name := range names {
		p := newPerson(t, name, "Home of "+name, "Office of "+name, "+100000")
		require.NoError(t, repo.Add(ctx, p))
		ids[name] = p.ID()
	}
	for _, name := range deleted {
		p, err := repo.FindByID(ctx, ids[name])
		require.NoError(t, err)
		p.Delete("test", p.Created())
		require.NoError(t, repo.Save(ctx, p))
	}
	return ids
}

func names(dtos []personapp.PersonDto) []string {
	out := make([]string, len(dtos))
	for i, d := range dtos {
		out[i] = d.FullName
	}
	return out
}

func TestPeopleQueryRepositoryPagination(t *testing.T) {
	db := newTestDB(t)
	seedPeople(t, NewPersonRepository(db), []string{"Alice", "Bob", "Carol"})
	q := NewPeopleQueryRepository(db)

	page, total, err := q.ListPeople(context.Background(), person.ListingSpecification(""), 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"Bob"}, names(page))

	require.Len(t, page[0].Addresses, 2)
	assert.Equal(t, "Home", page[0].Addresses[0].AddressType)
	assert.Equal(t, []string{"+100000"}, page[0].Addresses[0].PhoneNumbers)
	assert.Equal(t, "Business", page[0].Addresses[1].AddressType)
	assert.Equal(t, []string{}, page[0].Addresses[1].PhoneNumbers)
}

func TestPeopleQueryRepositoryFilters(t *testing.T) {
	db := newTestDB(t)
	seedPeople(t, NewPersonRepository(db), []string{"Alice Smith", "bob SMITHERS", "Carol Jones", "Dave Smith", "100% Real"}, "Dave Smith")
	q := NewPeopleQueryRepository(db)
	ctx := context.Background()

	page, total, err := q.ListPeople(ctx, person.ListingSpecification("smith"), 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []string{"Alice Smith", "bob SMITHERS"}, names(page))

	page, _, err = q.ListPeople(ctx, person.ListingSpecification("0%"), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Real"}, names(page), "wildcards match literally")

	var spec shared.Specification[*person.Person] = shared.And[*person.Person](
		person.ActiveSpecification{},
		shared.Not[*person.Person](person.FullNameContainsSpecification{Term: "smith"}),
	)
	page, _, err = q.ListPeople(ctx, spec, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carol Jones", "100% Real"}, names(page))

	spec = shared.And[*person.Person](
		person.ActiveSpecification{},
		shared.Or[*person.Person](
			person.FullNameContainsSpecification{Term: "alice"},
			person.FullNameContainsSpecification{Term: "carol"},
		),
	)
	page, _, err = q.ListPeople(ctx, spec, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice Smith", "Carol Jones"}, names(page))
}

func TestPeopleQueryRepositoryGetPerson(t *testing.T) {
	db := newTestDB(t)
	ids := seedPeople(t, NewPersonRepository(db), []string{"Alice", "Bob"}, "Bob")
	q := NewPeopleQueryRepository(db)

	dto, err := q.GetPerson(context.Background(), ids["Alice"])
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "Alice", dto.FullName)

	dto, err = q.GetPerson(context.Background(), ids["Bob"])
	require.NoError(t, err)
	assert.Nil(t, dto, "soft-deleted people are not returned")

	dto, err = q.GetPerson(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, dto)
}

func TestReadModelMatchesQueryRepository(t *testing.T) {
	db := newTestDB(t)
	ids := seedPeople(t, NewPersonRepository(db), []string{"Alice Smith", "Bob Smith", "Carol", "Dan Smith"}, "Carol")
	q := NewPeopleQueryRepository(db)
	rm := NewReadModelRepository(db)
	ctx := context.Background()

	want, wantTotal, err := q.ListPeople(ctx, person.ListingSpecification("SMITH"), 1, 2)
	require.NoError(t, err)
	got, gotTotal, err := rm.SearchPeople(ctx, "SMITH", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, wantTotal, gotTotal)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"Bob Smith", "Dan Smith"}, names(got))

	dto, err := rm.FindPerson(ctx, ids["Alice Smith"])
	require.NoError(t, err)
	require.NotNil(t, dto)
	wantDto, err := q.GetPerson(ctx, ids["Alice Smith"])
	require.NoError(t, err)
	assert.Equal(t, wantDto, dto)

	dto, err = rm.FindPerson(ctx, ids["Carol"])
	require.NoError(t, err)
	assert.Nil(t, dto)

	empty, total, err := rm.SearchPeople(ctx, "nobody", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, empty)
}

func TestNameFilterFoldsNonASCII(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)
	ids := seedPeople(t, repo, []string{"ÉLODIE Martin", "Zoë Ångström", "Elodie Plain"})
	q := NewPeopleQueryRepository(db)
	rm := NewReadModelRepository(db)
	ctx := context.Background()

	page, total, err := q.ListPeople(ctx, person.ListingSpecification("élodie"), 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []string{"ÉLODIE Martin"}, names(page))

	got, gotTotal, err := rm.SearchPeople(ctx, "ÅNGSTRÖM", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, gotTotal)
	assert.Equal(t, []string{"Zoë Ångström"}, names(got))

	// 改名后搜索列随之更新
	p, err := repo.FindByID(ctx, ids["ÉLODIE Martin"])
	require.NoError(t, err)
	require.NoError(t, p.UpdateFullName("Élodie Dupont"))
	require.NoError(t, repo.Save(ctx, p))

	_, total, err = q.ListPeople(ctx, person.ListingSpecification("martin"), 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	got, _, err = rm.SearchPeople(ctx, "DUPONT", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Élodie Dupont"}, names(got))
}
