package person_test

import (
	"context"
	"errors"
	"testing"

	personapp "contactbook/application/person"
	"contactbook/application/person/mocks"
	"contactbook/domain/person"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStoreDown = errors.New("connection refused")

type mockedService struct {
	people  *mocks.MockRepository
	queries *mocks.MockPeopleQueryRepository
	reads   *mocks.MockPeopleReadModel
	uow     *mocks.MockUnitOfWork
	svc     *personapp.ApplicationService
}

func newMockedService(t *testing.T) *mockedService {
	ctrl := gomock.NewController(t)
	m := &mockedService{
		people:  mocks.NewMockRepository(ctrl),
		queries: mocks.NewMockPeopleQueryRepository(ctrl),
		reads:   mocks.NewMockPeopleReadModel(ctrl),
		uow:     mocks.NewMockUnitOfWork(ctrl),
	}
	factory := mocks.NewMockUnitOfWorkFactory(ctrl)
	factory.EXPECT().New().Return(m.uow).AnyTimes()
	m.uow.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	m.svc = personapp.NewApplicationService(m.people, m.queries, m.reads, factory)
	return m
}

func TestCreatePersonPropagatesStoreError(t *testing.T) {
	m := newMockedService(t)
	m.people.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errStoreDown)

	res, err := m.svc.CreatePerson(context.Background(), createCommand("Ada Lovelace"))
	require.ErrorIs(t, err, errStoreDown)
	assert.False(t, res.Succeeded())
}

func TestEditPersonPropagatesLoadError(t *testing.T) {
	m := newMockedService(t)
	m.people.EXPECT().FindByID(gomock.Any(), int64(3)).Return(nil, errStoreDown)

	_, err := m.svc.EditPerson(context.Background(), personapp.EditPersonCommand{ID: 3, FullName: "New"})
	require.ErrorIs(t, err, errStoreDown)
}

func TestDeletePersonPropagatesSaveError(t *testing.T) {
	m := newMockedService(t)
	p := person.RebuildFromDTO(person.ReconstructionDTO{
		ID:       3,
		FullName: "Ada",
		Addresses: []person.AddressDTO{
			{AddressLine: "1 Home Street", Type: person.Home},
			{AddressLine: "2 Office Park", Type: person.Business},
		},
	})
	m.people.EXPECT().FindByID(gomock.Any(), int64(3)).Return(p, nil)
	m.people.EXPECT().Save(gomock.Any(), p).Return(errStoreDown)

	_, err := m.svc.DeletePerson(context.Background(), personapp.DeletePersonCommand{ID: 3})
	require.ErrorIs(t, err, errStoreDown)
}

func TestCommitFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	people := mocks.NewMockRepository(ctrl)
	uow := mocks.NewMockUnitOfWork(ctrl)
	factory := mocks.NewMockUnitOfWorkFactory(ctrl)
	factory.EXPECT().New().Return(uow)

	commitErr := errors.New("commit failed")
	uow.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(commitErr)

	svc := personapp.NewApplicationService(people, nil, nil, factory)
	_, err := svc.CreatePerson(context.Background(), createCommand("Ada Lovelace"))
	require.ErrorIs(t, err, commitErr)
}

func TestValidationHappensBeforeAnyStoreCall(t *testing.T) {
	// 没有设置任何 EXPECT：任何存储调用都会让 gomock 失败
	ctrl := gomock.NewController(t)
	svc := personapp.NewApplicationService(
		mocks.NewMockRepository(ctrl),
		mocks.NewMockPeopleQueryRepository(ctrl),
		mocks.NewMockPeopleReadModel(ctrl),
		mocks.NewMockUnitOfWorkFactory(ctrl),
	)
	ctx := context.Background()

	_, err := svc.EditPerson(ctx, personapp.EditPersonCommand{ID: 0, FullName: "x"})
	assert.Error(t, err)
	_, err = svc.DeletePerson(ctx, personapp.DeletePersonCommand{ID: -1})
	assert.Error(t, err)
	_, err = svc.GetPerson(ctx, personapp.GetPersonQuery{})
	assert.Error(t, err)
	_, err = svc.ListPeopleFromReadModel(ctx, personapp.ListPeopleQuery{PageSize: -5})
	assert.Error(t, err)
}

func TestListPeoplePassesOffsetAndLimit(t *testing.T) {
	m := newMockedService(t)
	m.queries.EXPECT().
		ListPeople(gomock.Any(), gomock.Any(), 20, 10).
		Return([]personapp.PersonDto{{ID: 21}}, int64(21), nil)

	page, err := m.svc.ListPeopleWithPagination(context.Background(), personapp.ListPeopleQuery{PageNumber: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasNextPage)
}

func TestReadModelErrorPropagates(t *testing.T) {
	m := newMockedService(t)
	m.reads.EXPECT().SearchPeople(gomock.Any(), "ada", 0, 10).Return(nil, int64(0), errStoreDown)

	_, err := m.svc.ListPeopleFromReadModel(context.Background(), personapp.NewListPeopleQuery("ada"))
	require.ErrorIs(t, err, errStoreDown)
}
