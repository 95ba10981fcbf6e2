package memory

import (
	"context"

	"contactbook/domain/shared"
	"contactbook/pkg/logger"

	"go.uber.org/zap"
)

// UnitOfWork emulates a transaction: units of work on one store run one at a
// time, and when fn fails or ctx is cancelled the people table is restored to
// the state captured before fn ran. Events are collected only on commit.
type UnitOfWork struct {
	store      *Store
	aggregates []shared.AggregateRoot
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store, aggregates: make([]shared.AggregateRoot, 0)}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.aggregates = make([]shared.AggregateRoot, 0)

	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	rollback := u.store.checkpoint()
	if err := fn(ctx); err != nil {
		rollback()
		return err
	}
	if err := ctx.Err(); err != nil {
		rollback()
		return err
	}

	for _, agg := range u.aggregates {
		events := agg.PullEvents()
		for _, event := range events {
			logger.FromContext(ctx).Debug("Event recorded",
				zap.String("event", event.EventName()),
				zap.String("aggregate_id", agg.AggregateID()),
			)
		}
		u.store.appendEvents(events)
	}
	return nil
}

func (u *UnitOfWork) RegisterNew(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

func (u *UnitOfWork) RegisterDirty(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

func (u *UnitOfWork) RegisterRemoved(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) New() shared.UnitOfWork {
	return NewUnitOfWork(f.store)
}

var (
	_ shared.UnitOfWork        = (*UnitOfWork)(nil)
	_ shared.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
)
