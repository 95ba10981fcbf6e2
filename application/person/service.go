/*
Package person Application Layer - 联系人用例编排

应用层职责:
1. 结构性校验请求（在访问存储之前）
2. 加载或构造聚合根，调用其行为
3. 通过 UoW 管理事务与事件收集（Outbox）
4. 写操作返回 result.Result：业务拒绝作为数据返回，基础设施错误作为 error 返回

读操作直接返回 DTO，不经过 Result。
*/
package person

import (
	"context"
	"time"

	"contactbook/domain/person"
	"contactbook/domain/shared"
	"contactbook/infrastructure/persistence"
	apperrors "contactbook/pkg/errors"
	"contactbook/pkg/logger"
	"contactbook/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks contactbook/domain/person Repository
//go:generate mockgen -destination=mocks/unit_of_work.go -package=mocks contactbook/domain/shared UnitOfWork,UnitOfWorkFactory

// OperationRecorder receives the outcome of every operation, e.g. for metrics.
type OperationRecorder interface {
	ObserveOperation(operation, outcome string, elapsed time.Duration)
}

type ApplicationService struct {
	people       person.Repository
	queries      PeopleQueryRepository
	readModel    PeopleReadModel
	uowFactory   shared.UnitOfWorkFactory
	validator    *RequestValidator
	now          func() time.Time
	defaultActor string
	tracer       trace.Tracer
	recorder     OperationRecorder
}

type Option func(*ApplicationService)

func WithClock(now func() time.Time) Option {
	return func(s *ApplicationService) { s.now = now }
}

// WithDefaultActor sets the actor recorded on deletion when the request carries none.
func WithDefaultActor(actor string) Option {
	return func(s *ApplicationService) {
		if actor != "" {
			s.defaultActor = actor
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *ApplicationService) { s.tracer = tracer }
}

func WithRecorder(recorder OperationRecorder) Option {
	return func(s *ApplicationService) { s.recorder = recorder }
}

func NewApplicationService(
	people person.Repository,
	queries PeopleQueryRepository,
	readModel PeopleReadModel,
	uowFactory shared.UnitOfWorkFactory,
	opts ...Option,
) *ApplicationService {
	s := &ApplicationService{
		people:       people,
		queries:      queries,
		readModel:    readModel,
		uowFactory:   uowFactory,
		validator:    NewRequestValidator(),
		now:          func() time.Time { return time.Now().UTC() },
		defaultActor: "system",
		tracer:       otel.Tracer("contactbook/application/person"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ApplicationService) actor(ctx context.Context) string {
	if actor := persistence.ActorFromContext(ctx); actor != "" {
		return actor
	}
	return s.defaultActor
}

// begin starts the span for an operation; the returned func ends it and
// records the outcome.
func (s *ApplicationService) begin(ctx context.Context, operation string) (context.Context, func(succeeded bool, err error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "person."+operation)

	return ctx, func(succeeded bool, err error) {
		outcome := outcomeOf(succeeded, err)
		span.SetAttributes(attribute.String("outcome", outcome))
		if outcome == metrics.OutcomeError {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.FromContext(ctx).Error("Operation failed",
				zap.String("operation", operation),
				zap.Error(err),
			)
		}
		span.End()
		if s.recorder != nil {
			s.recorder.ObserveOperation(operation, outcome, time.Since(start))
		}
	}
}

func outcomeOf(succeeded bool, err error) string {
	switch {
	case apperrors.IsValidation(err):
		return metrics.OutcomeInvalid
	case err != nil:
		return metrics.OutcomeError
	case !succeeded:
		return metrics.OutcomeFailure
	default:
		return metrics.OutcomeSuccess
	}
}
