package person

import (
	"context"
	"errors"

	"contactbook/application/result"
	"contactbook/domain/shared"
	"contactbook/pkg/logger"

	"go.uber.org/zap"
)

// none is the payload type of operations that return an untyped Result.
type none = struct{}

// domainFailure converts a business rejection raised by the aggregate into a
// failed result. Any other error is returned unchanged.
func domainFailure[T any](ctx context.Context, operation string, err error) (result.Of[T], error) {
	if !shared.IsDomainRuleViolation(err) {
		return result.Of[T]{}, err
	}
	logger.FromContext(ctx).Warn("Domain rule violation",
		zap.String("operation", operation),
		zap.String("reason", err.Error()),
	)
	return result.Fail[T](err.Error()), nil
}

// notFoundFailure converts a repository not-found error into a failed result.
func notFoundFailure[T any](err error) (result.Of[T], bool) {
	if !errors.Is(err, shared.ErrNotFound) {
		return result.Of[T]{}, false
	}
	return result.FromResult[T](result.NotFound(err.Error())), true
}

// toResult adapts the outcome of a unit of work to the operation's return values.
func toResult[T any](ctx context.Context, operation string, data T, err error) (result.Of[T], error) {
	if err == nil {
		return result.Ok(data), nil
	}
	if r, ok := notFoundFailure[T](err); ok {
		return r, nil
	}
	return domainFailure[T](ctx, operation, err)
}

func untyped[T any](r result.Of[T], err error) (result.Result, error) {
	return r.Untyped(), err
}
