package person

import (
	"context"
	"strings"

	"contactbook/domain/shared"
)

// FullNameContainsSpecification matches people whose full name contains Term, ignoring case.
type FullNameContainsSpecification struct {
	Term string
}

func (spec FullNameContainsSpecification) IsSatisfiedBy(ctx context.Context, p *Person) bool {
	return strings.Contains(strings.ToLower(p.FullName()), strings.ToLower(spec.Term))
}

// ActiveSpecification matches people that have not been soft-deleted.
type ActiveSpecification struct{}

func (ActiveSpecification) IsSatisfiedBy(ctx context.Context, p *Person) bool {
	return !p.IsDeleted()
}

// ListingSpecification is the default listing filter: active people, optionally
// narrowed by a name fragment.
func ListingSpecification(fullName string) shared.Specification[*Person] {
	var spec shared.Specification[*Person] = ActiveSpecification{}
	if term := strings.TrimSpace(fullName); term != "" {
		spec = shared.And(spec, shared.Specification[*Person](FullNameContainsSpecification{Term: term}))
	}
	return spec
}
