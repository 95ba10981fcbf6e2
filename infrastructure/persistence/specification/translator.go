package specification

import (
	"strings"

	"contactbook/domain/person"
	"contactbook/domain/shared"

	"gorm.io/gorm"
)

// Scope is a GORM scope produced from a domain specification.
type Scope = func(*gorm.DB) *gorm.DB

// Translator converts domain specifications to GORM scopes.
// 基础设施层负责框架相关的翻译，领域层只声明规约。
type Translator[T any] interface {
	Translate(spec shared.Specification[T]) Scope
}

// PersonTranslator translates person specifications against the people table.
// Unknown specifications translate to no condition.
type PersonTranslator struct{}

func NewPersonTranslator() *PersonTranslator {
	return &PersonTranslator{}
}

func (t *PersonTranslator) Translate(spec shared.Specification[*person.Person]) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return t.apply(db, spec)
	}
}

func (t *PersonTranslator) apply(db *gorm.DB, spec shared.Specification[*person.Person]) *gorm.DB {
	if spec == nil {
		return db
	}
	switch s := spec.(type) {
	case shared.AndSpecification[*person.Person]:
		return t.apply(t.apply(db, s.Left), s.Right)
	case shared.OrSpecification[*person.Person]:
		// 两侧各自在新会话里构建条件，再作为一个括号组合并
		left := t.apply(db.Session(&gorm.Session{NewDB: true}), s.Left)
		right := t.apply(db.Session(&gorm.Session{NewDB: true}), s.Right)
		return db.Where(left.Or(right))
	case shared.NotSpecification[*person.Person]:
		return t.applyNot(db, s.Spec)
	default:
		return t.applyConcrete(db, spec)
	}
}

// applyNot pushes negation down to the leaves (De Morgan).
func (t *PersonTranslator) applyNot(db *gorm.DB, spec shared.Specification[*person.Person]) *gorm.DB {
	switch s := spec.(type) {
	case person.ActiveSpecification:
		return db.Where("is_deleted = ?", true)
	case person.FullNameContainsSpecification:
		return db.Where("full_name_search NOT LIKE ? ESCAPE '!'", ContainsPattern(s.Term))
	case shared.AndSpecification[*person.Person]:
		return t.apply(db, shared.Or(shared.Not(s.Left), shared.Not(s.Right)))
	case shared.OrSpecification[*person.Person]:
		return t.apply(db, shared.And(shared.Not(s.Left), shared.Not(s.Right)))
	case shared.NotSpecification[*person.Person]:
		return t.apply(db, s.Spec)
	default:
		return db
	}
}

func (t *PersonTranslator) applyConcrete(db *gorm.DB, spec shared.Specification[*person.Person]) *gorm.DB {
	switch s := spec.(type) {
	case person.ActiveSpecification:
		return db.Where("is_deleted = ?", false)
	case person.FullNameContainsSpecification:
		return db.Where("full_name_search LIKE ? ESCAPE '!'", ContainsPattern(s.Term))
	default:
		return db
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern builds a substring LIKE pattern against the lower-cased
// full_name_search column, with '!' as the escape character so wildcards in
// the term match literally.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

var _ Translator[*person.Person] = (*PersonTranslator)(nil)
