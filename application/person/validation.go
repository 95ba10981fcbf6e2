package person

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"contactbook/domain/person"
	apperrors "contactbook/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// RequestValidator 结构性校验：在访问存储之前拒绝格式错误的请求
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return person.IsValidPhoneNumber(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

// Validate returns nil or an *apperrors.AppError with code VALIDATION_ERROR.
func (v *RequestValidator) Validate(request any) error {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Wrap(err, apperrors.CodeBadRequest, "invalid request")
	}

	fields := make([]apperrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return apperrors.ValidationFailed(fields)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		r, size := utf8.DecodeRuneInString(fld.Name)
		return string(unicode.ToLower(r)) + fld.Name[size:]
	}
	return name
}

// fieldPath drops the struct name: "CreatePersonCommand.homeAddress.addressLine" -> "homeAddress.addressLine".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func fieldMessage(fe validator.FieldError) string {
	label := displayName(fe.Field())
	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s must not be empty.", label)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "phone":
		return fmt.Sprintf("Phone number '%v' must start with '+' followed by digits and be %d to %d characters long.",
			fe.Value(), person.MinPhoneNumberLength, person.MaxPhoneNumberLength)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

// displayName turns "fullName" or "phoneNumbers[0]" into "Full name" / "Phone numbers".
func displayName(field string) string {
	field, _, _ = strings.Cut(field, "[")
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
