package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/models"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	// custom validation tags
	notBlankTag         = "notblank"
	staffRoleTag        = "staff_role"
	enrollmentStatusTag = "enrollment_status"
	nonZeroDecimalTag   = "nonzero_decimal"
	nonNegDecimalTag    = "nonneg_decimal"
)

func init() {
	validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Sprintf("register default translations: %v", err))
	}

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Money fields are validated as their decimal string.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	for tag, fn := range map[string]validator.Func{
		notBlankTag:         notBlankValidation,
		staffRoleTag:        staffRoleValidation,
		enrollmentStatusTag: enrollmentStatusValidation,
		nonZeroDecimalTag:   nonZeroDecimalValidation,
		nonNegDecimalTag:    nonNegDecimalValidation,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	registerCustomValidationsTranslations(notBlankTag, staffRoleTag, enrollmentStatusTag, nonZeroDecimalTag, nonNegDecimalTag)
}

// registerCustomValidationsTranslations registers error messages for the custom tags.
// The registration func is a noop because the default translations are already loaded.
func registerCustomValidationsTranslations(tags ...string) {
	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range tags {
		if err := validate.RegisterTranslation(tag, translator, registerFn, translateCustomValidationErrs); err != nil {
			panic(fmt.Sprintf("register %s translation: %v", tag, err))
		}
	}
}

func translateCustomValidationErrs(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case staffRoleTag:
		return fe.Field() + " must be one of registrar, finance, teacher, super_admin"
	case enrollmentStatusTag:
		return fe.Field() + " must be one of pending, enrolled, graduated, dropped"
	case nonZeroDecimalTag:
		return fe.Field() + " must be a non-zero amount"
	case nonNegDecimalTag:
		return fe.Field() + " must be zero or more"
	default:
		return fe.Error()
	}
}

// validateMsg checks the struct tags of a request message and returns an
// InvalidArgument error listing every failure.
func validateMsg(msg any) error {
	err := validate.Struct(msg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fe.Translate(translator)
	}
	return connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(msgs, "; ")))
}

// Custom Validators

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func staffRoleValidation(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).IsStaff()
}

func enrollmentStatusValidation(fl validator.FieldLevel) bool {
	return models.EnrollmentStatus(fl.Field().String()).Valid()
}

func nonZeroDecimalValidation(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsZero()
}

func nonNegDecimalValidation(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}
