package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
		return Tone(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("prompttype", func(fl validator.FieldLevel) bool {
		return PromptType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("sortfield", func(fl validator.FieldLevel) bool {
		return SortField(fl.Field().String()).IsValid()
	})

	return v
}

// ValidateStruct runs the struct's `validate` tags and converts failures into
// a *ValidationError with one FieldError per violated field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return NewValidationErrors(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("max %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "tone":
		return "must be one of: " + ToneList()
	case "prompttype":
		return "must be one of: " + PromptTypeList()
	case "sortfield":
		return "must be one of: " + SortFieldList()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "invalid value"
}
