package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"smat.com/campusapi/internal/entity"
)

// Register installs the enum validators on gin's binding engine and makes
// error messages use the query/json parameter names.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	rules := map[string]validator.Func{
		"mealperiod": func(fl validator.FieldLevel) bool {
			return entity.MealPeriod(fl.Field().String()).Valid()
		},
		"weekday": func(fl validator.FieldLevel) bool {
			return entity.Weekday(fl.Field().String()).Valid()
		},
		"category": func(fl validator.FieldLevel) bool {
			return entity.Category(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date in yyyy-MM-dd format", field)
	case "mealperiod":
		return fmt.Sprintf("%s must be one of %s", field, joinValues(entity.MealPeriods))
	case "weekday":
		return fmt.Sprintf("%s must be one of 월 화 수 목 금 토 일", field)
	case "category":
		return fmt.Sprintf("%s must be one of %s", field, joinValues(entity.Categories))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
