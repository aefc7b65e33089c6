package serverutils

import (
	"fmt"
	"strings"

	"virtual-classroom-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ValidateRequest runs struct tag validation and folds violations into a
// single validation error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var violations []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range errs {
				violations = append(violations, fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
			}
			return apperror.NewValidation(strings.Join(violations, "; "))
		}
		return apperror.NewValidation(err.Error())
	}
	return nil
}
