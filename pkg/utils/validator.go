package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
)

// EchoValidator adapta o validator/v10 ao contrato de validação do echo.
type EchoValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *EchoValidator {
	return &EchoValidator{validator: v}
}

func (cv *EchoValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		details := map[string]string{}
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				details[fe.Field()] = fe.Tag()
			}
		}
		return apperrors.NewHttpError(http.StatusBadRequest, "Dados da requisição inválidos", err, details)
	}
	return nil
}
