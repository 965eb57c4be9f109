package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func ValidateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}

	validationErrors := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}

	return validationErrors
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "Formato de email inválido"
	case "min":
		return "Deve ter no mínimo " + err.Param() + " caracteres"
	case "max":
		return "Deve ter no máximo " + err.Param() + " caracteres"
	case "oneof":
		return "Deve ser um dos valores: " + err.Param()
	case "uuid4":
		return "Identificador inválido"
	default:
		return "Valor inválido"
	}
}

// bindJSON decodes and validates the body, writing a 400 response on failure.
func bindJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeJSON(r, dst)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return false
	}

	if verrs := ValidateRequest(dst); len(verrs) > 0 {
		sendValidationErr(ctx, w, verrs)
		return false
	}

	return true
}

func sendValidationErr(ctx context.Context, w http.ResponseWriter, verrs []ValidationError) {
	slog.WarnContext(ctx, entity.ErrMsgValidation, "details", verrs, "http_code", http.StatusBadRequest)

	sendJSON(ctx, w, http.StatusBadRequest, ResponseError{
		Message: entity.ErrMsgValidation,
		Details: verrs,
	})
}
