package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return err.Field() + " must be a valid email address"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "gt":
		return err.Field() + " must be greater than " + err.Param()
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	default:
		return err.Field() + " is invalid"
	}
}

// BindingErrorDetails flattens gin binding failures into the per-field shape
// the admin forms expect. Non-validator errors (malformed JSON) produce no
// details.
func BindingErrorDetails(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		key := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		details[key] = append(details[key], fieldMessage(fe))
	}
	return details
}

// RespondValidationError writes the standard 400 envelope for a binding
// failure.
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:   "Datos inválidos",
		Details: BindingErrorDetails(err),
	})
}
