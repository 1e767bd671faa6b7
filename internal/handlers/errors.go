package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"todoapi/internal/dto"

	"github.com/go-playground/validator/v10"
)

const (
	codeRequired = "required"
	codeLength   = "length"
)

// validationDocument turns a binding error into the structured 400 body:
// one entry per violated field. A non-validator error (malformed JSON,
// wrong types) yields a document with no per-field entries.
func validationDocument(err error) dto.ErrorDocument {
	doc := dto.ErrorDocument{
		Status:  "BAD_REQUEST",
		Code:    http.StatusBadRequest,
		Message: "validation failed",
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		doc.Message = "malformed request body"
		return doc
	}
	for _, fe := range verrs {
		doc.ValidationErrors = append(doc.ValidationErrors, dto.ValidationError{
			Field:        jsonFieldName(fe.Field()),
			ErrorCode:    errorCode(fe.Tag()),
			ErrorMessage: errorMessage(fe),
		})
	}
	return doc
}

func errorCode(tag string) string {
	switch tag {
	case "required":
		return codeRequired
	case "max":
		return codeLength
	default:
		return tag
	}
}

func errorMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s may not be empty", field)
	case "max":
		return fmt.Sprintf("%s may not be longer than %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// jsonFieldName maps the Go struct field to its json tag name. The DTO
// fields are single words, so lowercasing the first rune is enough.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
