package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Partial any               `json:"partial,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Backend reports a failure of the persistence or storage backend. The
// backend's own message is passed through so the user can decide to retry;
// context added by wrapping stays in the logs.
func Backend(c *gin.Context, code string, err error) {
	Write(c, http.StatusBadGateway, code, BackendMessage(err))
}

// BackendPartial is Backend for a request that was partly applied.
func BackendPartial(c *gin.Context, code string, err error, partial any) {
	c.JSON(http.StatusBadGateway, HTTPError{
		Code:    code,
		Message: BackendMessage(err),
		Partial: partial,
	})
}

// BackendMessage returns the message of the innermost wrapped error.
func BackendMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Validation writes a field-scoped error response.
func Validation(c *gin.Context, ve *ValidationError) {
	fields := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		fields[f.Field] = f.Message
	}

	code := "validation_failed"
	message := "Verifique os campos destacados."
	if len(ve.Fields) == 1 {
		code = ve.Fields[0].Code
		message = ve.Fields[0].Message
	}

	c.JSON(http.StatusUnprocessableEntity, HTTPError{
		Code:    code,
		Message: message,
		Fields:  fields,
	})
}
