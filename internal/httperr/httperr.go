package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// includeDetails controls whether the underlying error text is serialized.
// Production turns it off once at startup so no handler can leak internals.
var includeDetails = true

func IncludeDetails(on bool) {
	includeDetails = on
}

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// WriteErr is Write plus the wrapped error's text, emitted only outside
// production.
func WriteErr(c *gin.Context, status int, code, message string, err error) {
	out := HTTPError{
		Code:    code,
		Message: message,
	}
	if includeDetails && err != nil {
		out.Details = err.Error()
	}
	c.JSON(status, out)
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

// Conflict is a duplicate-unique-field failure. Reported as 400, matching
// the public API contract.
func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
