package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Unauthorized aborts the chain and answers 401 with the given code.
func Unauthorized(c *gin.Context, code string) {
	c.Abort()
	Write(c, http.StatusUnauthorized, code, Message(code))
}

// FromError writes a BusinessError with its mapped status, or a generic 500.
func FromError(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, StatusOf(err), be.Code, Message(be.Code))
		return
	}
	Internal(c, "internal_error", Message("internal_error"))
}
