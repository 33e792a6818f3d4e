package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

// idField accepts an identifier sent either as a JSON number or a string.
// Validation happens in the use case so a bad id is a 400, not a decode error.
type idField string

func (f *idField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = idField(s)
		return nil
	}
	*f = idField(data)
	return nil
}

func (f idField) String() string {
	return string(f)
}

// respondError writes err with its mapped status and logs unexpected failures once.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	if httperr.StatusOf(err) >= 500 {
		log.WithRequestID(c.GetString(middleware.ContextRequestID)).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("unexpected error")
	}
	httperr.FromError(c, err)
}

// respondFlagged is respondError for endpoints whose body carries a boolean
// outcome flag ("available" or "success").
func respondFlagged(c *gin.Context, log *logger.Logger, flag string, err error) {
	status := httperr.StatusOf(err)
	code, message := "internal_error", httperr.Message("internal_error")
	if be, ok := httperr.AsBusiness(err); ok {
		code, message = be.Code, httperr.Message(be.Code)
	} else {
		log.WithRequestID(c.GetString(middleware.ContextRequestID)).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("unexpected error")
	}

	c.JSON(status, gin.H{
		flag:         false,
		"error_code": code,
		"message":    message,
	})
}

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		httperr.BadRequest(c, "invalid_id", httperr.Message("invalid_id"))
		return 0, false
	}
	return uint(n), true
}

// anyBlank reports whether a field present in a PATCH body is empty after trimming.
func anyBlank(fields ...*string) bool {
	for _, f := range fields {
		if f != nil && strings.TrimSpace(*f) == "" {
			return true
		}
	}
	return false
}

// bindJSON binds an admin request body; failures are a 400 invalid_request.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(400, gin.H{
			"error_code": "invalid_request",
			"message":    httperr.Message("invalid_request"),
			"details":    err.Error(),
		})
		return false
	}
	return true
}
