package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestUnauthorized_AbortsChain(t *testing.T) {
	reached := false

	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		Unauthorized(c, "invalid_token")
	}, func(c *gin.Context) {
		reached = true
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error_code":"invalid_token","message":"Authentication required."}`, w.Body.String())
	assert.False(t, reached)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"business", ErrNotFound("doctor_not_found"), http.StatusNotFound, `{"error_code":"doctor_not_found","message":"Doctor not found."}`},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, `{"error_code":"internal_error","message":"Unexpected error, please try again."}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
