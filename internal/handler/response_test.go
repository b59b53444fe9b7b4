package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/medhq/hms-api/pkg/errors"
)

func writeError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/patients/42", nil)
	Error(c, err)
	return w
}

func TestErrorMapsAppErrorCodes(t *testing.T) {
	w := writeError(t, apperrors.NotFound("patient", errors.New("missing")))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestErrorCancelledRequestIsNotASuccess(t *testing.T) {
	for _, err := range []error{context.Canceled, context.DeadlineExceeded} {
		w := writeError(t, err)
		assert.Equal(t, statusClientClosedRequest, w.Code, "%v", err)
	}
}

func TestErrorUnknownIsOpaque(t *testing.T) {
	w := writeError(t, errors.New("sql: driver gone"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "driver")
}
