//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"band-booking/internal/handler/httperr"
	"band-booking/internal/handler/middleware"
	"band-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter(buf *bytes.Buffer, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	r := gin.New()
	r.Use(middleware.CustomRecovery(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.GET("/x", h)
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("server errors are logged with a stack", func(t *testing.T) {
		var buf bytes.Buffer
		r := newErrorRouter(&buf, func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.New("calendar down"), "Calendar is temporarily unavailable. Please try again.", nil)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, buf.String(), "request failed")
		assert.Contains(t, buf.String(), "stack=")
	})

	t.Run("client errors are not logged", func(t *testing.T) {
		var buf bytes.Buffer
		r := newErrorRouter(&buf, func(c *gin.Context) {
			httperr.AbortWithFieldErrors(c, http.StatusBadRequest, errs.New("invalid"), map[string]string{"date": "Date is required"})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, buf.String())

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail struct {
				Fields map[string]string `json:"fields"`
			} `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Validation failed", body.Error.Message)
		assert.Equal(t, "Date is required", body.Detail.Fields["date"])
	})

	t.Run("panics become a 500 envelope", func(t *testing.T) {
		var buf bytes.Buffer
		r := newErrorRouter(&buf, func(c *gin.Context) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
		assert.Contains(t, buf.String(), "recovered from panic")
	})
}
