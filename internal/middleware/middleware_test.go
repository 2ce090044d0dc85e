package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        apperrors.NewNotFoundError(nil, "Review not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   "Review not found",
		},
		{
			name:       "bad request",
			err:        apperrors.NewBadRequestError(nil, "The review has no content to be stored"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "The review has no content to be stored",
		},
		{
			name:       "unprocessable",
			err:        apperrors.NewUnprocessableError(nil, "params are not correct"),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "params are not correct",
		},
		{
			name:       "internal with message",
			err:        apperrors.NewInternalError(errors.New("tx aborted"), "Failed to create review"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to create review",
		},
		{
			name:       "plain error uses fallback",
			err:        fmt.Errorf("error retrieving reactions: %w", errors.New("conn refused")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) {
				HandleAPIError(c, tt.err, http.StatusInternalServerError, "fallback")
			})

			w := perform(r, http.MethodGet, "/", "", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(apperrors.KindInternal, http.StatusNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusFor(apperrors.KindInternal, http.StatusBadRequest))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(apperrors.KindUnprocessable, http.StatusNotFound))
}

func TestGuard(t *testing.T) {
	r := gin.New()
	r.Use(Guard(http.StatusNotFound, "Courses not found"))
	r.GET("/boom", func(c *gin.Context) {
		panic("nil map")
	})

	w := perform(r, http.MethodGet, "/boom", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Courses not found", w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/ok", func(c *gin.Context) {
		assert.NotEmpty(t, RequestID(c))
		c.Status(http.StatusNoContent)
	})

	w := perform(r, http.MethodGet, "/ok", "", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"status":204`)

	buf.Reset()
	w = perform(r, http.MethodGet, "/ok", "", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://sharelearning.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/x", "", map[string]string{"Origin": "https://sharelearning.example"})
	assert.Equal(t, "https://sharelearning.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = perform(r, http.MethodGet, "/x", "", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBindJSON(t *testing.T) {
	type body struct {
		Content *string `json:"content"`
	}

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if !BindJSON(c, &b, http.StatusUnprocessableEntity, "params are not correct") {
			return
		}
		c.String(http.StatusOK, *b.Content)
	})

	w := perform(r, http.MethodPost, "/", `{"content":"hi"}`, map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", w.Body.String())

	w = perform(r, http.MethodPost, "/", `{"content":`, map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "params are not correct", w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Content *string `json:"content"`
	}

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		b := DecodeJSON[body](c)
		if b.Content == nil {
			c.String(http.StatusOK, "<none>")
			return
		}
		c.String(http.StatusOK, *b.Content)
	})

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "valid", body: `{"content":"hi"}`, want: "hi"},
		{name: "empty", body: "", want: "<none>"},
		{name: "malformed", body: `{"content":`, want: "<none>"},
		{name: "wrong type", body: `{"content":5}`, want: "<none>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(r, http.MethodPost, "/", tt.body, map[string]string{"Content-Type": "application/json"})
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}
