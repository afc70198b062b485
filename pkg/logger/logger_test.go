package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"PayPalCheckout/pkg/correlation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(Options{Level: "debug", Output: &buf}))

	l.InfoContext(correlation.WithID(context.Background(), "corr-42"), "paypal call failed", "operation", "create order")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "corr-42", record["correlation_id"])
	assert.Equal(t, "create order", record["operation"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func newLoggedEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(CorrelationMiddleware(), NewWithWriter("info", buf).GinBodyLogger())
	engine.POST("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": "ORDER-1"})
	})
	engine.POST("/create-order", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error creating PayPal order",
			"details": gin.H{"name": "INVALID_REQUEST"},
		})
	})
	engine.POST("/echo-size", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.JSON(http.StatusOK, gin.H{"size": len(body)})
	})
	return engine
}

func TestGinBodyLogger(t *testing.T) {
	t.Run("omits bodies of successful requests", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newLoggedEngine(&buf)

		req := httptest.NewRequest(http.MethodPost, "/ok", strings.NewReader(`{"email":"jane@example.com"}`))
		req.Header.Set(correlation.HeaderName, "corr-1")
		engine.ServeHTTP(httptest.NewRecorder(), req)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "corr-1", line["correlation_id"])
		assert.Equal(t, float64(http.StatusOK), line["status"])
		assert.NotContains(t, line, "response_body")
		assert.NotContains(t, buf.String(), "jane@example.com")
	})

	t.Run("keeps customer data out of failed checkout lines", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newLoggedEngine(&buf)

		form := `{"email":"jane@example.com","firstName":"Jane","address1":"1 Main St","productPrice":"19.99"}`
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/create-order", strings.NewReader(form)))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "error", line["level"])
		assert.Equal(t, float64(http.StatusInternalServerError), line["status"])
		assert.NotContains(t, line, "request_body")
		assert.NotContains(t, buf.String(), "jane@example.com")
		assert.NotContains(t, buf.String(), "1 Main St")
		assert.Equal(t, map[string]any{
			"message": "Error creating PayPal order",
			"details": map[string]any{"name": "INVALID_REQUEST"},
		}, line["response_body"])
	})

	t.Run("passes large request bodies through untouched", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newLoggedEngine(&buf)
		large := strings.Repeat("x", 64*1024)

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo-size", strings.NewReader(large)))

		assert.JSONEq(t, `{"size":65536}`, rec.Body.String())
		assert.NotContains(t, buf.String(), "xxxx")
	})

	t.Run("caps logged response bodies", func(t *testing.T) {
		var buf bytes.Buffer
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		engine.Use(NewWithWriter("info", &buf).GinBodyLogger())
		engine.GET("/fail", func(c *gin.Context) {
			c.String(http.StatusBadGateway, strings.Repeat("y", 2*maxBody))
		})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, 2*maxBody, rec.Body.Len())
		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Len(t, line["response_body"], maxBody)
	})
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("info", &buf)

	l.Error("api - Run - shutdown: %v", errors.New("context deadline exceeded"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "paypal-checkout", line["service"])
	assert.Equal(t, "api - Run - shutdown: context deadline exceeded", line["message"])
}

func TestCorrelationMiddleware(t *testing.T) {
	var buf bytes.Buffer
	engine := newLoggedEngine(&buf)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ok", nil))

	assert.NotEmpty(t, rec.Header().Get(correlation.HeaderName))
}
