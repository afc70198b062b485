package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"PayPalCheckout/pkg/correlation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBody = 8 * 1024 // 8KB

// Logger is the access logger used by the HTTP layer and the process lifecycle.
type Logger struct {
	logger zerolog.Logger
}

func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

func NewWithWriter(level string, w io.Writer) *Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && level != "" {
		lvl = parsed
	}

	return &Logger{
		logger: zerolog.New(w).
			Level(lvl).
			With().
			Timestamp().
			Str("service", "paypal-checkout").
			Logger(),
	}
}

func (l *Logger) Info(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

func (l *Logger) Fatal(err error) {
	l.logger.Fatal().Err(err).Msg("fatal")
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if room := maxBody - r.body.Len(); room > 0 {
		if len(b) > room {
			r.body.Write(b[:room])
		} else {
			r.body.Write(b)
		}
	}
	return r.ResponseWriter.Write(b)
}

// GinBodyLogger writes one access log line per request. Request bodies are never
// logged since checkout forms carry customer PII; failed requests get the
// response body, which holds PayPal's error details.
func (l *Logger) GinBodyLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		responseBuffer := &bytes.Buffer{}
		c.Writer = &responseBodyWriter{
			ResponseWriter: c.Writer,
			body:           responseBuffer,
		}

		c.Next()

		status := c.Writer.Status()
		logEvent := l.logger.Info()
		if status >= 500 {
			logEvent = l.logger.Error()
		}

		if corrID := correlation.FromContext(c.Request.Context()); corrID != "" {
			logEvent = logEvent.Str("correlation_id", corrID)
		}

		logEvent = logEvent.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start))

		if status >= 400 {
			logEvent = addMaybeJSON(logEvent, "response_body", responseBuffer.Bytes())
		}

		logEvent.Msg(fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path))
	}
}

func addMaybeJSON(e *zerolog.Event, key string, b []byte) *zerolog.Event {
	bb := bytes.TrimSpace(b)

	if len(bb) == 0 {
		return e.RawJSON(key, []byte("null"))
	}

	// Truncated or non-JSON bodies go in as strings so the line stays valid JSON.
	if json.Valid(bb) {
		return e.RawJSON(key, bb)
	}

	return e.Str(key, string(bb))
}
