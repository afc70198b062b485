package checkout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUpstreamAuth is returned when the client-credentials token exchange fails.
	ErrUpstreamAuth = errors.New("unable to get PayPal access token")

	// ErrOrderCreation is returned when PayPal rejects or cannot be reached for order creation.
	ErrOrderCreation = errors.New("unable to create PayPal order")

	// ErrOrderCapture is returned when PayPal rejects or cannot be reached for order capture.
	ErrOrderCapture = errors.New("unable to capture PayPal order")
)

const maxErrorBody = 512

// UpstreamError describes a failed PayPal call. Kind is one of the sentinel
// errors above; Err is the transport or decoding cause, if any.
type UpstreamError struct {
	Kind       error
	StatusCode int
	Body       []byte
	DebugID    string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Kind.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: paypal status %d", msg, e.StatusCode)
		if body := bytes.TrimSpace(e.Body); len(body) > 0 {
			if len(body) > maxErrorBody {
				body = body[:maxErrorBody]
			}
			msg = fmt.Sprintf("%s: %s", msg, body)
		}
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Details is what the caller sees under "details": the PayPal body when there
// is one (as JSON when it parses), otherwise the transport error message.
func (e *UpstreamError) Details() any {
	body := bytes.TrimSpace(e.Body)
	switch {
	case len(body) > 0 && json.Valid(body):
		return json.RawMessage(body)
	case len(body) > 0:
		return string(body)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.Error()
	}
}

// ErrorDetails extracts response details from any error returned by Service.
func ErrorDetails(err error) any {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Details()
	}
	return err.Error()
}
