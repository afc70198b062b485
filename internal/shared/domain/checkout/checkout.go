// Package checkout holds the checkout flow: credentials, the order request coming
// from the storefront, and the service that sequences a PayPal token grant with an
// order operation.
package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Credentials are the PayPal REST app credentials. They are read once at startup.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{ClientID: %q, ClientSecret: [REDACTED]}", c.ClientID)
}

func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("client_id", c.ClientID))
}

// AccessToken is a bearer token for a single outbound call. It is never cached.
type AccessToken struct {
	Value string
}

func (t AccessToken) String() string {
	return "AccessToken{[REDACTED]}"
}

// FlexString accepts either a JSON string or a JSON number and keeps the
// textual form, so "19.99" and 19.99 both end up as "19.99".
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*s = FlexString(n.String())
	return nil
}

// OrderRequest is the storefront checkout form. Fields are forwarded as-is.
type OrderRequest struct {
	ProductPrice FlexString `json:"productPrice"`
	ItemNumber   FlexString `json:"itemNumber"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Address1     string     `json:"address1"`
	Address2     string     `json:"address2"`
	Neighborhood string     `json:"neighborhood"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Zip          FlexString `json:"zip"`
	Country      string     `json:"country"`
	Email        string     `json:"email"`
}

// CaptureResult is the part of a PayPal capture response handed back to the caller.
type CaptureResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
