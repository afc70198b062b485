package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"PayPalCheckout/internal/shared/domain/checkout"
	"PayPalCheckout/pkg/metrics"

	"github.com/google/go-querystring/query"
)

const (
	tokenPath  = "/v1/oauth2/token"
	ordersPath = "/v2/checkout/orders"

	debugIDHeader = "Paypal-Debug-Id"

	opToken   = "token"
	opCreate  = "create_order"
	opCapture = "capture_order"
)

// Client talks to the PayPal REST API. It implements both checkout.TokenProvider
// and checkout.OrderGateway and is safe for concurrent use.
type Client struct {
	BaseURL   string
	TokenURL  string
	OrdersURL string
	HTTP      *http.Client

	creds checkout.Credentials
}

func New(baseURL string, creds checkout.Credentials, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{
		BaseURL:   baseURL,
		TokenURL:  baseURL + tokenPath,
		OrdersURL: baseURL + ordersPath,
		HTTP:      httpClient,
		creds:     creds,
	}
}

// Addr returns host:port of the API, for reachability checks.
func (c *Client) Addr() (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse paypal base url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("paypal base url %q has no host", c.BaseURL)
	}
	if u.Port() != "" {
		return u.Host, nil
	}
	port := "443"
	if u.Scheme == "http" {
		port = "80"
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

func (c *Client) FetchAccessToken(ctx context.Context) (checkout.AccessToken, error) {
	form, err := query.Values(tokenGrant{GrantType: "client_credentials"})
	if err != nil {
		return checkout.AccessToken{}, &checkout.UpstreamError{Kind: checkout.ErrUpstreamAuth, Err: fmt.Errorf("encode grant: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return checkout.AccessToken{}, &checkout.UpstreamError{Kind: checkout.ErrUpstreamAuth, Err: fmt.Errorf("create token request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret)

	rep, err := c.do(httpReq, opToken, checkout.ErrUpstreamAuth)
	if err != nil {
		return checkout.AccessToken{}, err
	}

	var out tokenResp
	if err := json.Unmarshal(rep.body, &out); err != nil {
		return checkout.AccessToken{}, rep.fail(checkout.ErrUpstreamAuth, fmt.Errorf("unmarshal token response: %w", err))
	}
	if out.AccessToken == "" {
		return checkout.AccessToken{}, rep.fail(checkout.ErrUpstreamAuth, errors.New("token response has no access_token"))
	}

	return checkout.AccessToken{Value: out.AccessToken}, nil
}

func (c *Client) CreateOrder(ctx context.Context, token checkout.AccessToken, req checkout.OrderRequest) (json.RawMessage, error) {
	j, err := json.Marshal(newCreateOrderReq(req))
	if err != nil {
		return nil, &checkout.UpstreamError{Kind: checkout.ErrOrderCreation, Err: fmt.Errorf("marshal order: %w", err)}
	}

	httpReq, err := c.newOrderRequest(ctx, c.OrdersURL, token, j)
	if err != nil {
		return nil, &checkout.UpstreamError{Kind: checkout.ErrOrderCreation, Err: err}
	}

	rep, err := c.do(httpReq, opCreate, checkout.ErrOrderCreation)
	if err != nil {
		return nil, err
	}
	if !json.Valid(rep.body) {
		return nil, rep.fail(checkout.ErrOrderCreation, errors.New("order response is not valid JSON"))
	}

	return json.RawMessage(rep.body), nil
}

func (c *Client) CaptureOrder(ctx context.Context, token checkout.AccessToken, orderID string) (checkout.CaptureResult, error) {
	captureURL := c.OrdersURL + "/" + url.PathEscape(orderID) + "/capture"

	httpReq, err := c.newOrderRequest(ctx, captureURL, token, []byte("{}"))
	if err != nil {
		return checkout.CaptureResult{}, &checkout.UpstreamError{Kind: checkout.ErrOrderCapture, Err: err}
	}

	rep, err := c.do(httpReq, opCapture, checkout.ErrOrderCapture)
	if err != nil {
		return checkout.CaptureResult{}, err
	}

	var out captureResp
	if err := json.Unmarshal(rep.body, &out); err != nil {
		return checkout.CaptureResult{}, rep.fail(checkout.ErrOrderCapture, fmt.Errorf("unmarshal capture response: %w", err))
	}

	return checkout.CaptureResult{
		ID:     out.ID,
		Status: out.Status,
	}, nil
}

func (c *Client) newOrderRequest(ctx context.Context, target string, token checkout.AccessToken, body []byte) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token.Value)
	return httpReq, nil
}

type reply struct {
	status  int
	body    []byte
	debugID string
}

func (r reply) fail(kind, cause error) *checkout.UpstreamError {
	return &checkout.UpstreamError{
		Kind:       kind,
		StatusCode: r.status,
		DebugID:    r.debugID,
		Err:        cause,
	}
}

// do sends the request and turns anything but a readable 2xx into an
// UpstreamError of the given kind.
func (c *Client) do(req *http.Request, op string, kind error) (reply, error) {
	start := time.Now()

	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.ObservePayPalCall(op, "error", time.Since(start))
		return reply{}, &checkout.UpstreamError{Kind: kind, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	metrics.ObservePayPalCall(op, strconv.Itoa(resp.StatusCode), time.Since(start))

	rep := reply{
		status:  resp.StatusCode,
		body:    raw,
		debugID: resp.Header.Get(debugIDHeader),
	}
	if err != nil {
		return rep, rep.fail(kind, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode/100 != 2 {
		upstream := rep.fail(kind, nil)
		upstream.Body = raw
		return rep, upstream
	}

	return rep, nil
}
