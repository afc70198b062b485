package checkout

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source port.go -destination mock_port.go -package checkout

type TokenProvider interface {
	FetchAccessToken(ctx context.Context) (AccessToken, error)
}

// OrderGateway returns PayPal's order object untouched from CreateOrder.
type OrderGateway interface {
	CreateOrder(ctx context.Context, token AccessToken, req OrderRequest) (json.RawMessage, error)
	CaptureOrder(ctx context.Context, token AccessToken, orderID string) (CaptureResult, error)
}
