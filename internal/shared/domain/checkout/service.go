package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Service runs one token grant and one order call per operation. It keeps no
// state between calls, so a single instance is shared by all requests.
type Service struct {
	tokens TokenProvider
	orders OrderGateway
}

func NewService(tokens TokenProvider, orders OrderGateway) *Service {
	return &Service{
		tokens: tokens,
		orders: orders,
	}
}

func (s *Service) CreateOrder(ctx context.Context, req OrderRequest) (json.RawMessage, error) {
	token, err := s.tokens.FetchAccessToken(ctx)
	if err != nil {
		logFailure(ctx, "create order", err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	order, err := s.orders.CreateOrder(ctx, token, req)
	if err != nil {
		logFailure(ctx, "create order", err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func (s *Service) CaptureOrder(ctx context.Context, orderID string) (CaptureResult, error) {
	token, err := s.tokens.FetchAccessToken(ctx)
	if err != nil {
		logFailure(ctx, "capture order", err)
		return CaptureResult{}, fmt.Errorf("capture order %q: %w", orderID, err)
	}

	res, err := s.orders.CaptureOrder(ctx, token, orderID)
	if err != nil {
		logFailure(ctx, "capture order", err, slog.String("order_id", orderID))
		return CaptureResult{}, fmt.Errorf("capture order %q: %w", orderID, err)
	}

	return res, nil
}

func logFailure(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("operation", op), slog.String("error", err.Error()))

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		if upstream.StatusCode != 0 {
			attrs = append(attrs, slog.Int("paypal_status", upstream.StatusCode))
		}
		if upstream.DebugID != "" {
			attrs = append(attrs, slog.String("paypal_debug_id", upstream.DebugID))
		}
	}

	slog.LogAttrs(ctx, slog.LevelError, "paypal call failed", attrs...)
}
