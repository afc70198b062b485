package handlers

import (
	"net/http"

	"PayPalCheckout/internal/shared/domain/checkout"

	"github.com/gin-gonic/gin"
)

const (
	msgCreateFailed  = "Error creating PayPal order"
	msgCaptureFailed = "Error capturing PayPal order"
	msgInvalidBody   = "Invalid request body"
)

type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(s *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

type CaptureOrderRequest struct {
	OrderID string `json:"orderID"`
}

// CreateOrder relays PayPal's order object as-is so the storefront can read its id.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req checkout.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody, "details": err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgCreateFailed, "details": checkout.ErrorDetails(err)})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", order)
}

func (h *CheckoutHandler) CaptureOrder(c *gin.Context) {
	var req CaptureOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody, "details": err.Error()})
		return
	}

	res, err := h.service.CaptureOrder(c.Request.Context(), req.OrderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgCaptureFailed, "details": checkout.ErrorDetails(err)})
		return
	}

	c.JSON(http.StatusOK, res)
}
