package api

import (
	_ "embed"
	"net/http"

	"PayPalCheckout/internal/api/handlers"
	"PayPalCheckout/pkg/health"
	"PayPalCheckout/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed public/index.html
var indexHTML []byte

type Router struct {
	checkout       *handlers.CheckoutHandler
	healthRegistry *health.Registry
}

func NewRouter(checkout *handlers.CheckoutHandler, healthRegistry *health.Registry) *Router {
	return &Router{
		checkout:       checkout,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler(r.healthRegistry))
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Storefront
	engine.GET("/", landingPage)
	engine.POST("/create-order", r.checkout.CreateOrder)
	engine.POST("/capture-order", r.checkout.CaptureOrder)
}

func landingPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
