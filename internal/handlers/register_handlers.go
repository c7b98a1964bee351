package handlers

import (
	"context"

	portssvc "github.com/SscSPs/networth_backend/internal/core/ports/services"
	"github.com/SscSPs/networth_backend/internal/middleware"
	"github.com/SscSPs/networth_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
)

type routeOptions struct {
	lifetime context.Context
}

// RouteOption configures RegisterRoutes.
type RouteOption func(*routeOptions)

// WithLifetime bounds work that outlives its request, such as a sync run, by ctx.
// Without it such work only ends when it completes.
func WithLifetime(ctx context.Context) RouteOption {
	return func(o *routeOptions) {
		o.lifetime = ctx
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// apiLimiter and gatherer are optional.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
	gatherer prometheus.Gatherer,
	opts ...RouteOption,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	options := routeOptions{lifetime: context.Background()}
	for _, opt := range opts {
		opt(&options)
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	setupAPIV1Routes(r, cfg, services, apiLimiter, options)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
	options routeOptions,
) {
	v1 := r.Group("/api/v1")
	if apiLimiter != nil {
		v1.Use(middleware.RateLimit(apiLimiter))
	}
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	registerSettingsRoutes(v1, service.UserSettings)
	registerAccountRoutes(v1, service.Account)
	registerBalanceSheetRoutes(v1, service.BalanceSheet)
	registerCurrencyRateRoutes(v1, service.CurrencyRate)
	registerSyncRoutes(v1, service.SyncJob, options.lifetime)
}
