// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/hknair/leadgate/internal/app/features/admin"
	healthfeature "github.com/hknair/leadgate/internal/app/features/health"
	registerfeature "github.com/hknair/leadgate/internal/app/features/register"
	registrationsvc "github.com/hknair/leadgate/internal/app/service/registration"
	"github.com/hknair/leadgate/internal/app/system/apikey"
	"github.com/hknair/leadgate/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. Everything under /api is JSON; the register and
// health endpoints are public, the admin endpoints are behind the optional
// bearer-key guard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	dev := coreCfg.Env == "dev"

	svc := registrationsvc.New(deps.Store, appCfg.DedupWindow, logger)
	guard := apikey.Middleware(appCfg.AdminKeyHash, logger)
	intakeGuard := ratelimit.Middleware(appCfg.RegisterRateLimit, appCfg.RegisterRateWindow, logger)

	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		healthHandler := healthfeature.NewHandler(deps.Store, logger)
		r.Mount("/health", healthfeature.Routes(healthHandler))

		registerHandler := registerfeature.NewHandler(svc, logger, dev)
		r.Mount("/register", registerfeature.Routes(registerHandler, intakeGuard))

		adminHandler := adminfeature.NewHandler(svc, logger, dev)
		r.Mount("/registrations", adminfeature.Routes(adminHandler, guard))
	})

	return r, nil
}
