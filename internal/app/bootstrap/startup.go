// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/hknair/leadgate/internal/app/system/paging"
	"github.com/hknair/leadgate/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	paging.Configure(appCfg.PageSizeDefault, appCfg.PageSizeMax)
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("handler timeouts overridden from environment", zap.Int("count", n))
	}
	logger.Info("intake policy",
		zap.Duration("dedup_window", appCfg.DedupWindow),
		zap.Bool("admin_guard", appCfg.AdminKeyHash != ""))
	return nil
}
