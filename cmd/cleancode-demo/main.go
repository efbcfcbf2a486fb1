// Command cleancode-demo prices sample orders, prints per-tier quotes and
// registers a sample user, reporting through zap or as JSON lines.
package main

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.uber.org/zap"

	cleancode "github.com/xenking/cleancode-kart/internal/app"
)

func run(ctx context.Context, lg *zap.Logger, m *app.Telemetry) error {
	cfg, err := cleancode.LoadConfig()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	lg.Debug("Config loaded",
		zap.String("dispatch", cfg.Dispatch),
		zap.String("report", cfg.Report),
		zap.String("quote_amount", cfg.QuoteAmount),
	)
	return cleancode.Run(ctx, lg, m, cfg)
}

func main() {
	app.Run(run)
}
