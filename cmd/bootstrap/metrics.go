package bootstrap

import (
	"issuance-engine/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() *metrics.Registry { return metrics.NewRegistry(true) },
	),
)
