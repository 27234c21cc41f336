package bootstrap

import (
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
