package bootstrap

import (
	"calldesk-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		func() (config.Config, error) {
			return config.LoadConfig()
		},
	),
)
