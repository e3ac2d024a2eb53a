package components

import (
	"log/slog"

	"calldesk-booking/internal/infra/readstore"
	"calldesk-booking/internal/infra/telephony"
	"calldesk-booking/internal/pkg/config"
	"calldesk-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	readstoreModule,
	gatewayModule,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(shared.ResourceDirectory)),
		),
	),
)

var gatewayModule = fx.Module("repository/gateway",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *telephony.TwilioGateway {
				return telephony.NewTwilioGateway(cfg.Telephony, logger)
			},
			fx.As(new(shared.Telephony)),
		),
	),
)
