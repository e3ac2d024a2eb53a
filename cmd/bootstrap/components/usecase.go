package components

import (
	"log/slog"

	"calldesk-booking/internal/domain/reservation"
	"calldesk-booking/internal/pkg/clock"
	"calldesk-booking/internal/pkg/config"
	"calldesk-booking/internal/pkg/metrics"
	"calldesk-booking/internal/usecase/commands"
	"calldesk-booking/internal/usecase/queries"
	"calldesk-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *reservation.Factory {
		return reservation.NewFactory(clk, cfg.Booking.DefaultRegion)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewCallUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		func(directory shared.ResourceDirectory, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) queries.SlotQueries {
			return queries.NewSlotQueries(directory, cfg, m, logger)
		},
	),
)
