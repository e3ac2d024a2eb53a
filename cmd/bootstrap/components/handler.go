package components

import (
	"calldesk-booking/internal/handler"
	"calldesk-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewSlotHandler,
		api.NewCallHandler,
		func(r *api.ResourceHandler, s *api.SlotHandler, c *api.CallHandler) handler.Handlers {
			return handler.Handlers{Resource: r, Slot: s, Call: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)
