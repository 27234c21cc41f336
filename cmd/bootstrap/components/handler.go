package components

import (
	"github.com/jmlivon/app-canchas-futbol/internal/handler"
	"github.com/jmlivon/app-canchas-futbol/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewFieldHandler,
	),
	fx.Invoke(handler.NewRouter),
)
