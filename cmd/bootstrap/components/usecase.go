package components

import (
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCheckInUseCase,
		usecase.NewReportUseCase,
		usecase.NewTokenValidator,
	),
)
