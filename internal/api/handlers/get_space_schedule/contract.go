package get_space_schedule

import (
	"context"

	getSpaceSchedule "github.com/m04kA/SMC-ClubSpacesService/internal/usecase/get_space_schedule"
)

type GetSpaceScheduleUseCase interface {
	Execute(ctx context.Context, req *getSpaceSchedule.Request) (*getSpaceSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
