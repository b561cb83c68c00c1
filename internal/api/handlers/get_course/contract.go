package get_course

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
)

type CourseService interface {
	GetByID(ctx context.Context, id int64) (*models.CourseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
