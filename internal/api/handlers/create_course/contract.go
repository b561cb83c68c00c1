package create_course

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
)

type CourseService interface {
	Create(ctx context.Context, req *models.CreateCourseRequest) (*models.CourseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
