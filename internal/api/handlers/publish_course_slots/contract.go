package publish_course_slots

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
)

type CourseService interface {
	PublishWindows(ctx context.Context, courseID int64, req *models.PublishWindowsRequest) (*models.PublishWindowsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
