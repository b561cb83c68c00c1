package create_course_inscription

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
)

type CourseService interface {
	Inscribe(ctx context.Context, courseID int64, req *models.InscribeRequest) (*models.InscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
