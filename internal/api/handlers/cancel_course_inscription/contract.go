package cancel_course_inscription

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
)

type CourseService interface {
	CancelInscription(ctx context.Context, courseID, inscriptionID int64) (*models.ActionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
