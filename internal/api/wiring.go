package api

import (
	cancelCourseInscriptionHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/cancel_course_inscription"
	cancelEventHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/cancel_event"
	cancelEventInscriptionHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/cancel_event_inscription"
	cancelReservationHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/cancel_reservation"
	cancelReservationInscriptionHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/cancel_reservation_inscription"
	createCourseHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/create_course"
	createCourseInscriptionHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/create_course_inscription"
	createEventHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/create_event"
	createEventInscriptionHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/create_event_inscription"
	createReservationHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/create_reservation"
	createReservationInscriptionHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/create_reservation_inscription"
	createSpaceHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/create_space"
	deleteSpaceHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/delete_space"
	getCourseHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/get_course"
	getEventHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/get_event"
	getReservationHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/get_reservation"
	getSpaceHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/get_space"
	getSpaceScheduleHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/get_space_schedule"
	listReservationsHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/list_reservations"
	listSpacesHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/list_spaces"
	publishCourseSlotsHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/publish_course_slots"
	updateEventHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/update_event"
	updateReservationHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/update_reservation"
	updateSpaceHandler "github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers/update_space"
	coursesService "github.com/m04kA/SMC-ClubSpacesService/internal/service/courses"
	eventsService "github.com/m04kA/SMC-ClubSpacesService/internal/service/events"
	reservationsService "github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations"
	spacesService "github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces"
	getSpaceScheduleUC "github.com/m04kA/SMC-ClubSpacesService/internal/usecase/get_space_schedule"
)

// Services сервисы и use cases, которые обслуживают HTTP слой
type Services struct {
	Spaces       *spacesService.Service
	Schedule     *getSpaceScheduleUC.UseCase
	Reservations *reservationsService.Service
	Events       *eventsService.Service
	Courses      *coursesService.Service
}

// HandlerLogger логгер обработчиков
type HandlerLogger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewHandlers создает обработчики всех маршрутов
func NewHandlers(s Services, log HandlerLogger) Handlers {
	return Handlers{
		CreateSpace:      createSpaceHandler.NewHandler(s.Spaces, log),
		ListSpaces:       listSpacesHandler.NewHandler(s.Spaces, log),
		GetSpace:         getSpaceHandler.NewHandler(s.Spaces, log),
		UpdateSpace:      updateSpaceHandler.NewHandler(s.Spaces, log),
		DeleteSpace:      deleteSpaceHandler.NewHandler(s.Spaces, log),
		GetSpaceSchedule: getSpaceScheduleHandler.NewHandler(s.Schedule, log),

		CreateReservation:            createReservationHandler.NewHandler(s.Reservations, log),
		ListReservations:             listReservationsHandler.NewHandler(s.Reservations, log),
		GetReservation:               getReservationHandler.NewHandler(s.Reservations, log),
		UpdateReservation:            updateReservationHandler.NewHandler(s.Reservations, log),
		CancelReservation:            cancelReservationHandler.NewHandler(s.Reservations, log),
		CreateReservationInscription: createReservationInscriptionHandler.NewHandler(s.Reservations, log),
		CancelReservationInscription: cancelReservationInscriptionHandler.NewHandler(s.Reservations, log),

		CreateEvent:            createEventHandler.NewHandler(s.Events, log),
		GetEvent:               getEventHandler.NewHandler(s.Events, log),
		UpdateEvent:            updateEventHandler.NewHandler(s.Events, log),
		CancelEvent:            cancelEventHandler.NewHandler(s.Events, log),
		CreateEventInscription: createEventInscriptionHandler.NewHandler(s.Events, log),
		CancelEventInscription: cancelEventInscriptionHandler.NewHandler(s.Events, log),

		CreateCourse:            createCourseHandler.NewHandler(s.Courses, log),
		GetCourse:               getCourseHandler.NewHandler(s.Courses, log),
		PublishCourseSlots:      publishCourseSlotsHandler.NewHandler(s.Courses, log),
		CreateCourseInscription: createCourseInscriptionHandler.NewHandler(s.Courses, log),
		CancelCourseInscription: cancelCourseInscriptionHandler.NewHandler(s.Courses, log),
	}
}
