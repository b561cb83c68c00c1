package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/metrics"
)

// Endpoint обработчик одного маршрута
type Endpoint interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers обработчики всех маршрутов API
type Handlers struct {
	// Площадки
	CreateSpace      Endpoint
	ListSpaces       Endpoint
	GetSpace         Endpoint
	UpdateSpace      Endpoint
	DeleteSpace      Endpoint
	GetSpaceSchedule Endpoint

	// Бронирования
	CreateReservation            Endpoint
	ListReservations             Endpoint
	GetReservation               Endpoint
	UpdateReservation            Endpoint
	CancelReservation            Endpoint
	CreateReservationInscription Endpoint
	CancelReservationInscription Endpoint

	// События
	CreateEvent            Endpoint
	GetEvent               Endpoint
	UpdateEvent            Endpoint
	CancelEvent            Endpoint
	CreateEventInscription Endpoint
	CancelEventInscription Endpoint

	// Курсы
	CreateCourse            Endpoint
	GetCourse               Endpoint
	PublishCourseSlots      Endpoint
	CreateCourseInscription Endpoint
	CancelCourseInscription Endpoint
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options настройки роутера. Metrics == nil выключает сбор HTTP метрик и /metrics
type Options struct {
	Metrics     *metrics.Metrics
	MetricsPath string
}

// NewRouter собирает роутер API
func NewRouter(h Handlers, opts Options, log Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", opts.MetricsPath)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (чтение без аутентификации)
	// ============================================================

	api.HandleFunc("/spaces", h.ListSpaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}", h.GetSpace.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}/schedule", h.GetSpaceSchedule.Handle).Methods(http.MethodGet)

	api.HandleFunc("/reservations", h.ListReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", h.GetReservation.Handle).Methods(http.MethodGet)

	api.HandleFunc("/events/{eventId}", h.GetEvent.Handle).Methods(http.MethodGet)

	api.HandleFunc("/courses/{courseId}", h.GetCourse.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Площадки ---
	protected.HandleFunc("/spaces", h.CreateSpace.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/spaces/{spaceId}", h.UpdateSpace.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/spaces/{spaceId}", h.DeleteSpace.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", h.CreateReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", h.UpdateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}", h.CancelReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId}/inscriptions",
		h.CreateReservationInscription.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/inscriptions/{inscriptionId}",
		h.CancelReservationInscription.Handle).Methods(http.MethodDelete)

	// --- События ---
	protected.HandleFunc("/events", h.CreateEvent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}", h.UpdateEvent.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/events/{eventId}", h.CancelEvent.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/events/{eventId}/inscriptions", h.CreateEventInscription.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}/inscriptions/{inscriptionId}",
		h.CancelEventInscription.Handle).Methods(http.MethodDelete)

	// --- Курсы ---
	protected.HandleFunc("/courses", h.CreateCourse.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courses/{courseId}/slots", h.PublishCourseSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courses/{courseId}/inscriptions", h.CreateCourseInscription.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courses/{courseId}/inscriptions/{inscriptionId}",
		h.CancelCourseInscription.Handle).Methods(http.MethodDelete)

	return r
}
