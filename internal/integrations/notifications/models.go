package notifications

import "time"

// Type тип уведомления, он же ключ маршрутизации
type Type string

const (
	ReservationCreated   Type = "reservation.created"
	ReservationUpdated   Type = "reservation.updated"
	ReservationCancelled Type = "reservation.cancelled"

	EventCreated   Type = "event.created"
	EventUpdated   Type = "event.updated"
	EventCancelled Type = "event.cancelled"

	InscriptionCreated   Type = "inscription.created"
	InscriptionCancelled Type = "inscription.cancelled"
)

// Notification сообщение для внешней службы доставки уведомлений
type Notification struct {
	Type     Type      `json:"type"`
	EntityID int64     `json:"entityId"`
	SpaceID  int64     `json:"spaceId,omitempty"`
	MemberID int64     `json:"memberId,omitempty"`
	ActorID  int64     `json:"actorId,omitempty"`
	Start    time.Time `json:"start,omitempty"`
	End      time.Time `json:"end,omitempty"`
	Message  string    `json:"message,omitempty"`
}
