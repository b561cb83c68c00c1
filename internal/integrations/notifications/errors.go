package notifications

import "errors"

var (
	// ErrPublish возвращается, когда брокер не принял уведомление
	ErrPublish = errors.New("notifications: failed to publish")

	// ErrInvalidNotification возвращается для уведомления без типа
	ErrInvalidNotification = errors.New("notifications: notification type is required")
)
