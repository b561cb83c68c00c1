package notifications

import (
	"context"
	"fmt"
	"time"
)

// AMQPNotifier публикует уведомления в RabbitMQ
type AMQPNotifier struct {
	publisher Publisher
	timeout   time.Duration
	log       Logger
}

// NewAMQPNotifier создает новый экземпляр notifier
func NewAMQPNotifier(publisher Publisher, timeout time.Duration, log Logger) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
		timeout:   timeout,
		log:       log,
	}
}

// Notify публикует уведомление с ключом маршрутизации по его типу
func (n *AMQPNotifier) Notify(ctx context.Context, msg Notification) error {
	if msg.Type == "" {
		return ErrInvalidNotification
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	if err := n.publisher.PublishJSON(ctx, string(msg.Type), msg); err != nil {
		return fmt.Errorf("%w: %s entity=%d: %v", ErrPublish, msg.Type, msg.EntityID, err)
	}

	n.log.Info("Notify: published %s entity=%d", msg.Type, msg.EntityID)
	return nil
}

// LogNotifier пишет уведомления в лог, когда брокер выключен в конфигурации
type LogNotifier struct {
	log Logger
}

// NewLogNotifier создает новый экземпляр notifier
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify логирует уведомление
func (n *LogNotifier) Notify(_ context.Context, msg Notification) error {
	if msg.Type == "" {
		return ErrInvalidNotification
	}

	n.log.Info("Notify: %s entity=%d space=%d member=%d %s",
		msg.Type, msg.EntityID, msg.SpaceID, msg.MemberID, msg.Message)
	return nil
}
