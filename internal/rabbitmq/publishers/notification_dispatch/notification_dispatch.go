package notificationdispatch

import (
	"context"
	"encoding/json"
	e "orderping/internal/core/domain/errors"
	"orderping/internal/core/domain/logging"
	"orderping/internal/core/domain/reminder"
	"orderping/internal/rabbitmq"

	"github.com/rabbitmq/amqp091-go"
)

type dispatchMessage struct {
	NotificationID         string `json:"notificationId"`
	Title                  string `json:"title"`
	Body                   string `json:"body"`
	DesignerID             string `json:"designerId"`
	Priority               string `json:"priority"`
	OrderID                string `json:"orderId"`
	OriginalNotificationID string `json:"originalNotificationId"`
	ReminderNumber         int    `json:"reminderNumber"`
	Action                 string `json:"action"`
}

type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishDispatch(
	ctx context.Context,
	notificationID string,
	notification reminder.Notification,
) error {
	body, err := json.Marshal(dispatchMessage{
		NotificationID:         notificationID,
		Title:                  notification.Title,
		Body:                   notification.Body,
		DesignerID:             notification.DesignerID,
		Priority:               notification.Priority.String(),
		OrderID:                notification.Payload.OrderID,
		OriginalNotificationID: notification.Payload.OriginalNotificationID,
		ReminderNumber:         notification.Payload.ReminderNumber,
		Action:                 notification.Payload.Action,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		MessageId:   notificationID,
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("notificationID", notificationID),
	)
	return nil
}
