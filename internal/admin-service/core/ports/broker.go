package ports

import (
	"context"

	"fleet-admin/internal/admin-service/core/domain/dto"

	amqp "github.com/rabbitmq/amqp091-go"
)

type IEventBroker interface {
	PublishDriverEvent(ctx context.Context, event dto.DriverEvent) error
	ConsumeDriverEvents(ctx context.Context, consumerName string) (<-chan amqp.Delivery, error)
	IsAlive() bool
	Close() error
}
