package ports

import (
	"time"

	"appraise/internal/core/domain/model/kernel"
	"appraise/internal/core/domain/model/order"
)

// OrderCreatedEvent is the snapshot of an order's public fields published
// after a new order has been committed.
type OrderCreatedEvent struct {
	OrderID     int64
	ClientID    int64
	CarAdURL    string
	CarLocation string
	CarPrice    kernel.Price
	DateCreated time.Time
}

// OrderStatusChangedEvent is published after a committed status transition.
type OrderStatusChangedEvent struct {
	OrderID     int64
	Status      order.Status
	AppraiserID *int64
}

// EventPublisher decouples event publication from the transition that produced
// it. Publication happens after the transaction commits; handlers run
// out-of-band and their failures never reach the triggering operation, so
// Publish methods do not return errors.
type EventPublisher interface {
	PublishOrderCreated(event OrderCreatedEvent)
	PublishOrderStatusChanged(event OrderStatusChangedEvent)
}
