// Package messaging provides an in-process event queue implementing the
// EventPublisher port. Commands enqueue events after their transaction
// commits; a background job drains the queue and runs the follow-up work
// out-of-band, so a slow or failing handler never affects the operation
// that produced the event.
package messaging

import (
	"sync"

	"appraise/internal/core/ports"
)

// Queue is a mutex-protected in-memory event buffer.
// Publish never blocks and never fails; events survive until drained.
type Queue struct {
	mu                 sync.Mutex
	orderCreated       []ports.OrderCreatedEvent
	orderStatusChanged []ports.OrderStatusChangedEvent
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// PublishOrderCreated enqueues an order-created event.
func (q *Queue) PublishOrderCreated(event ports.OrderCreatedEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.orderCreated = append(q.orderCreated, event)
}

// PublishOrderStatusChanged enqueues a status-changed event.
func (q *Queue) PublishOrderStatusChanged(event ports.OrderStatusChangedEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.orderStatusChanged = append(q.orderStatusChanged, event)
}

// DrainOrderCreated removes and returns all pending order-created events
// in publication order.
func (q *Queue) DrainOrderCreated() []ports.OrderCreatedEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.orderCreated
	q.orderCreated = nil
	return events
}

// DrainOrderStatusChanged removes and returns all pending status-changed
// events in publication order.
func (q *Queue) DrainOrderStatusChanged() []ports.OrderStatusChangedEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.orderStatusChanged
	q.orderStatusChanged = nil
	return events
}
