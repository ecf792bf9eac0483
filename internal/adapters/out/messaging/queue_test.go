package messaging_test

import (
	"sync"
	"testing"

	"appraise/internal/adapters/out/messaging"
	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDrainOrderCreated(t *testing.T) {
	queue := messaging.NewQueue()

	queue.PublishOrderCreated(ports.OrderCreatedEvent{OrderID: 1})
	queue.PublishOrderCreated(ports.OrderCreatedEvent{OrderID: 2})

	events := queue.DrainOrderCreated()
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].OrderID)
	assert.Equal(t, int64(2), events[1].OrderID)

	assert.Empty(t, queue.DrainOrderCreated())
}

func TestQueueDrainOrderStatusChanged(t *testing.T) {
	queue := messaging.NewQueue()

	queue.PublishOrderStatusChanged(ports.OrderStatusChangedEvent{OrderID: 1, Status: order.Paid})

	events := queue.DrainOrderStatusChanged()
	require.Len(t, events, 1)
	assert.Equal(t, order.Paid, events[0].Status)

	assert.Empty(t, queue.DrainOrderStatusChanged())
}

func TestQueueConcurrentPublish(t *testing.T) {
	queue := messaging.NewQueue()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			queue.PublishOrderCreated(ports.OrderCreatedEvent{OrderID: id})
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Len(t, queue.DrainOrderCreated(), 100)
}
