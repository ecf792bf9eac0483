package commands

import (
	"context"

	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/ports"
)

// CreateOrderCommandHandler handles order creation. The new order starts in
// CREATED status; after the transaction commits, an order-created event is
// published so appraisers get notified out-of-band.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle creates and persists the order, then publishes the creation event.
// Returns the persisted order with its storage-assigned identifier.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.ClientID(), cmd.CarAdURL(), cmd.CarLocation(), cmd.CarPrice())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishOrderCreated(ports.OrderCreatedEvent{
		OrderID:     newOrder.ID(),
		ClientID:    newOrder.ClientID(),
		CarAdURL:    newOrder.CarAdURL(),
		CarLocation: newOrder.CarLocation(),
		CarPrice:    newOrder.CarPrice(),
		DateCreated: newOrder.DateCreated(),
	})

	return newOrder, nil
}
