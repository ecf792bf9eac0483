package commands

import (
	"context"

	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/ports"
)

// AssignOrderCommandHandler attaches an appraiser to an order already in
// ASSIGNED status and publishes a status-changed event after commit.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignOrderCommandHandler creates a handler for the assignment flow.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, overwrites the assignment and persists it.
// Fails with ErrInvalidState unless the order is in ASSIGNED status.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assignedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = assignedOrder.AssignTo(cmd.AppraiserID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishOrderStatusChanged(ports.OrderStatusChangedEvent{
		OrderID:     assignedOrder.ID(),
		Status:      assignedOrder.Status(),
		AppraiserID: assignedOrder.AppraiserID(),
	})

	return assignedOrder, nil
}
