package commands

import (
	"context"

	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/ports"
)

// PayOrderCommandHandler moves an order from CREATED to PAID on behalf of its
// owning client and publishes a status-changed event after commit.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewPayOrderCommandHandler creates a handler for order payment operations.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the payment transition and persists it.
// Fails with ErrObjectNotFound for a missing order, ErrUnauthorized for a
// foreign client, and ErrInvalidState when the order is not in CREATED status.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
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
	paidOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = paidOrder.Pay(cmd.ClientID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, paidOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishOrderStatusChanged(ports.OrderStatusChangedEvent{
		OrderID:     paidOrder.ID(),
		Status:      paidOrder.Status(),
		AppraiserID: paidOrder.AppraiserID(),
	})

	return paidOrder, nil
}
