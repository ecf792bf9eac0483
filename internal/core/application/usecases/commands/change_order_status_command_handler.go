package commands

import (
	"context"

	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/ports"
)

// ChangeOrderStatusCommandHandler is the general transition entry point. The
// aggregate enforces ownership, assignment (including the claim of an
// unassigned order), the report-before-DONE guard and the transition table;
// the handler owns the transaction and event publication.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the requested transition and persists it,
// then publishes a status-changed event.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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
	changedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = changedOrder.ChangeStatus(cmd.NewStatus(), cmd.ActorID(), cmd.ActorRole()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, changedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishOrderStatusChanged(ports.OrderStatusChangedEvent{
		OrderID:     changedOrder.ID(),
		Status:      changedOrder.Status(),
		AppraiserID: changedOrder.AppraiserID(),
	})

	return changedOrder, nil
}
