package commands

import (
	"context"
)

// StartAppraiserSearchCommandHandler applies the out-of-band advance to
// APPRAISOR_SEARCH that follows an order-created notification. The advance
// goes through the guarded StartAppraiserSearch path, so it fails with
// ErrInvalidState when the order has already moved past PAID; the caller
// treats that as an expected race, not a failure. No event is published for
// this transition, so the dispatch job cannot feed itself.
type StartAppraiserSearchCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartAppraiserSearchCommandHandler creates a handler for the search advance.
func NewStartAppraiserSearchCommandHandler(uowFactory OrderUoWFactory) StartAppraiserSearchCommandHandler {
	return StartAppraiserSearchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, advances it to APPRAISOR_SEARCH and persists it.
func (h StartAppraiserSearchCommandHandler) Handle(ctx context.Context, cmd StartAppraiserSearchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	searchOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = searchOrder.StartAppraiserSearch(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, searchOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
