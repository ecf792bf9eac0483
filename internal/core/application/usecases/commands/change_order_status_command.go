package commands

import (
	"errors"

	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an acting user with a known role.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	newStatus order.Status
	actorID   int64
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status transition command.
// The target status and the actor's role must be valid enum values.
func NewChangeOrderStatusCommand(orderID int64, newStatus order.Status, actorID int64, actorRole user.Role) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
		statusCommand.setActor(actorID, actorRole),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// ActorID returns the acting user's identifier.
func (c ChangeOrderStatusCommand) ActorID() int64 {
	return c.actorID
}

// ActorRole returns the acting user's role.
func (c ChangeOrderStatusCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actorID int64, actorRole user.Role) error {
	if actorID <= 0 {
		return errs.NewValueIsRequiredError("actorId")
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
