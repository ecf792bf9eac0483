package commands

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
)

// AssignOrderCommand represents the unconditional assignment flow: attach an
// appraiser to an order that is already in ASSIGNED status, overwriting any
// previous assignment. The role-aware claim path lives in ChangeOrderStatus
// and has different preconditions; the two are deliberately separate.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	appraiserID int64

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to an appraiser.
func NewAssignOrderCommand(orderID, appraiserID int64) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setAppraiserID(appraiserID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() int64 {
	return c.orderID
}

// AppraiserID returns the identifier of the appraiser to attach.
func (c AssignOrderCommand) AppraiserID() int64 {
	return c.appraiserID
}

func (c *AssignOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setAppraiserID(appraiserID int64) error {
	if appraiserID <= 0 {
		return errs.NewValueIsRequiredError("appraiserId")
	}

	c.appraiserID = appraiserID
	return nil
}
