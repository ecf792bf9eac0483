package commands

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrStartAppraiserSearchCommandIsNotConstructed = errors.New(
		"StartAppraiserSearchCommand must be created via NewStartAppraiserSearchCommand constructor",
	)
)

// StartAppraiserSearchCommand advances an order to APPRAISOR_SEARCH. It is
// issued by the order-created event job after appraisers have been notified,
// never directly by a caller.
type StartAppraiserSearchCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewStartAppraiserSearchCommand creates a command to start the appraiser search.
func NewStartAppraiserSearchCommand(orderID int64) (StartAppraiserSearchCommand, error) {
	searchCommand := StartAppraiserSearchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := searchCommand.setOrderID(orderID); err != nil {
		return StartAppraiserSearchCommand{}, err
	}

	return searchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartAppraiserSearchCommand) Validate() error {
	return c.guard.Validate(ErrStartAppraiserSearchCommandIsNotConstructed)
}

// OrderID returns the identifier of the order entering appraiser search.
func (c StartAppraiserSearchCommand) OrderID() int64 {
	return c.orderID
}

func (c *StartAppraiserSearchCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}
