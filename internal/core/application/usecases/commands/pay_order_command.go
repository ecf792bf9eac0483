package commands

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
)

// PayOrderCommand represents the owning client paying for an order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	clientID int64

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay an order on behalf of a client.
func NewPayOrderCommand(orderID, clientID int64) (PayOrderCommand, error) {
	payCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payCommand.setOrderID(orderID),
		payCommand.setClientID(clientID),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return payCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c PayOrderCommand) OrderID() int64 {
	return c.orderID
}

// ClientID returns the identifier of the paying client.
func (c PayOrderCommand) ClientID() int64 {
	return c.clientID
}

func (c *PayOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setClientID(clientID int64) error {
	if clientID <= 0 {
		return errs.NewValueIsRequiredError("clientId")
	}

	c.clientID = clientID
	return nil
}
