package commands

import (
	"errors"

	"appraise/internal/core/domain/model/kernel"
	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a client's request for a new appraisal order.
// It carries the advertisement URL, the car's location and its advertised price.
//
// Example:
//
//	price, _ := kernel.PriceFromString("50000.00")
//	cmd, err := NewCreateOrderCommand(clientID, "https://cars.example/ad/1", "Kyiv", price)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID    int64
	carAdURL    string
	carLocation string
	carPrice    kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new appraisal order.
// Validates that the client ID is set, the URL and location are non-empty,
// and the price is a constructed non-negative amount.
func NewCreateOrderCommand(clientID int64, carAdURL, carLocation string, carPrice kernel.Price) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setClientID(clientID),
		orderCommand.setCarAdURL(carAdURL),
		orderCommand.setCarLocation(carLocation),
		orderCommand.setCarPrice(carPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientID returns the owning client's identifier.
func (c CreateOrderCommand) ClientID() int64 {
	return c.clientID
}

// CarAdURL returns the advertisement URL.
func (c CreateOrderCommand) CarAdURL() string {
	return c.carAdURL
}

// CarLocation returns the car's location.
func (c CreateOrderCommand) CarLocation() string {
	return c.carLocation
}

// CarPrice returns the advertised price.
func (c CreateOrderCommand) CarPrice() kernel.Price {
	return c.carPrice
}

func (c *CreateOrderCommand) setClientID(clientID int64) error {
	if clientID <= 0 {
		return errs.NewValueIsRequiredError("clientId")
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setCarAdURL(carAdURL string) error {
	if carAdURL == "" {
		return errs.NewValueIsRequiredError("carAdUrl")
	}

	c.carAdURL = carAdURL
	return nil
}

func (c *CreateOrderCommand) setCarLocation(carLocation string) error {
	if carLocation == "" {
		return errs.NewValueIsRequiredError("carLocation")
	}

	c.carLocation = carLocation
	return nil
}

func (c *CreateOrderCommand) setCarPrice(carPrice kernel.Price) error {
	if err := carPrice.Validate(); err != nil {
		return err
	}

	c.carPrice = carPrice
	return nil
}
