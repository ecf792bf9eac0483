package queries

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrGetClientOrdersQueryIsNotConstructed = errors.New(
		"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
	)
)

// GetClientOrdersQuery retrieves all orders placed by one client.
type GetClientOrdersQuery struct { //nolint:recvcheck //using for validation
	clientID int64

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query for a client's orders.
func NewGetClientOrdersQuery(clientID int64) (GetClientOrdersQuery, error) {
	if clientID <= 0 {
		return GetClientOrdersQuery{}, errs.NewValueIsRequiredError("clientId")
	}

	return GetClientOrdersQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// ClientID returns the owning client's identifier.
func (q GetClientOrdersQuery) ClientID() int64 {
	return q.clientID
}
