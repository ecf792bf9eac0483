package queries

import (
	"errors"

	"appraise/internal/pkg/errs"
	"appraise/internal/pkg/guard"
)

var (
	ErrGetAppraiserOrdersQueryIsNotConstructed = errors.New(
		"GetAppraiserOrdersQuery must be created via NewGetAppraiserOrdersQuery constructor",
	)
)

// GetAppraiserOrdersQuery retrieves all orders assigned to one appraiser.
type GetAppraiserOrdersQuery struct { //nolint:recvcheck //using for validation
	appraiserID int64

	guard guard.ConstructorGuard
}

// NewGetAppraiserOrdersQuery creates a query for an appraiser's orders.
func NewGetAppraiserOrdersQuery(appraiserID int64) (GetAppraiserOrdersQuery, error) {
	if appraiserID <= 0 {
		return GetAppraiserOrdersQuery{}, errs.NewValueIsRequiredError("appraiserId")
	}

	return GetAppraiserOrdersQuery{
		appraiserID: appraiserID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAppraiserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAppraiserOrdersQueryIsNotConstructed)
}

// AppraiserID returns the assigned appraiser's identifier.
func (q GetAppraiserOrdersQuery) AppraiserID() int64 {
	return q.appraiserID
}
