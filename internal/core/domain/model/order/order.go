package order

import (
	"errors"
	"time"

	"appraise/internal/core/domain/model/kernel"
	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadySet is returned when SetID is called on a persisted order.
	ErrOrderIDAlreadySet = errors.New("order ID has already been assigned")
)

// Order is the aggregate root for one car-appraisal request. It owns the
// lifecycle state machine and the authorization rules around it.
//
// Invariants maintained through the validated methods:
//   - status is always one of the defined states
//   - appraiserID is set for every state from ASSIGNED onward and nil before
//   - status DONE implies reportID is set
//   - reportID is set exactly once and never cleared
type Order struct {
	// id is assigned by storage on first persist; zero until then.
	id int64

	// clientID is the owning client.
	clientID int64

	// appraiserID is the assigned appraiser (nil until assignment).
	appraiserID *int64

	carAdURL    string
	carLocation string
	carPrice    kernel.Price

	// dateCreated is the business creation time of the request.
	dateCreated time.Time

	status Status

	// reportID references the attached report (nil until completion).
	reportID *int64

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an Order in CREATED status for the given client.
// The car ad URL and location must be non-empty and the price non-negative;
// the boundary layer validates request shape, but the aggregate rejects
// malformed primitives itself.
func NewOrder(clientID int64, carAdURL, carLocation string, carPrice kernel.Price) (*Order, error) {
	if clientID <= 0 {
		return nil, errs.NewValueIsRequiredError("clientId")
	}
	if carAdURL == "" {
		return nil, errs.NewValueIsRequiredError("carAdUrl")
	}
	if carLocation == "" {
		return nil, errs.NewValueIsRequiredError("carLocation")
	}
	if err := carPrice.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Order{
		clientID:      clientID,
		carAdURL:      carAdURL,
		carLocation:   carLocation,
		carPrice:      carPrice,
		dateCreated:   now,
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
// It validates the stored status and the status/appraiser consistency so a
// corrupted row cannot become a live aggregate.
func RestoreOrder(
	id, clientID int64,
	appraiserID *int64,
	carAdURL, carLocation string,
	carPrice kernel.Price,
	dateCreated time.Time,
	status Status,
	reportID *int64,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if clientID <= 0 {
		return nil, errs.NewValueIsRequiredError("clientId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := carPrice.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		appraiserID:   appraiserID,
		carAdURL:      carAdURL,
		carLocation:   carLocation,
		carPrice:      carPrice,
		dateCreated:   dateCreated,
		status:        status,
		reportID:      reportID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// SetID records the storage-assigned identifier. It may be called exactly once.
func (o *Order) SetID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's identifier (zero before first persist).
func (o *Order) ID() int64 { return o.id }

// ClientID returns the owning client's identifier.
func (o *Order) ClientID() int64 { return o.clientID }

// AppraiserID returns the assigned appraiser's identifier, or nil.
func (o *Order) AppraiserID() *int64 { return o.appraiserID }

// CarAdURL returns the advertisement URL of the car to appraise.
func (o *Order) CarAdURL() string { return o.carAdURL }

// CarLocation returns where the car is located.
func (o *Order) CarLocation() string { return o.carLocation }

// CarPrice returns the advertised price.
func (o *Order) CarPrice() kernel.Price { return o.carPrice }

// DateCreated returns the business creation time.
func (o *Order) DateCreated() time.Time { return o.dateCreated }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// ReportID returns the attached report's identifier, or nil.
func (o *Order) ReportID() *int64 { return o.reportID }

// CreatedAt returns the row creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last-modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Pay moves the order from CREATED to PAID on behalf of the owning client.
func (o *Order) Pay(clientID int64) error {
	if err := o.validateClientOwnership(clientID); err != nil {
		return err
	}
	if o.status != Created {
		return errs.NewInvalidStateError("order can only be paid when status is CREATED")
	}

	o.status = Paid
	o.touch()
	return nil
}

// ChangeStatus is the general transition entry point. It enforces ownership for
// clients, assignment for appraisers (including the claim of an unassigned
// order when requesting ASSIGNED), the report-before-DONE guard, and the
// transition table.
func (o *Order) ChangeStatus(next Status, actorID int64, role user.Role) error {
	if err := next.Validate(); err != nil {
		return err
	}

	switch role {
	case user.Client:
		if err := o.validateClientOwnership(actorID); err != nil {
			return err
		}
	case user.Appraiser:
		if next == Assigned && o.appraiserID == nil {
			id := actorID
			o.appraiserID = &id
		} else if o.appraiserID == nil || *o.appraiserID != actorID {
			return errs.NewUnauthorizedError("appraiser is not assigned to this order")
		}
	default:
		return errs.NewValueIsInvalidError("role")
	}

	if next == Done && o.reportID == nil {
		return errs.NewInvalidStateError("order status cannot be changed to DONE: report must be attached first")
	}

	if err := o.status.CanChangeTo(next, role); err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// StartAppraiserSearch advances the order to APPRAISOR_SEARCH. This is the
// guarded path used by the order-created event handler; it only succeeds from
// CREATED or PAID, so the out-of-band advance cannot rewind a later state.
func (o *Order) StartAppraiserSearch() error {
	next, err := o.status.StartSearch()
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// AssignTo unconditionally attaches an appraiser to an order already in
// ASSIGNED status. This is the separate assignment flow; the role-aware claim
// lives in ChangeStatus and has different preconditions.
func (o *Order) AssignTo(appraiserID int64) error {
	if appraiserID <= 0 {
		return errs.NewValueIsRequiredError("appraiserId")
	}
	if o.status != Assigned {
		return errs.NewInvalidStateError("order can only be assigned when status is ASSIGNED")
	}

	o.appraiserID = &appraiserID
	o.touch()
	return nil
}

// CanAcceptReport checks that the requesting appraiser is the one assigned and
// that the order is IN_PROGRESS, without mutating anything.
func (o *Order) CanAcceptReport(appraiserID int64) error {
	if o.appraiserID == nil || *o.appraiserID != appraiserID {
		return errs.NewUnauthorizedError("appraiser is not assigned to this order")
	}
	if o.status != InProgress {
		return errs.NewInvalidStateError("report can only be added when order status is IN_PROGRESS")
	}

	return nil
}

// CompleteWithReport attaches the persisted report and moves the order to DONE.
// This is the only path to DONE that carries its own report precondition; it
// does not go through ChangeStatus.
func (o *Order) CompleteWithReport(reportID int64) error {
	if reportID <= 0 {
		return errs.NewValueIsRequiredError("reportId")
	}
	if o.status != InProgress {
		return errs.NewInvalidStateError("report can only be added when order status is IN_PROGRESS")
	}

	id := reportID
	o.reportID = &id
	o.status = Done
	o.touch()
	return nil
}

func (o *Order) validateClientOwnership(clientID int64) error {
	if o.clientID != clientID {
		return errs.NewUnauthorizedError("user is not authorized to access this order")
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
}
