package ports

import "context"

// AppraiserNotifier delivers a free-text message about an order to every
// registered appraiser. Delivery is fire-and-forget: per-recipient failures
// are logged by the implementation and never surfaced; the returned error only
// reports a failure to resolve the recipient list.
type AppraiserNotifier interface {
	NotifyAppraisers(ctx context.Context, message string, orderID int64) error
}
