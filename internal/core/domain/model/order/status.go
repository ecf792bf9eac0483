package order

import (
	"fmt"

	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"
)

// Status represents the lifecycle state of an appraisal order.
//
// State transitions:
//
//	CREATED -> PAID -> APPRAISOR_SEARCH -> ASSIGNED -> IN_PROGRESS -> DONE
//	                                                              \-> COMPLETION_FAILURE
//
// DONE and COMPLETION_FAILURE are final. The transition table is enforced by
// CanChangeTo; the out-of-band appraiser-search advance goes through StartSearch.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status of a freshly placed order.
	Created

	// Paid means the client has paid for the appraisal.
	Paid

	// AppraiserSearch means appraisers have been notified and the order is
	// waiting to be claimed. The wire token keeps the historical spelling
	// APPRAISOR_SEARCH.
	AppraiserSearch

	// Assigned means an appraiser has been attached to the order.
	Assigned

	// InProgress means the assigned appraiser is working on the appraisal.
	InProgress

	// Done is the successful final state; it requires an attached report.
	Done

	// CompletionFailure is the unsuccessful final state.
	CompletionFailure
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Created:           "CREATED",
		Paid:              "PAID",
		AppraiserSearch:   "APPRAISOR_SEARCH",
		Assigned:          "ASSIGNED",
		InProgress:        "IN_PROGRESS",
		Done:              "DONE",
		CompletionFailure: "COMPLETION_FAILURE",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:           "CREATED",
		Paid:              "PAID",
		AppraiserSearch:   "APPRAISOR_SEARCH",
		Assigned:          "ASSIGNED",
		InProgress:        "IN_PROGRESS",
		Done:              "DONE",
		CompletionFailure: "COMPLETION_FAILURE",
	}
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire token of the status, e.g. "APPRAISOR_SEARCH".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire token into a Status.
func StatusFromString(s string) (Status, error) {
	for status, token := range getValidStatusStrings() {
		if token == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Done || s == CompletionFailure
}

// CanChangeTo enforces the general transition table, keyed by the current
// status and the acting role. It is a literal port of the upstream rules,
// including the ASSIGNED row: a non-appraiser requesting IN_PROGRESS from
// ASSIGNED is not rejected by that clause.
// TODO: confirm whether ASSIGNED -> IN_PROGRESS should be appraiser-only; the
// current guard only rejects non-appraisers asking for something other than
// IN_PROGRESS.
func (s Status) CanChangeTo(next Status, role user.Role) error {
	switch s {
	case Created:
		if next != Paid {
			return errs.NewInvalidStateError("order in CREATED status can only transition to PAID")
		}
	case Paid:
		if next != AppraiserSearch {
			return errs.NewInvalidStateError("order in PAID status can only transition to APPRAISOR_SEARCH")
		}
	case AppraiserSearch:
		if next != Assigned {
			return errs.NewInvalidStateError("order in APPRAISOR_SEARCH status can only transition to ASSIGNED")
		}
	case Assigned:
		if next != InProgress && role != user.Appraiser {
			return errs.NewInvalidStateError("only appraiser can transition from ASSIGNED to IN_PROGRESS")
		}
	case InProgress:
		if next != Done && next != CompletionFailure {
			return errs.NewInvalidStateError("order in IN_PROGRESS status can only transition to DONE or COMPLETION_FAILURE")
		}
		if role != user.Appraiser {
			return errs.NewInvalidStateError("only appraiser can transition from IN_PROGRESS")
		}
	case Done, CompletionFailure:
		return errs.NewInvalidStateError("order in final state cannot be changed")
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}

	return nil
}

// StartSearch transitions to AppraiserSearch for the out-of-band advance that
// follows the order-created notification. Valid from Created or Paid only, so
// the asynchronous handler can never pull an order back from a later state.
func (s Status) StartSearch() (Status, error) {
	if s != Created && s != Paid {
		return 0, errs.NewInvalidStateErrorWithCause(
			"appraiser search can only start from CREATED or PAID",
			fmt.Errorf("current status is %s", s.String()),
		)
	}

	return AppraiserSearch, nil
}
