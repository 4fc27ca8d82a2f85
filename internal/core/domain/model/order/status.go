package order

import (
	"foodbank/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved ──┬──> Released ──> Completed
//	          │               └──────────────> Completed
//	          ├──> Released / Completed   (daily sweep)
//	          ├──> Rejected               (staff decision)
//	          └──> Canceled               (partner withdrawal)
//
// Canceled and Rejected are dead ends. Released and Completed are only
// reached through staff approval plus the time-based sweep; no direct user
// action produces them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every partner submission.
	// Only Pending orders can be decided on or edited.
	Pending

	// Approved indicates staff accepted the order for fulfillment.
	Approved

	// Released indicates the pickup is within three days and the order has
	// been handed to fulfillment staff. Set by the daily sweep.
	Released

	// Completed indicates the pickup time has passed. Set by the daily sweep.
	Completed

	// Canceled indicates the partner withdrew the order before a decision.
	Canceled

	// Rejected indicates staff declined the order.
	Rejected
)

// Active statuses occupy a pickup slot and are visited by the daily sweep.
// They are deliberately contiguous (1..3) so persistence can express the
// slot-uniqueness constraint as a range over the stored integer.

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "PENDING",
		Approved:  "APPROVED",
		Released:  "RELEASED",
		Completed: "COMPLETED",
		Canceled:  "CANCELED",
		Rejected:  "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Approved:  "APPROVED",
		Released:  "RELEASED",
		Completed: "COMPLETED",
		Canceled:  "CANCELED",
		Rejected:  "REJECTED",
	}
}

// Validate checks if the Status value is one of the six valid states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from persistence or parsing statuses from external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewStateIsInvalidError(s.String(), "exist"))
	}
	return nil
}

// String returns the wire name of the status ("PENDING", "APPROVED", ...).
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the order still occupies its pickup slot and is
// subject to the daily sweep: Pending, Approved, or Released.
func (s Status) IsActive() bool {
	return s == Pending || s == Approved || s == Released
}

// IsAccepted reports whether the order belongs on a pick sheet:
// Approved, Released, or Completed.
func (s Status) IsAccepted() bool {
	return s == Approved || s == Released || s == Completed
}

// Approve transitions the status to Approved. Only Pending orders can be
// approved; anything else returns a StateIsInvalidError.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidError(s.String(), "approve")
	}

	return Approved, nil
}

// Reject transitions the status to Rejected. Only Pending orders can be
// rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidError(s.String(), "reject")
	}

	return Rejected, nil
}

// Cancel transitions the status to Canceled. Only Pending orders can be
// canceled by the partner.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidError(s.String(), "cancel")
	}

	return Canceled, nil
}

// Modify validates that field changes may be applied. Orders are editable
// only while Pending; the status itself does not change.
func (s Status) Modify() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidError(s.String(), "modify")
	}

	return Pending, nil
}

// Release transitions the status to Released. Used by the daily sweep for
// orders whose pickup is within the release window. Releasing an already
// Released order is invalid; the sweep checks IsActive first.
func (s Status) Release() (Status, error) {
	if s != Pending && s != Approved {
		return 0, errs.NewStateIsInvalidError(s.String(), "release")
	}

	return Released, nil
}

// Complete transitions the status to Completed. Used by the daily sweep for
// orders whose pickup time has passed.
func (s Status) Complete() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewStateIsInvalidError(s.String(), "complete")
	}

	return Completed, nil
}
