package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Open ──────────────> Confirmed
//
//	PendingValidation ──┬──> Validated
//	                    └──> Rejected
//
// Cancellation is deletion while PendingValidation and therefore has no
// status of its own. Confirmed, Validated and Rejected have no outgoing
// transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open is the initial status of employee-created shipments.
	Open

	// PendingValidation is the initial status of customer-created shipments,
	// awaiting review by an agency employee.
	PendingValidation

	// Confirmed marks an employee shipment as closed for changes. No parcel
	// may be attached after confirmation.
	Confirmed

	// Validated marks a customer shipment as accepted by an employee.
	Validated

	// Rejected marks a customer shipment as refused, with a recorded reason.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Open:              "Open",
		PendingValidation: "PendingValidation",
		Confirmed:         "Confirmed",
		Validated:         "Validated",
		Rejected:          "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:              "Open",
		PendingValidation: "PendingValidation",
		Confirmed:         "Confirmed",
		Validated:         "Validated",
		Rejected:          "Rejected",
	}
}

// StatusFromString maps a wire value to a Status. Unrecognized values
// yield an error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions Open to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Open {
		return 0, errs.NewBusinessRuleViolationErrorWithCause(
			"shipment confirmation",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}
	return Confirmed, nil
}

// MarkValidated transitions PendingValidation to Validated.
func (s Status) MarkValidated() (Status, error) {
	if s != PendingValidation {
		return 0, errs.NewBusinessRuleViolationErrorWithCause(
			"shipment validation",
			fmt.Errorf("%s is not a valid status to validate", s.String()),
		)
	}
	return Validated, nil
}

// MarkRejected transitions PendingValidation to Rejected.
func (s Status) MarkRejected() (Status, error) {
	if s != PendingValidation {
		return 0, errs.NewBusinessRuleViolationErrorWithCause(
			"shipment rejection",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}
	return Rejected, nil
}

// AllowsParcelAttachment reports whether parcels may still be added.
// Confirmation is terminal with respect to parcel attachment, and rejected
// shipments never receive parcels.
func (s Status) AllowsParcelAttachment() bool {
	return s == Open || s == PendingValidation || s == Validated
}

// AllowsCustomerChanges reports whether the owning customer may still update
// or cancel the shipment. Only PendingValidation qualifies; any other status
// makes both operations a business error.
func (s Status) AllowsCustomerChanges() bool {
	return s == PendingValidation
}
