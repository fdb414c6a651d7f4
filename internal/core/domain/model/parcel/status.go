package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// Allowed transitions:
//
//	Registered ────> InTransit, InSorting
//	InTransit ─────> InSorting, OutForDelivery, Failed
//	InSorting ─────> InTransit, OutForDelivery
//	OutForDelivery > Delivered, Failed, InTransit
//	Delivered ─────  (terminal)
//	Failed ────────> Returned, InTransit
//	Returned ──────  (terminal)
//
// No other transitions are permitted, and a self-transition is always
// rejected even where the table would otherwise allow the target state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Registered is the initial status; the only status in which parcel
	// content may still be edited.
	Registered

	// InTransit means the parcel is moving between facilities.
	InTransit

	// InSorting means the parcel is at a sorting facility.
	InSorting

	// OutForDelivery means the parcel is on its final delivery leg.
	OutForDelivery

	// Delivered is a terminal success state.
	Delivered

	// Failed means a delivery attempt failed; recoverable.
	Failed

	// Returned is a terminal state after a failed delivery was sent back.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Registered:     "Registered",
		InTransit:      "InTransit",
		InSorting:      "InSorting",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Failed:         "Failed",
		Returned:       "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Registered:     "Registered",
		InTransit:      "InTransit",
		InSorting:      "InSorting",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Failed:         "Failed",
		Returned:       "Returned",
	}
}

// getAllowedTransitions returns the strict transition table. Absence of a
// target status means the transition is forbidden.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Registered:     {InTransit, InSorting},
		InTransit:      {InSorting, OutForDelivery, Failed},
		InSorting:      {InTransit, OutForDelivery},
		OutForDelivery: {Delivered, Failed, InTransit},
		Delivered:      {},
		Failed:         {Returned, InTransit},
		Returned:       {},
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

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned
}

// ValidateTransitionTo checks the requested transition against the table.
// Self-transitions are always a business rule violation, terminal states
// refuse every transition, and everything else must appear in the table.
func (s Status) ValidateTransitionTo(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if s == to {
		return errs.NewBusinessRuleViolationErrorWithCause(
			"parcel status transition",
			fmt.Errorf("parcel is already %s", s.String()),
		)
	}

	if s.IsTerminal() {
		return errs.NewBusinessRuleViolationErrorWithCause(
			"parcel status transition",
			fmt.Errorf("%s is terminal", s.String()),
		)
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == to {
			return nil
		}
	}

	return errs.NewBusinessRuleViolationErrorWithCause(
		"parcel status transition",
		fmt.Errorf("%s cannot transition to %s", s.String(), to.String()),
	)
}
