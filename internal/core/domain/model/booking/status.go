package booking

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of a booking.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Pending bookings wait for a provider.
	Pending
	// Assigned bookings wait for the provider to accept or reject.
	Assigned
	Confirmed
	InProgress
	// Completed bookings accept a single review. Terminal.
	Completed
	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Assigned:   "ASSIGNED",
		Confirmed:  "CONFIRMED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// ParseStatus converts the persisted/API form ("IN_PROGRESS") into a Status.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateCanHaveProvider checks that the provider field is consistent with
// the status: pending bookings have none, assigned and later ones have one.
func (s Status) ValidateCanHaveProvider(hasProvider bool) error {
	switch s {
	case Pending:
		if hasProvider {
			return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s booking cannot have a provider", s))
		}
	case Assigned, Confirmed, InProgress, Completed:
		if !hasProvider {
			return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s booking must have a provider", s))
		}
	case Unknown, Cancelled:
	}
	return nil
}

// Assign allows the first assignment and reassignment before acceptance.
func (s Status) Assign() (Status, error) {
	if s != Pending && s != Assigned {
		return Unknown, transitionError("assign", s)
	}
	return Assigned, nil
}

func (s Status) Accept() (Status, error) {
	if s != Assigned {
		return Unknown, transitionError("accept", s)
	}
	return Confirmed, nil
}

// Reject sends the booking back to the pool of unassigned bookings.
func (s Status) Reject() (Status, error) {
	if s != Assigned {
		return Unknown, transitionError("reject", s)
	}
	return Pending, nil
}

func (s Status) Start() (Status, error) {
	if s != Confirmed {
		return Unknown, transitionError("start", s)
	}
	return InProgress, nil
}

func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, transitionError("complete", s)
	}
	return Completed, nil
}

// NextProgress returns the single state a provider may move the booking to
// through a status update.
func (s Status) NextProgress() (Status, error) {
	switch s {
	case Confirmed:
		return InProgress, nil
	case InProgress:
		return Completed, nil
	default:
		return Unknown, errs.NewConflictError("status", fmt.Errorf("cannot update status from %s", s))
	}
}

func transitionError(action string, from Status) error {
	return errs.NewConflictError("status", fmt.Errorf("cannot %s a booking in status %s", action, from))
}
