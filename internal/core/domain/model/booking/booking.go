package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddressIsRequired       = errs.NewValueIsRequiredError("address")
	ErrScheduledDateIsRequired = errs.NewValueIsRequiredError("scheduled_date")
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking")
	ErrReviewAlreadySubmitted  = errors.New("review already submitted")
	ErrBookingNotCompleted     = errors.New("booking is not completed")
)

// Booking is the aggregate root of a single service request. It owns its
// lifecycle status, the assigned provider and at most one review.
//
// Invariants:
//   - status only changes through the transition methods
//   - only the assigned provider may accept, reject, start or complete it;
//     anyone else gets a not-found error so existence is not revealed
//   - a review is accepted once, from the customer, after completion
type Booking struct {
	id            kernel.UUID
	customerID    kernel.UUID
	serviceID     kernel.UUID
	providerID    *kernel.UUID
	address       string
	scheduledDate time.Time
	timeSlot      TimeSlot
	status        Status
	createdAt     time.Time
	review        *Review
	version       int64
	events        []Event
	guard         guard.ConstructorGuard
}

// NewBooking creates a PENDING booking. When the customer pre-selects a
// provider the booking is immediately assigned to them and the provider is
// notified, exactly as if an admin had assigned it.
//
// The caller checks that provider has the PROVIDER role and that the service
// exists; the aggregate cannot see other aggregates.
func NewBooking(
	id, customerID, serviceID kernel.UUID,
	provider *kernel.UUID,
	address string,
	scheduledDate time.Time,
	slot TimeSlot,
	createdAt time.Time,
) (*Booking, error) {
	b := &Booking{
		status:    Pending,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomer(customerID),
		b.setService(serviceID),
		b.setAddress(address),
		b.setScheduledDate(scheduledDate),
		b.setTimeSlot(slot),
	); err != nil {
		return nil, err
	}

	if provider != nil {
		if err := b.assign(*provider, EventRequested, fmt.Sprintf("New booking request (#%s)", b.id)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// RestoreBooking rebuilds a booking from storage. No events are raised.
func RestoreBooking(
	id, customerID, serviceID kernel.UUID,
	provider *kernel.UUID,
	address string,
	scheduledDate time.Time,
	slot TimeSlot,
	status Status,
	createdAt time.Time,
	review *Review,
	version int64,
) (*Booking, error) {
	b := &Booking{
		providerID: provider,
		createdAt:  createdAt.UTC(),
		review:     review,
		version:    version,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomer(customerID),
		b.setService(serviceID),
		b.setAddress(address),
		b.setScheduledDate(scheduledDate),
		b.setTimeSlot(slot),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

func (b *Booking) ID() kernel.UUID          { return b.id }
func (b *Booking) CustomerID() kernel.UUID  { return b.customerID }
func (b *Booking) ServiceID() kernel.UUID   { return b.serviceID }
func (b *Booking) Address() string          { return b.address }
func (b *Booking) ScheduledDate() time.Time { return b.scheduledDate }
func (b *Booking) TimeSlot() TimeSlot       { return b.timeSlot }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) Review() *Review          { return b.review }

// Version is the optimistic-concurrency version observed when the booking was loaded.
func (b *Booking) Version() int64 { return b.version }

// Provider returns the assigned provider or nil.
func (b *Booking) Provider() *kernel.UUID {
	if b.providerID == nil {
		return nil
	}
	id := *b.providerID
	return &id
}

// Assign gives the booking to a provider (admin path). Reassigning an
// ASSIGNED booking replaces the previous provider.
func (b *Booking) Assign(providerID kernel.UUID) error {
	return b.assign(providerID, EventAssigned, fmt.Sprintf("New booking assigned (#%s)", b.id))
}

// Accept confirms the booking on behalf of the assigned provider.
func (b *Booking) Accept(actor kernel.UUID) error {
	if err := b.requireProvider(actor); err != nil {
		return err
	}
	next, err := b.status.Accept()
	if err != nil {
		return err
	}

	b.status = next
	b.raise(EventAccepted, b.customerID, "Your booking has been accepted")
	return nil
}

// Reject returns the booking to PENDING and clears the provider.
func (b *Booking) Reject(actor kernel.UUID) error {
	if err := b.requireProvider(actor); err != nil {
		return err
	}
	next, err := b.status.Reject()
	if err != nil {
		return err
	}

	b.status = next
	b.providerID = nil
	b.raise(EventRejected, b.customerID, "Your booking was rejected")
	return nil
}

func (b *Booking) Start(actor kernel.UUID) error {
	if err := b.requireProvider(actor); err != nil {
		return err
	}
	next, err := b.status.Start()
	if err != nil {
		return err
	}

	b.status = next
	b.raise(EventStarted, b.customerID, fmt.Sprintf("Work on booking #%s has started", b.id))
	return nil
}

func (b *Booking) Complete(actor kernel.UUID) error {
	if err := b.requireProvider(actor); err != nil {
		return err
	}
	next, err := b.status.Complete()
	if err != nil {
		return err
	}

	b.status = next
	b.raise(EventCompleted, b.customerID, fmt.Sprintf("Booking #%s completed. Please leave a review.", b.id))
	return nil
}

// AdvanceTo applies a provider status update. target must be the one state
// reachable from the current status; anything else is rejected naming the
// allowed state.
func (b *Booking) AdvanceTo(actor kernel.UUID, target Status) error {
	if err := b.requireProvider(actor); err != nil {
		return err
	}
	allowed, err := b.status.NextProgress()
	if err != nil {
		return err
	}
	if target != allowed {
		return errs.NewConflictError("status", fmt.Errorf("invalid transition, allowed: %s", allowed))
	}

	if allowed == InProgress {
		return b.Start(actor)
	}
	return b.Complete(actor)
}

// SubmitReview attaches the customer's review. A booking that is not the
// author's is reported as not found.
func (b *Booking) SubmitReview(reviewID, author kernel.UUID, rating int, comment string, now time.Time) error {
	if !b.customerID.IsEqual(author) {
		return errs.NewObjectNotFoundError("booking", b.id)
	}
	if b.status != Completed {
		return errs.NewConflictError("review", ErrBookingNotCompleted)
	}
	if b.review != nil {
		return errs.NewConflictError("review", ErrReviewAlreadySubmitted)
	}

	review, err := NewReview(reviewID, author, rating, comment, now)
	if err != nil {
		return err
	}
	b.review = review
	return nil
}

// PullEvents returns the events raised since the last call and forgets them.
func (b *Booking) PullEvents() []Event {
	events := b.events
	b.events = nil
	return events
}

func (b *Booking) assign(providerID kernel.UUID, kind EventKind, message string) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("provider", err)
	}
	next, err := b.status.Assign()
	if err != nil {
		return err
	}

	b.status = next
	b.providerID = &providerID
	b.raise(kind, providerID, message)
	return nil
}

func (b *Booking) requireProvider(actor kernel.UUID) error {
	if b.providerID == nil || !b.providerID.IsEqual(actor) {
		return errs.NewObjectNotFoundError("booking", b.id)
	}
	return nil
}

func (b *Booking) raise(kind EventKind, recipient kernel.UUID, message string) {
	b.events = append(b.events, Event{
		Kind:      kind,
		BookingID: b.id,
		Recipient: recipient,
		Message:   message,
	})
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	b.customerID = customerID
	return nil
}

func (b *Booking) setService(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service", err)
	}
	b.serviceID = serviceID
	return nil
}

func (b *Booking) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	b.address = address
	return nil
}

func (b *Booking) setScheduledDate(date time.Time) error {
	if date.IsZero() {
		return ErrScheduledDateIsRequired
	}
	y, m, d := date.Date()
	b.scheduledDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}

func (b *Booking) setTimeSlot(slot TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	b.timeSlot = slot
	return nil
}

func (b *Booking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveProvider(b.providerID != nil); err != nil {
		return err
	}
	b.status = status
	return nil
}
