package booking

import "marketplace/internal/core/domain/model/kernel"

// EventKind names the transition that produced an Event.
type EventKind string

const (
	EventRequested EventKind = "booking.requested"
	EventAssigned  EventKind = "booking.assigned"
	EventAccepted  EventKind = "booking.accepted"
	EventRejected  EventKind = "booking.rejected"
	EventStarted   EventKind = "booking.started"
	EventCompleted EventKind = "booking.completed"
)

// Event is a notification owed to Recipient because of a transition.
type Event struct {
	Kind      EventKind
	BookingID kernel.UUID
	Recipient kernel.UUID
	Message   string
}
