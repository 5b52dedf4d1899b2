// Package booking implements the booking aggregate: the lifecycle state
// machine, provider assignment and the review gate.
//
// Lifecycle:
//
//	(new) ──> PENDING ──assign──> ASSIGNED ──accept──> CONFIRMED ──start──> IN_PROGRESS ──complete──> COMPLETED
//	             ^                 │   ^
//	             └─────reject──────┘   └── assign (reassignment)
//
// CANCELLED is a terminal state that can be stored and read back but no
// operation in this package moves a booking into it.
//
// Every successful transition records an Event addressed to the party that
// must be told about it. Events are pulled by the persistence layer and
// dispatched only after the transaction commits.
package booking
