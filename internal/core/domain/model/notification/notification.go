// Package notification models the in-app messages produced by booking
// transitions.
package notification

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrMessageIsRequired = errs.NewValueIsRequiredError("message")

// Notification is a message addressed to one user. The only mutation is
// marking it read.
type Notification struct {
	id        kernel.UUID
	recipient kernel.UUID
	message   string
	read      bool
	createdAt time.Time
}

func NewNotification(id, recipient kernel.UUID, message string, createdAt time.Time) (*Notification, error) {
	return RestoreNotification(id, recipient, message, false, createdAt)
}

func RestoreNotification(
	id, recipient kernel.UUID,
	message string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	message = strings.TrimSpace(message)
	var messageErr error
	if message == "" {
		messageErr = ErrMessageIsRequired
	}
	if err := errors.Join(id.Validate(), recipient.Validate(), messageErr); err != nil {
		return nil, err
	}

	return &Notification{
		id:        id,
		recipient: recipient,
		message:   message,
		read:      read,
		createdAt: createdAt.UTC(),
	}, nil
}

func (n *Notification) ID() kernel.UUID        { return n.id }
func (n *Notification) Recipient() kernel.UUID { return n.recipient }
func (n *Notification) Message() string        { return n.message }
func (n *Notification) IsRead() bool           { return n.read }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }

func (n *Notification) MarkRead() {
	n.read = true
}
