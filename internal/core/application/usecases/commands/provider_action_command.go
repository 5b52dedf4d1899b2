package commands

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrProviderActionCommandIsNotConstructed = errors.New(
	"ProviderActionCommand must be created via NewProviderActionCommand constructor",
)

// ProviderAction is the provider's answer to an assignment.
type ProviderAction string

const (
	ActionAccept ProviderAction = "accept"
	ActionReject ProviderAction = "reject"
)

func ParseProviderAction(s string) (ProviderAction, error) {
	switch a := ProviderAction(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionAccept, ActionReject:
		return a, nil
	case "":
		return "", errs.NewValueIsRequiredError("action")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not accept or reject", s))
	}
}

type ProviderActionCommand struct { //nolint:recvcheck //using for validation
	bookingID  kernel.UUID
	providerID kernel.UUID
	action     ProviderAction

	guard guard.ConstructorGuard
}

func NewProviderActionCommand(bookingID, providerID kernel.UUID, action string) (ProviderActionCommand, error) {
	parsed, actionErr := ParseProviderAction(action)
	if err := errors.Join(
		requiredID("booking", bookingID),
		providerID.Validate(),
		actionErr,
	); err != nil {
		return ProviderActionCommand{}, err
	}

	return ProviderActionCommand{
		bookingID:  bookingID,
		providerID: providerID,
		action:     parsed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ProviderActionCommand) Validate() error {
	return c.guard.Validate(ErrProviderActionCommandIsNotConstructed)
}

func (c ProviderActionCommand) BookingID() kernel.UUID  { return c.bookingID }
func (c ProviderActionCommand) ProviderID() kernel.UUID { return c.providerID }
func (c ProviderActionCommand) Action() ProviderAction  { return c.action }
