package commands

import (
	"errors"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/guard"
)

var ErrProcessOrderShippingCommandIsNotConstructed = errors.New(
	"ProcessOrderShippingCommand must be created via NewProcessOrderShippingCommand constructor",
)

// ProcessOrderShippingCommand represents a request to run the shipping
// pipeline for a single order: resolve the destination, fetch rates, and —
// depending on the flags — purchase a label.
//
// When rateID is set the pipeline skips rate shopping and purchases that rate
// directly. When autoPurchase is set the pipeline purchases the selected rate
// automatically, but only if the organization also has automatic purchasing
// enabled; otherwise it stops after rate selection.
type ProcessOrderShippingCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	orderID        kernel.UUID
	rateID         string
	autoPurchase   bool

	guard guard.ConstructorGuard
}

// NewProcessOrderShippingCommand creates a command to process shipping for an
// order. rateID may be empty; a non-empty value requests a direct purchase of
// that rate. Returns an error if either identifier is invalid.
func NewProcessOrderShippingCommand(
	organizationID kernel.UUID,
	orderID kernel.UUID,
	rateID string,
	autoPurchase bool,
) (ProcessOrderShippingCommand, error) {
	command := ProcessOrderShippingCommand{
		rateID:       rateID,
		autoPurchase: autoPurchase,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrganizationID(organizationID),
		command.setOrderID(orderID),
	); err != nil {
		return ProcessOrderShippingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderShippingCommandIsNotConstructed if validation fails.
func (c ProcessOrderShippingCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderShippingCommandIsNotConstructed)
}

// OrganizationID returns the identifier of the owning organization.
func (c ProcessOrderShippingCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// OrderID returns the identifier of the order to process.
func (c ProcessOrderShippingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RateID returns the carrier rate to purchase directly, or empty when the
// pipeline should shop for rates.
func (c ProcessOrderShippingCommand) RateID() string {
	return c.rateID
}

// AutoPurchase reports whether the caller requested automatic purchase of the
// selected rate.
func (c ProcessOrderShippingCommand) AutoPurchase() bool {
	return c.autoPurchase
}

func (c *ProcessOrderShippingCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *ProcessOrderShippingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
