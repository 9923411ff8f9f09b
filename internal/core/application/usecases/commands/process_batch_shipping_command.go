package commands

import (
	"errors"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/guard"
)

var ErrProcessBatchShippingCommandIsNotConstructed = errors.New(
	"ProcessBatchShippingCommand must be created via NewProcessBatchShippingCommand constructor",
)

// ProcessBatchShippingCommand represents a request to run the shipping
// pipeline over a set of orders belonging to one organization. An empty set is
// valid and produces an empty report; the scheduled trigger regularly submits
// batches for organizations with nothing eligible.
type ProcessBatchShippingCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	orderIDs       []kernel.UUID
	autoPurchase   bool

	guard guard.ConstructorGuard
}

// NewProcessBatchShippingCommand creates a command to process a batch of
// orders. Every order id must be valid; the list itself may be empty.
func NewProcessBatchShippingCommand(
	organizationID kernel.UUID,
	orderIDs []kernel.UUID,
	autoPurchase bool,
) (ProcessBatchShippingCommand, error) {
	command := ProcessBatchShippingCommand{
		autoPurchase: autoPurchase,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrganizationID(organizationID),
		command.setOrderIDs(orderIDs),
	); err != nil {
		return ProcessBatchShippingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessBatchShippingCommandIsNotConstructed if validation fails.
func (c ProcessBatchShippingCommand) Validate() error {
	return c.guard.Validate(ErrProcessBatchShippingCommandIsNotConstructed)
}

// OrganizationID returns the identifier of the owning organization.
func (c ProcessBatchShippingCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// OrderIDs returns the orders to process, in submission order.
func (c ProcessBatchShippingCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// AutoPurchase reports whether the batch should purchase selected rates
// automatically (still subject to the organization's own setting).
func (c ProcessBatchShippingCommand) AutoPurchase() bool {
	return c.autoPurchase
}

func (c *ProcessBatchShippingCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *ProcessBatchShippingCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}
