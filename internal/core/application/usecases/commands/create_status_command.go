package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateStatusCommandIsNotConstructed = errors.New(
	"CreateStatusCommand must be created via NewCreateStatusCommand constructor",
)

// CreateStatusCommand represents a request to add a node to the status catalog.
//
// Example:
//
//	parent := kernel.ID(20)
//	cmd, err := NewCreateStatusCommand("Out for delivery", "", true, &parent)
//	if err != nil {
//	    return fmt.Errorf("invalid status data: %w", err)
//	}
//
//	handler := NewCreateStatusCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateStatusCommand struct { //nolint:recvcheck //using for validation
	label             string
	description       string
	visibleToCustomer bool
	dependsOn         *kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateStatusCommand validates the label and, if given, the parent ID.
// Whether the parent exists is checked by the handler.
func NewCreateStatusCommand(
	label, description string,
	visibleToCustomer bool,
	dependsOn *kernel.ID,
) (CreateStatusCommand, error) {
	cmd := CreateStatusCommand{
		description:       description,
		visibleToCustomer: visibleToCustomer,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLabel(label),
		cmd.setDependsOn(dependsOn),
	); err != nil {
		return CreateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStatusCommand) Validate() error {
	return c.guard.Validate(ErrCreateStatusCommandIsNotConstructed)
}

func (c CreateStatusCommand) Label() string {
	return c.label
}

func (c CreateStatusCommand) Description() string {
	return c.description
}

func (c CreateStatusCommand) VisibleToCustomer() bool {
	return c.visibleToCustomer
}

// DependsOn returns the parent ID, nil for a root.
func (c CreateStatusCommand) DependsOn() *kernel.ID {
	if c.dependsOn == nil {
		return nil
	}
	id := *c.dependsOn
	return &id
}

func (c *CreateStatusCommand) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}

	c.label = label
	return nil
}

func (c *CreateStatusCommand) setDependsOn(dependsOn *kernel.ID) error {
	if dependsOn == nil {
		return nil
	}
	if err := dependsOn.ValidateAs("dependsOn"); err != nil {
		return err
	}

	id := *dependsOn
	c.dependsOn = &id
	return nil
}
