package status

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// CancelSentinelID is the reserved status that marks cancellation records.
const CancelSentinelID kernel.ID = 1

// ErrStatusIsNotConstructed is returned when a Status was not created via
// NewStatus or RestoreStatus.
var ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus or RestoreStatus")

// Status is a node of the status catalog.
type Status struct {
	id                kernel.ID
	label             string
	description       string
	visibleToCustomer bool
	// dependsOn is the parent node, nil for roots.
	dependsOn     *kernel.ID
	isConstructed bool
}

// NewStatus creates a status that has not been stored yet; its ID is
// assigned by the catalog store on insert. Whether dependsOn exists is
// checked by the catalog, not here.
func NewStatus(label, description string, visibleToCustomer bool, dependsOn *kernel.ID) (*Status, error) {
	s := &Status{
		description:       description,
		visibleToCustomer: visibleToCustomer,
		isConstructed:     true,
	}
	if err := errors.Join(
		s.setLabel(label),
		s.setDependsOn(dependsOn),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreStatus rebuilds a stored status.
func RestoreStatus(
	id kernel.ID,
	label, description string,
	visibleToCustomer bool,
	dependsOn *kernel.ID,
) (*Status, error) {
	if err := id.ValidateAs("status id"); err != nil {
		return nil, err
	}
	s, err := NewStatus(label, description, visibleToCustomer, dependsOn)
	if err != nil {
		return nil, err
	}
	s.id = id
	if err = s.checkNotSelfDependent(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Status) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

func (s *Status) ID() kernel.ID {
	return s.id
}

func (s *Status) Label() string {
	return s.label
}

func (s *Status) Description() string {
	return s.description
}

func (s *Status) VisibleToCustomer() bool {
	return s.visibleToCustomer
}

// DependsOn returns the parent status ID, or nil for a root.
func (s *Status) DependsOn() *kernel.ID {
	if s.dependsOn == nil {
		return nil
	}
	parent := *s.dependsOn
	return &parent
}

func (s *Status) IsRoot() bool {
	return s.dependsOn == nil
}

// IsSentinel reports whether this is the reserved cancellation status.
func (s *Status) IsSentinel() bool {
	return s.id == CancelSentinelID
}

// Apply updates the fields set in p. The receiver is left untouched when
// the patch is invalid.
func (s *Status) Apply(p Patch) error {
	next := *s
	var errList []error
	if p.Label != nil {
		errList = append(errList, next.setLabel(*p.Label))
	}
	if p.Description != nil {
		next.description = *p.Description
	}
	if p.VisibleToCustomer != nil {
		next.visibleToCustomer = *p.VisibleToCustomer
	}
	switch {
	case p.ClearDependsOn:
		next.dependsOn = nil
	case p.DependsOn != nil:
		errList = append(errList, next.setDependsOn(p.DependsOn))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	if err := next.checkNotSelfDependent(); err != nil {
		return err
	}
	*s = next
	return nil
}

func (s *Status) setLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}
	s.label = label
	return nil
}

func (s *Status) setDependsOn(dependsOn *kernel.ID) error {
	if dependsOn == nil {
		s.dependsOn = nil
		return nil
	}
	if err := dependsOn.ValidateAs("dependsOn"); err != nil {
		return err
	}
	if *dependsOn == CancelSentinelID {
		return errs.NewValueIsInvalidErrorWithCause(
			"dependsOn",
			fmt.Errorf("%d is reserved for cancellation", CancelSentinelID),
		)
	}
	parent := *dependsOn
	s.dependsOn = &parent
	return nil
}

func (s *Status) checkNotSelfDependent() error {
	if s.id != 0 && s.dependsOn != nil && *s.dependsOn == s.id {
		return errs.NewValueIsInvalidErrorWithCause(
			"dependsOn",
			fmt.Errorf("status %d cannot depend on itself", s.id),
		)
	}
	return nil
}
