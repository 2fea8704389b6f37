package orderitem

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Lifecycle is the state of an order item.
type Lifecycle int

const (
	// Unknown catches uninitialised values.
	Unknown Lifecycle = iota
	Active
	Completed
	Cancelled
)

var lifecycleNames = map[Lifecycle]string{
	Unknown:   "Unknown",
	Active:    "Active",
	Completed: "Completed",
	Cancelled: "Cancelled",
}

// ParseLifecycle converts the stored name back into a Lifecycle.
func ParseLifecycle(s string) (Lifecycle, error) {
	for l, name := range lifecycleNames {
		if l != Unknown && name == s {
			return l, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("lifecycle", fmt.Errorf("%q is not a valid lifecycle", s))
}

func (l Lifecycle) Validate() error {
	if l == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("lifecycle", fmt.Errorf("%d is not a valid lifecycle", l))
	}
	if _, ok := lifecycleNames[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("lifecycle", fmt.Errorf("%d is not a valid lifecycle", l))
	}
	return nil
}

func (l Lifecycle) String() string {
	if name, ok := lifecycleNames[l]; ok {
		return name
	}
	return lifecycleNames[Unknown]
}

// IsTerminal reports whether no further transition is defined.
func (l Lifecycle) IsTerminal() bool {
	return l == Completed || l == Cancelled
}

// Cancel transitions Active to Cancelled.
//
// Returns:
//   - (Cancelled, nil) from Active
//   - InvalidTransitionError from Completed or Unknown
//   - ConflictError from Cancelled
func (l Lifecycle) Cancel() (Lifecycle, error) {
	switch l {
	case Active:
		return Cancelled, nil
	case Cancelled:
		return Unknown, errs.NewConflictError("order item", "is already cancelled")
	case Completed, Unknown:
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			l.String(), Cancelled.String(),
			fmt.Errorf("cannot cancel a %s item", l),
		)
	default:
		return Unknown, errs.NewInvalidTransitionError(l.String(), Cancelled.String())
	}
}

// Complete transitions Active to Completed.
func (l Lifecycle) Complete() (Lifecycle, error) {
	if l != Active {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			l.String(), Completed.String(),
			fmt.Errorf("cannot complete a %s item", l),
		)
	}
	return Completed, nil
}
