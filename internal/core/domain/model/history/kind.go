package history

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Kind tags a history record.
type Kind string

const (
	Progress     Kind = "progress"
	Cancellation Kind = "cancellation"
)

func (k Kind) Validate() error {
	switch k {
	case Progress, Cancellation:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid history kind", string(k)))
	}
}

func (k Kind) String() string {
	return string(k)
}
