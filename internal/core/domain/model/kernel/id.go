package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// ID is the numeric identifier shared by statuses, roles, workflows,
// order items and actors. Valid IDs are strictly positive.
type ID int64

// ParseID parses a decimal identifier, typically a path parameter.
func ParseID(paramName, s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	id := ID(n)
	if err = id.ValidateAs(paramName); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the ID is usable as a reference.
func (id ID) Validate() error {
	return id.ValidateAs("id")
}

// ValidateAs is Validate with the offending parameter named in the error.
func (id ID) ValidateAs(paramName string) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IDs converts a slice of raw identifiers, as read from storage.
func IDs(raw []int64) []ID {
	ids := make([]ID, len(raw))
	for i, r := range raw {
		ids[i] = ID(r)
	}
	return ids
}
