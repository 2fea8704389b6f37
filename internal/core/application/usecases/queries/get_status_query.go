package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStatusQueryIsNotConstructed = errors.New(
	"GetStatusQuery must be created via NewGetStatusQuery constructor",
)

// GetStatusQuery looks up one node of the status catalog.
type GetStatusQuery struct {
	statusID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetStatusQuery(statusID kernel.ID) (GetStatusQuery, error) {
	if err := statusID.ValidateAs("status id"); err != nil {
		return GetStatusQuery{}, err
	}
	return GetStatusQuery{statusID: statusID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusQueryIsNotConstructed)
}

func (q GetStatusQuery) StatusID() kernel.ID {
	return q.statusID
}
