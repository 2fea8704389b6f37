package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrListTopLevelStatusesQueryIsNotConstructed = errors.New(
	"ListTopLevelStatusesQuery must be created via NewListTopLevelStatusesQuery constructor",
)

// ListTopLevelStatusesQuery lists the catalog as one sequence: every root
// followed immediately by its direct children. Grandchildren are not
// expanded and the cancellation sentinel never appears.
//
// Example:
//
//	handler := NewListTopLevelStatusesQueryHandler(readers)
//	statuses, err := handler.Handle(ctx, NewListTopLevelStatusesQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list statuses: %w", err)
//	}
//
//	for _, s := range statuses {
//	    fmt.Printf("%d %s\n", s.ID(), s.Label())
//	}
type ListTopLevelStatusesQuery struct {
	guard guard.ConstructorGuard
}

func NewListTopLevelStatusesQuery() ListTopLevelStatusesQuery {
	return ListTopLevelStatusesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTopLevelStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListTopLevelStatusesQueryIsNotConstructed)
}
