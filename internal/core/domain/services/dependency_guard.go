package services

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// DependencyGuard keeps the status dependency forest acyclic.
type DependencyGuard struct {
	repo ports.StatusRepository
}

func NewDependencyGuard(repo ports.StatusRepository) DependencyGuard {
	return DependencyGuard{repo: repo}
}

// CheckParent verifies that child may depend on parent: parent must exist
// and must not be child itself or one of its descendants. A zero child is
// a status not stored yet, which cannot close a cycle.
func (g DependencyGuard) CheckParent(ctx context.Context, child, parent kernel.ID) error {
	if child != 0 && child == parent {
		return errs.NewValueIsInvalidErrorWithCause("dependsOn", fmt.Errorf("status %d cannot depend on itself", child))
	}

	visited := make(map[kernel.ID]struct{})
	current := parent
	for {
		s, err := g.repo.Get(ctx, current)
		if err != nil {
			return err
		}
		visited[current] = struct{}{}

		next := s.DependsOn()
		if next == nil {
			return nil
		}
		if child != 0 && *next == child {
			return errs.NewValueIsInvalidErrorWithCause(
				"dependsOn",
				fmt.Errorf("status %d is a descendant of %d", parent, child),
			)
		}
		if _, seen := visited[*next]; seen {
			// stored data already holds a cycle above parent
			return errs.NewValueIsInvalidErrorWithCause(
				"dependsOn",
				fmt.Errorf("status %d is part of a dependency cycle", *next),
			)
		}
		current = *next
	}
}
