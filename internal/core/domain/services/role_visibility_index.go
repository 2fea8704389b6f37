package services

import (
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/role"
)

// RoleVisibilityIndex answers which roles may view a status. It is built
// once per request from the role capability lists and has no side effects.
type RoleVisibilityIndex struct {
	byStatus map[kernel.ID][]kernel.ID
}

// NewRoleVisibilityIndex indexes roles by the statuses they may view. The
// reserved all-seeing role is left out: it sees every status implicitly.
func NewRoleVisibilityIndex(roles []*role.Role) RoleVisibilityIndex {
	byStatus := make(map[kernel.ID][]kernel.ID)
	for _, r := range roles {
		if r == nil || r.SeesEverything() {
			continue
		}
		for _, statusID := range r.Capabilities() {
			if !slices.Contains(byStatus[statusID], r.ID()) {
				byStatus[statusID] = append(byStatus[statusID], r.ID())
			}
		}
	}
	for _, roleIDs := range byStatus {
		slices.Sort(roleIDs)
	}
	return RoleVisibilityIndex{byStatus: byStatus}
}

// VisibleRoleIDsFor returns the IDs of the roles whose capability list
// contains statusID, ascending. The result is never nil.
func (i RoleVisibilityIndex) VisibleRoleIDsFor(statusID kernel.ID) []kernel.ID {
	roleIDs := i.byStatus[statusID]
	if len(roleIDs) == 0 {
		return []kernel.ID{}
	}
	return slices.Clone(roleIDs)
}
