// Package role models the roles that may view workflow steps.
package role

import (
	"errors"
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
)

// SeesEverythingID is the reserved role that may view every status. It is
// implicit and never listed among the roles of a workflow step.
const SeesEverythingID kernel.ID = 1

var ErrRoleIsNotConstructed = errors.New("Role must be created via RestoreRole")

// Role carries the ordered capability list of status IDs it may view.
type Role struct {
	id            kernel.ID
	name          string
	capabilities  []kernel.ID
	isConstructed bool
}

// RestoreRole rebuilds a role from storage. Duplicate capabilities are
// dropped, keeping the first occurrence.
func RestoreRole(id kernel.ID, name string, capabilities []kernel.ID) (*Role, error) {
	if err := id.ValidateAs("role id"); err != nil {
		return nil, err
	}
	seen := make(map[kernel.ID]struct{}, len(capabilities))
	ordered := make([]kernel.ID, 0, len(capabilities))
	for _, statusID := range capabilities {
		if _, dup := seen[statusID]; dup {
			continue
		}
		seen[statusID] = struct{}{}
		ordered = append(ordered, statusID)
	}
	return &Role{id: id, name: name, capabilities: ordered, isConstructed: true}, nil
}

func (r *Role) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRoleIsNotConstructed
	}
	return nil
}

func (r *Role) ID() kernel.ID {
	return r.id
}

func (r *Role) Name() string {
	return r.name
}

// Capabilities returns a copy of the capability list.
func (r *Role) Capabilities() []kernel.ID {
	return slices.Clone(r.capabilities)
}

// CanView reports whether statusID is in the capability list.
func (r *Role) CanView(statusID kernel.ID) bool {
	return slices.Contains(r.capabilities, statusID)
}

// SeesEverything reports whether this is the reserved all-seeing role.
func (r *Role) SeesEverything() bool {
	return r.id == SeesEverythingID
}
