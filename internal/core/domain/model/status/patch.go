package status

import "fulfillment/internal/core/domain/model/kernel"

// Patch lists the fields of a catalog update; nil fields are kept.
// ClearDependsOn turns the node into a root and wins over DependsOn.
type Patch struct {
	Label             *string
	Description       *string
	VisibleToCustomer *bool
	DependsOn         *kernel.ID
	ClearDependsOn    bool
}

// ChangesParent reports whether applying the patch may move the node.
func (p Patch) ChangesParent() bool {
	return p.ClearDependsOn || p.DependsOn != nil
}
