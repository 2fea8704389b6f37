package status

// Branch is a root status with its direct children, in store order.
type Branch struct {
	Root     *Status
	Children []*Status
}

// Flatten lists each root immediately followed by its direct children.
// Grandchildren are not expanded: the listing is one level deep.
func Flatten(branches []Branch) []*Status {
	size := 0
	for _, b := range branches {
		size += 1 + len(b.Children)
	}
	flat := make([]*Status, 0, size)
	for _, b := range branches {
		if b.Root == nil || b.Root.IsSentinel() {
			continue
		}
		flat = append(flat, b.Root)
		flat = append(flat, b.Children...)
	}
	return flat
}
