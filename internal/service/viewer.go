package service

// Viewer identifies who is looking at the storefront. CustomerID is zero for
// anonymous visitors; GroupIDs always carries at least the guest group so the
// access predicate has something to intersect with.
type Viewer struct {
	CustomerID uint
	GroupIDs   []uint
	Language   string
}

// Anonymous returns the viewer used when no identity token is presented.
func Anonymous(guestGroupID uint, language string) Viewer {
	return Viewer{
		GroupIDs: []uint{guestGroupID},
		Language: language,
	}
}
