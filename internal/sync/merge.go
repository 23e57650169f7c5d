package sync

// Line is a productId→quantity pair in presentation order.
type Line struct {
	ProductID string
	Quantity  int
}

// MergeByMax reconciles a local cart snapshot with a server one. Per product
// the larger quantity wins; products present on only one side are kept.
// Ordering follows the server side, with local-only products appended after
// in their local order.
func MergeByMax(local, server []Line) []Line {
	localQty := make(map[string]int, len(local))
	for _, l := range local {
		localQty[l.ProductID] = l.Quantity
	}

	merged := make([]Line, 0, len(local)+len(server))
	seen := make(map[string]bool, len(server))

	for _, s := range server {
		qty := s.Quantity
		if lq, ok := localQty[s.ProductID]; ok && lq > qty {
			qty = lq
		}
		merged = append(merged, Line{ProductID: s.ProductID, Quantity: qty})
		seen[s.ProductID] = true
	}

	for _, l := range local {
		if !seen[l.ProductID] {
			merged = append(merged, l)
		}
	}

	return merged
}

// UnionProducts is the wishlist merge: a set union of product ids, server
// ordering first, local-only entries appended.
func UnionProducts(local, server []string) []string {
	merged := make([]string, 0, len(local)+len(server))
	seen := make(map[string]bool, len(server))

	for _, id := range server {
		if !seen[id] {
			merged = append(merged, id)
			seen[id] = true
		}
	}
	for _, id := range local {
		if !seen[id] {
			merged = append(merged, id)
			seen[id] = true
		}
	}

	return merged
}
