package filter

// Select returns the items covered by sel, in their original order. Each
// position is copied at most once because sel is disjoint and ascending.
func Select[T any](items []T, sel Selection) []T {
	out := make([]T, 0, min(sel.Len(), len(items)))
	for _, iv := range sel {
		if iv.Lo > len(items) {
			break
		}
		hi := min(iv.Hi, len(items))
		out = append(out, items[iv.Lo-1:hi]...)
	}
	return out
}
