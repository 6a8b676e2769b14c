package rng

// Weighted draws r uniformly in [0, total) and subtracts the weights in order,
// returning the first item where the remainder drops to zero or below.
// Items with a non-positive weight are never selected. ok is false when no
// item carries weight.
func Weighted[T any](src Source, items []T, weight func(T) int) (T, bool) {
	var zero T
	total := 0
	for _, item := range items {
		if w := weight(item); w > 0 {
			total += w
		}
	}
	if total == 0 {
		return zero, false
	}

	remainder := src.Float64() * float64(total)
	last := -1
	for i, item := range items {
		w := weight(item)
		if w <= 0 {
			continue
		}
		last = i
		remainder -= float64(w)
		if remainder <= 0 {
			return item, true
		}
	}
	return items[last], true
}
