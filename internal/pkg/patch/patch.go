package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Minutes coalesces an optional minute count from a request onto a current value in minutes.
func Minutes(ptr *int, current int) int {
	return Coalesce(ptr, current)
}

// Any reports whether at least one optional field of a partial update is set.
func Any(set ...bool) bool {
	for _, s := range set {
		if s {
			return true
		}
	}
	return false
}
