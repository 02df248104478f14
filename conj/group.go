package conj

// GroupBy buckets items by key. Items keep their relative order inside a
// bucket. Map iteration order is random, use Keys for a stable order.
func GroupBy[T any](items []T, key func(T) string) map[string][]T {
	m := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		m[k] = append(m[k], item)
	}

	return m
}

// Keys returns the distinct keys of items in the order they are first seen.
func Keys[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	return keys
}
