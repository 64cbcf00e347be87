package redfa

// Extends s to size, filling new elements with fill.
func grow[T any](s []T, size int, fill T) []T {
	for len(s) < size {
		s = append(s, fill)
	}
	return s
}
