package vector

// FindFirstOf returns the index of the first element equal to v, or NotFound.
func FindFirstOf[T comparable](s Sequence[T], v T) int {
	return FindFirstFunc(s, func(e T) bool { return e == v })
}

// FindLastOf returns the index of the last element equal to v, or NotFound.
func FindLastOf[T comparable](s Sequence[T], v T) int {
	return FindLastFunc(s, func(e T) bool { return e == v })
}

// FindFirstNotOf returns the index of the first element not equal to v, or NotFound.
func FindFirstNotOf[T comparable](s Sequence[T], v T) int {
	return FindFirstFunc(s, func(e T) bool { return e != v })
}

// FindLastNotOf returns the index of the last element not equal to v, or NotFound.
func FindLastNotOf[T comparable](s Sequence[T], v T) int {
	return FindLastFunc(s, func(e T) bool { return e != v })
}

// FindFirstFunc returns the index of the first element satisfying match,
// or NotFound when s is nil, empty or has no such element.
func FindFirstFunc[T any](s Sequence[T], match func(T) bool) int {
	if isNil(s) {
		return NotFound
	}
	for i, e := range s.Data() {
		if match(e) {
			return i
		}
	}
	return NotFound
}

// FindLastFunc is FindFirstFunc scanning from the back.
func FindLastFunc[T any](s Sequence[T], match func(T) bool) int {
	if isNil(s) {
		return NotFound
	}
	elems := s.Data()
	for i := len(elems) - 1; i >= 0; i-- {
		if match(elems[i]) {
			return i
		}
	}
	return NotFound
}
