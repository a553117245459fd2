package iterators

// Iterator is a pull-based iterator: each call to Next returns the next
// element and whether one existed. It is deliberately the smallest possible
// iterator shape, a single method worth of behaviour expressed as a
// function type.
type Iterator[T any] func() (T, bool)

// FromSlice adapts a slice. The closure captures the slice and an index,
// which is all the state an iterator over memory needs.
func FromSlice[T any](s []T) Iterator[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}
		v := s[i]
		i++
		return v, true
	}
}

// Collect drains the iterator into a slice, the consuming adaptor that
// forces all the lazy ones below to actually run.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v, ok := it(); ok; v, ok = it() {
		out = append(out, v)
	}
	return out
}

// Sum consumes the iterator, adding elements up. Constrained to int to keep
// the example honest; a Number constraint would generalize it.
func Sum(it Iterator[int]) int {
	total := 0
	for v, ok := it(); ok; v, ok = it() {
		total += v
	}
	return total
}

// Map is a lazy adaptor: nothing happens until the returned iterator is
// pulled. The closure f is applied one element at a time.
func Map[T, U any](it Iterator[T], f func(T) U) Iterator[U] {
	return func() (U, bool) {
		v, ok := it()
		if !ok {
			var zero U
			return zero, false
		}
		return f(v), true
	}
}

// Filter is the other lazy adaptor, skipping elements the predicate
// rejects.
func Filter[T any](it Iterator[T], keep func(T) bool) Iterator[T] {
	return func() (T, bool) {
		for {
			v, ok := it()
			if !ok {
				var zero T
				return zero, false
			}
			if keep(v) {
				return v, true
			}
		}
	}
}

// Shoe is the capture-the-environment example.
type Shoe struct {
	Size  uint
	Style string
}

// ShoesInSize filters shoes by size. The predicate closure captures
// shoeSize from the function's scope, which is the whole point of the
// example.
func ShoesInSize(shoes []Shoe, shoeSize uint) []Shoe {
	return Collect(Filter(FromSlice(shoes), func(s Shoe) bool {
		return s.Size == shoeSize
	}))
}
