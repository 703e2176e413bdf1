package softheap

// Comparer is the total order used for keys throughout this module.
// Before must be a strict order: a.Before(a) is never true.
type Comparer[T any] interface {
	Before(T) bool
}

// IntKey and Float64Key are ready-made key types for the common cases.

type IntKey int

func (a IntKey) Before(b IntKey) bool {
	return a < b
}

type Float64Key float64

func (a Float64Key) Before(b Float64Key) bool {
	return a < b
}
