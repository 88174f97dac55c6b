package collections

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
	// Only returns the single member of the set, ErrEmpty when there is
	// none and ErrNotSingleton when there are several.
	Only() (V, error)
}
