package collections

type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	// GetOrCompute returns the value stored for k, computing and storing it
	// with f on a miss. Errors from f are returned and nothing is stored.
	GetOrCompute(k K, f func() (V, error)) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
}
