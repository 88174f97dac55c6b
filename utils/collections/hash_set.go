package collections

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	order    []R
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

// NewHashSet returns a Set keyed by f. Entries are returned in insertion
// order so callers that report members get stable output.
func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		order:    make([]R, 0),
		hashFunc: f,
	}
}

// NewIdentitySet returns a Set of comparable values keyed by themselves.
func NewIdentitySet[V comparable]() Set[V] {
	return NewHashSet(func(v V) V { return v })
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	hash := s.hashFunc(v)
	s.entries[hash] = v
	s.order = append(s.order, hash)
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	if !s.Contains(v) {
		return ErrValueNotExisted
	}
	hash := s.hashFunc(v)
	delete(s.entries, hash)
	for i, h := range s.order {
		if h == hash {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for _, h := range s.order {
		arr = append(arr, s.entries[h])
	}
	return arr
}

func (s *hashSet[R, V]) Only() (v V, err error) {
	switch s.Size() {
	case 0:
		return v, ErrEmpty
	case 1:
		return s.entries[s.order[0]], nil
	default:
		return v, ErrNotSingleton
	}
}
