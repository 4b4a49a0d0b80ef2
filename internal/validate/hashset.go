package validate

import "sync"

// HashSet is the batch-scoped registry of emitted path hashes. It maps
// each hash to the Catid that first claimed it; on a collision the
// earlier row keeps the hash and the later row must re-derive.
type HashSet struct {
	mu   sync.Mutex
	seen map[string]string
}

// NewHashSet returns an empty registry.
func NewHashSet() *HashSet {
	return &HashSet{seen: make(map[string]string)}
}

// Register claims hash for catid. When the hash is already claimed the
// existing owner is returned with ok false and the registry is left
// unchanged.
func (s *HashSet) Register(hash, catid string) (owner string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, dup := s.seen[hash]; dup {
		return existing, false
	}
	s.seen[hash] = catid
	return catid, true
}

// Len reports how many distinct hashes have been claimed.
func (s *HashSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
