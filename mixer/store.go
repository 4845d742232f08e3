package mixer

// Pair is one (source, target) sample. Either endpoint may be unset;
// the solver only ever sees pairs with both set.
type Pair struct {
	Id     int
	Source *Color
	Target *Color
}

// Complete reports whether both endpoints of the pair are set.
func (p *Pair) Complete() bool {
	return p.Source != nil && p.Target != nil
}

// Store holds the ordered collection of color pairs. Pairs are keyed
// by an integer id that increases monotonically and is never reused
// within a store's lifetime; removing a pair does not renumber the
// rest. The zero value is ready to use. A Store is owned by a single
// caller and is not safe for concurrent mutation.
type Store struct {
	pairs  map[int]*Pair
	order  []int
	nextId int
}

// Add creates a new pair with both endpoints unset, appends it to the
// display order and returns it.
func (s *Store) Add() *Pair {
	if s.pairs == nil {
		s.pairs = make(map[int]*Pair)
	}
	s.nextId++
	p := &Pair{Id: s.nextId}
	s.pairs[p.Id] = p
	s.order = append(s.order, p.Id)
	return p
}

// Remove deletes the pair with the given id. Removing an id that is
// not present is a no-op.
func (s *Store) Remove(id int) {
	if _, ok := s.pairs[id]; !ok {
		return
	}
	delete(s.pairs, id)
	for i, x := range s.order {
		if x == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetSource overwrites the source endpoint of the pair with the given
// id. A no-op if the id is not present.
func (s *Store) SetSource(id int, c Color) {
	if p, ok := s.pairs[id]; ok {
		p.Source = &c
	}
}

// SetTarget overwrites the target endpoint of the pair with the given
// id. A no-op if the id is not present.
func (s *Store) SetTarget(id int, c Color) {
	if p, ok := s.pairs[id]; ok {
		p.Target = &c
	}
}

// Len returns the number of pairs, complete or not.
func (s *Store) Len() int { return len(s.order) }

// Pairs returns all pairs in insertion order.
func (s *Store) Pairs() []*Pair {
	ans := make([]*Pair, 0, len(s.order))
	for _, id := range s.order {
		ans = append(ans, s.pairs[id])
	}
	return ans
}

// CompletePairs returns, in insertion order, the pairs with both
// endpoints set. This is the only read the solver uses.
func (s *Store) CompletePairs() []*Pair {
	ans := make([]*Pair, 0, len(s.order))
	for _, id := range s.order {
		if p := s.pairs[id]; p.Complete() {
			ans = append(ans, p)
		}
	}
	return ans
}
