package engine

// EntityStore owns every entity of a world
// Obstacles are immutable after construction, hostiles live in an index-stable
// slice compacted once per tick, the controlled entity is a single owned value
type EntityStore struct {
	nextID     EntityID
	controlled Entity
	obstacles  []*Entity
	hostiles   []*Entity
	index      map[EntityID]*Entity
}

// NewEntityStore creates an empty store, IDs start at 1
func NewEntityStore() *EntityStore {
	return &EntityStore{
		nextID: 1,
		index:  make(map[EntityID]*Entity),
	}
}

func (s *EntityStore) allocate() EntityID {
	id := s.nextID
	s.nextID++
	return id
}

// SetControlled installs the controlled entity at loc and returns it
func (s *EntityStore) SetControlled(loc, rest Point) *Entity {
	if s.controlled.ID != 0 {
		delete(s.index, s.controlled.ID)
	}
	s.controlled = Entity{
		ID:       s.allocate(),
		Kind:     KindControlled,
		Location: loc,
		Offset:   rest,
		Alive:    true,
	}
	s.index[s.controlled.ID] = &s.controlled
	return &s.controlled
}

// Controlled returns the controlled entity
func (s *EntityStore) Controlled() *Entity {
	return &s.controlled
}

// AddObstacle stores a static obstacle at loc
func (s *EntityStore) AddObstacle(loc, rest Point) *Entity {
	e := &Entity{ID: s.allocate(), Kind: KindObstacle, Location: loc, Offset: rest, Alive: true}
	s.obstacles = append(s.obstacles, e)
	s.index[e.ID] = e
	return e
}

// AddHostile stores a stationary live hostile at loc
func (s *EntityStore) AddHostile(loc, rest Point) *Entity {
	e := &Entity{ID: s.allocate(), Kind: KindHostile, Location: loc, Offset: rest, Alive: true}
	s.hostiles = append(s.hostiles, e)
	s.index[e.ID] = e
	return e
}

// Obstacles returns the obstacle slice, callers must not mutate it
func (s *EntityStore) Obstacles() []*Entity { return s.obstacles }

// Hostiles returns the hostile slice in spawn order, callers must not append to it
func (s *EntityStore) Hostiles() []*Entity { return s.hostiles }

// HostileCount returns the number of stored hostiles, dead ones included
func (s *EntityStore) HostileCount() int { return len(s.hostiles) }

// Resolve maps an ID to its entity, nil when absent or removed
func (s *EntityStore) Resolve(id EntityID) *Entity {
	if id == 0 {
		return nil
	}
	return s.index[id]
}

// Compact removes every hostile for which remove returns true, preserving the
// order of the rest, and returns the removed hostiles
func (s *EntityStore) Compact(remove func(*Entity) bool) []*Entity {
	var removed []*Entity
	kept := s.hostiles[:0]
	for _, h := range s.hostiles {
		if remove(h) {
			removed = append(removed, h)
			delete(s.index, h.ID)
			continue
		}
		kept = append(kept, h)
	}
	// Drop dangling pointers in the tail
	clear(s.hostiles[len(kept):])
	s.hostiles = kept
	return removed
}
