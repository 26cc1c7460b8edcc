package engine

// EntityID identifies an entity, 0 is the empty reference
type EntityID uint64

// Kind is the fixed set of entity kinds
type Kind uint8

const (
	KindControlled Kind = iota
	KindHostile
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindControlled:
		return "controlled"
	case KindHostile:
		return "hostile"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Point is an integer pair, used for tile coordinates and sub-tile pixel offsets
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Vector is a velocity in tiles per tick
type Vector struct {
	X, Y float64
}

// IsZero reports whether both components are zero
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Entity is a tile-bound game object
// Location is the occupied tile, Offset the pixel position inside it
type Entity struct {
	ID       EntityID
	Kind     Kind
	Location Point
	Offset   Point
	Velocity Vector
	Alive    bool
}

// Stationary reports whether the entity has no velocity on either axis
func (e *Entity) Stationary() bool {
	return e.Velocity.IsZero()
}
