// Package vecmath provides tagged position/direction/move/scale
// types. The wrappers are semantic markers over a plain
// 3-vector, not a new algebra: arithmetic is implemented once on the
// unexported vec3 and re-exposed per type so that, e.g., a Position can
// never accidentally be added to another Position.
package vecmath

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
)

type vec3 struct {
	X, Y, Z scalar.S
}

func (a vec3) add(b vec3) vec3   { return vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a vec3) sub(b vec3) vec3   { return vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a vec3) scale(s scalar.S) vec3 { return vec3{a.X * s, a.Y * s, a.Z * s} }
func (a vec3) neg() vec3         { return vec3{-a.X, -a.Y, -a.Z} }
func (a vec3) dot(b vec3) scalar.S { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}
func (a vec3) length() scalar.S { return scalar.Sqrt(a.dot(a)) }

// Position is a point in world space.
type Position struct{ v vec3 }

// NewPosition builds a Position from components.
func NewPosition(x, y, z scalar.S) Position { return Position{vec3{x, y, z}} }

func (p Position) X() scalar.S { return p.v.X }
func (p Position) Y() scalar.S { return p.v.Y }
func (p Position) Z() scalar.S { return p.v.Z }

// Sub computes the displacement between two positions: Position -
// Position = Move.
func (p Position) Sub(q Position) Move { return Move{p.v.sub(q.v)} }

// Add applies a displacement: Position + Move = Position.
func (p Position) Add(m Move) Position { return Position{p.v.add(m.v)} }

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(q Position) scalar.S { return p.Sub(q).Length() }

// Direction is a unit 3-vector. Construction always normalizes; if the
// input is (near) the zero vector, it is replaced with a safe default
// axis (+X) rather than faulting.
type Direction struct{ v vec3 }

// NewDirection normalizes (x,y,z) into a Direction.
func NewDirection(x, y, z scalar.S) Direction {
	v := vec3{x, y, z}
	l := v.length()
	if l < scalar.Epsilon || scalar.IsNaN(l) {
		return Direction{vec3{1, 0, 0}}
	}
	return Direction{v.scale(1 / l)}
}

func (d Direction) X() scalar.S { return d.v.X }
func (d Direction) Y() scalar.S { return d.v.Y }
func (d Direction) Z() scalar.S { return d.v.Z }

// Neg returns the opposite direction; still unit length by construction.
func (d Direction) Neg() Direction { return Direction{d.v.neg()} }

// Dot is the dot product of two unit directions (a cosine).
func (d Direction) Dot(o Direction) scalar.S { return d.v.dot(o.v) }

// DotMove is the dot product of a direction with a move, used by the
// plane/quadric intersectors.
func (d Direction) DotMove(m Move) scalar.S { return d.v.dot(m.v) }

// Cross returns the (unit, since both inputs are unit and the camera
// basis is orthogonal) cross product of two directions.
func (d Direction) Cross(o Direction) Direction {
	c := d.v.cross(o.v)
	return NewDirection(c.X, c.Y, c.Z)
}

// Scale turns a Direction into a Move: Direction · S = Move.
func (d Direction) Scale(s scalar.S) Move { return Move{d.v.scale(s)} }

// Move is a displacement between two positions.
type Move struct{ v vec3 }

// NewMove builds a Move from raw components (e.g. for axis offsets that
// are not unit length, such as cube slab normals pre-scale).
func NewMove(x, y, z scalar.S) Move { return Move{vec3{x, y, z}} }

func (m Move) X() scalar.S { return m.v.X }
func (m Move) Y() scalar.S { return m.v.Y }
func (m Move) Z() scalar.S { return m.v.Z }

func (m Move) Add(o Move) Move      { return Move{m.v.add(o.v)} }
func (m Move) Sub(o Move) Move      { return Move{m.v.sub(o.v)} }
func (m Move) Neg() Move            { return Move{m.v.neg()} }
func (m Move) ScaleBy(s scalar.S) Move { return Move{m.v.scale(s)} }
func (m Move) Dot(o Move) scalar.S  { return m.v.dot(o.v) }

// Length returns the magnitude of the displacement.
func (m Move) Length() scalar.S { return m.v.length() }

// LengthAndDirection decomposes the move into its magnitude and unit
// direction.
func (m Move) LengthAndDirection() (scalar.S, Direction) {
	l := m.Length()
	if l < scalar.Epsilon {
		return 0, Direction{vec3{1, 0, 0}}
	}
	return l, Direction{m.v.scale(1 / l)}
}

// ToDirection normalizes the move, ignoring its magnitude.
func (m Move) ToDirection() Direction {
	_, d := m.LengthAndDirection()
	return d
}

// Size is a non-negative per-axis extent (used by Cube's half-extents).
type Size struct{ v vec3 }

// NewSize builds a Size, clamping any negative input component to 0.
func NewSize(x, y, z scalar.S) Size {
	return Size{vec3{scalar.Max(x, 0), scalar.Max(y, 0), scalar.Max(z, 0)}}
}

func (s Size) X() scalar.S { return s.v.X }
func (s Size) Y() scalar.S { return s.v.Y }
func (s Size) Z() scalar.S { return s.v.Z }

// Scale is a non-negative per-axis multiplier.
type Scale struct{ v vec3 }

// NewScale builds a Scale, clamping any negative input component to 0.
func NewScale(x, y, z scalar.S) Scale {
	return Scale{vec3{scalar.Max(x, 0), scalar.Max(y, 0), scalar.Max(z, 0)}}
}

func (s Scale) X() scalar.S { return s.v.X }
func (s Scale) Y() scalar.S { return s.v.Y }
func (s Scale) Z() scalar.S { return s.v.Z }
