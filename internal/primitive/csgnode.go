package primitive

import (
	"github.com/seui-engine/raytracing-csg-renderer/internal/geom"
)

// Op selects the boundary-counting rule a Node applies to its two
// children's span sequences.
type Op int

const (
	OpUnion Op = iota
	OpIntersection
	OpDifference
)

// Node is a CSG composition of two primitives (which may themselves be
// Nodes), implementing Primitive by delegating to internal/geom's
// span-sequence algebra.
type Node struct {
	Op          Op
	Left, Right Primitive
}

// Union, Intersection, and Difference build the three CSG combinators.
// Difference is A minus B: Left is kept, Right is carved out.
func Union(a, b Primitive) Node        { return Node{Op: OpUnion, Left: a, Right: b} }
func Intersection(a, b Primitive) Node { return Node{Op: OpIntersection, Left: a, Right: b} }
func Difference(a, b Primitive) Node   { return Node{Op: OpDifference, Left: a, Right: b} }

// Span evaluates both children against the ray and combines their
// span sequences per the node's operator.
func (n Node) Span(ray geom.Ray) geom.Span {
	left := n.Left.Span(ray)
	right := n.Right.Span(ray)
	switch n.Op {
	case OpIntersection:
		return geom.Intersection(left, right)
	case OpDifference:
		return geom.Difference(left, right)
	default:
		return geom.Union(left, right)
	}
}
