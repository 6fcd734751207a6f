package geom

import (
	"fmt"
	"sort"

	"github.com/seui-engine/raytracing-csg-renderer/internal/scalar"
)

// Span is an ordered list of hits along a ray parameter: distances
// non-decreasing, front/back alternating starting with front (unless
// the ray starts inside, in which case a synthetic distance-0 entry
// leads), and for any prefix count(front)-count(back) is 0 or 1.
type Span []Hit

// Validate checks a span sequence against those invariants. It is
// used by tests, not by the render hot path.
func Validate(s Span) error {
	depth := 0
	prevDist := scalar.NegInf()
	for i, h := range s {
		if h.Distance < prevDist-scalar.Epsilon {
			return fmt.Errorf("hit %d: distance %v is less than previous %v", i, h.Distance, prevDist)
		}
		prevDist = h.Distance
		if h.IsFrontFace {
			depth++
		} else {
			depth--
		}
		if depth != 0 && depth != 1 {
			return fmt.Errorf("hit %d: depth %d out of {0,1} after alternation", i, depth)
		}
	}
	return nil
}

// dedupeAdjacent removes adjacent, opposite-orientation hits whose
// distance differs by less than scalar.Epsilon: a zero-thickness shell
// must not appear as a boundary.
func dedupeAdjacent(in []Hit) []Hit {
	out := make([]Hit, 0, len(in))
	for _, h := range in {
		if n := len(out); n > 0 {
			last := out[n-1]
			if scalar.Abs(h.Distance-last.Distance) < scalar.Epsilon && h.IsFrontFace != last.IsFrontFace {
				out = out[:n-1]
				continue
			}
		}
		out = append(out, h)
	}
	return out
}

// event is one operand's hit, merged into the combined sweep and
// tagged with which operand it came from.
type event struct {
	hit   Hit
	fromA bool
}

// mergeAndDedup sorts events by distance and cancels adjacent
// coincident opposite-orientation entries, regardless of which operand
// a hit came from.
func mergeAndDedup(items []event) []event {
	sort.SliceStable(items, func(i, j int) bool { return items[i].hit.Distance < items[j].hit.Distance })
	out := make([]event, 0, len(items))
	for _, it := range items {
		if n := len(out); n > 0 {
			last := out[n-1]
			if scalar.Abs(it.hit.Distance-last.hit.Distance) < scalar.Epsilon && it.hit.IsFrontFace != last.hit.IsFrontFace {
				out = out[:n-1]
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// sweep walks the merged event list maintaining one depth counter per
// operand and emits a hit whenever combine(insideA, insideB) changes
// value. Union, Intersection, and Difference are all instances of this
// with a different combine predicate; Difference additionally flips
// the normal/orientation of a kept B hit, since B's inside becomes
// A-B's outside.
func sweep(events []event, combine func(insideA, insideB bool) bool, flipB bool) Span {
	depthA, depthB := 0, 0
	inside := func() bool { return combine(depthA > 0, depthB > 0) }

	var out Span
	before := inside()
	for _, e := range events {
		if e.fromA {
			if e.hit.IsFrontFace {
				depthA++
			} else {
				depthA--
			}
		} else {
			if e.hit.IsFrontFace {
				depthB++
			} else {
				depthB--
			}
		}
		after := inside()
		if before == after {
			before = after
			continue
		}
		h := e.hit
		if !e.fromA && flipB {
			h.Normal = h.Normal.Neg()
		}
		h.IsFrontFace = after // entering the composed solid -> front; leaving -> back
		out = append(out, h)
		before = after
	}
	return out
}

func toEvents(a, b Span) []event {
	events := make([]event, 0, len(a)+len(b))
	for _, h := range a {
		events = append(events, event{hit: h, fromA: true})
	}
	for _, h := range b {
		events = append(events, event{hit: h, fromA: false})
	}
	return events
}
