package geom

import (
	"testing"

	"github.com/seui-engine/raytracing-csg-renderer/internal/vecmath"
)

func frontHit(d float64) Hit {
	return Hit{Distance: d, Normal: vecmath.NewDirection(0, 0, -1), IsFrontFace: true}
}

func backHit(d float64) Hit {
	return Hit{Distance: d, Normal: vecmath.NewDirection(0, 0, 1), IsFrontFace: false}
}

// sphereSpan is a stand-in for a sphere's two-hit span: enter at d0,
// exit at d1.
func sphereSpan(d0, d1 float64) Span {
	return Span{frontHit(d0), backHit(d1)}
}

func TestUnionOfIdenticalSpans(t *testing.T) {
	a := sphereSpan(1, 3)
	got := Union(a, a)
	if err := Validate(got); err != nil {
		t.Fatalf("invalid union span: %v", err)
	}
	if len(got) != 2 || got[0].Distance != 1 || got[1].Distance != 3 {
		t.Fatalf("Union(A,A) != A after dedup: %+v", got)
	}
}

func TestDifferenceOfIdenticalSpansIsEmpty(t *testing.T) {
	a := sphereSpan(1, 3)
	got := Difference(a, a)
	if len(got) != 0 {
		t.Fatalf("Difference(A,A) should be empty, got %+v", got)
	}
}

func TestIntersectionWithUniverseIsA(t *testing.T) {
	a := sphereSpan(2, 3) // small sphere strictly inside a larger one
	universe := sphereSpan(0, 10)
	got := Intersection(a, universe)
	if err := Validate(got); err != nil {
		t.Fatalf("invalid intersection span: %v", err)
	}
	if len(got) != 2 || got[0].Distance != 2 || got[1].Distance != 3 {
		t.Fatalf("Intersection(A,Universe) != A: %+v", got)
	}
}

func TestUnionOfDisjointSpans(t *testing.T) {
	a := sphereSpan(1, 2)
	b := sphereSpan(5, 6)
	got := Union(a, b)
	if err := Validate(got); err != nil {
		t.Fatalf("invalid union span: %v", err)
	}
	want := []float64{1, 2, 5, 6}
	if len(got) != 4 {
		t.Fatalf("expected 4 hits, got %+v", got)
	}
	for i, d := range want {
		if got[i].Distance != d {
			t.Fatalf("hit %d distance = %v, want %v", i, got[i].Distance, d)
		}
	}
}

func TestDifferenceCarvesInner(t *testing.T) {
	outer := sphereSpan(0, 10)
	inner := sphereSpan(4, 6)
	got := Difference(outer, inner)
	if err := Validate(got); err != nil {
		t.Fatalf("invalid difference span: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 hits (two shells), got %+v", got)
	}
	if got[0].Distance != 0 || got[1].Distance != 4 || got[2].Distance != 6 || got[3].Distance != 10 {
		t.Fatalf("unexpected carved distances: %+v", got)
	}
	// The carved boundary hits (at the inner sphere) must read as
	// exiting then re-entering A-B's interior, the reverse of the
	// inner span's own front/back sense.
	if got[1].IsFrontFace {
		t.Fatalf("hit at inner near boundary (d=4) should be a back (exit) hit, got front")
	}
	if !got[2].IsFrontFace {
		t.Fatalf("hit at inner far boundary (d=6) should be a front (entry) hit, got back")
	}
}

func TestIntersectionOfOverlappingSpans(t *testing.T) {
	a := sphereSpan(0, 5)
	b := sphereSpan(3, 8)
	got := Intersection(a, b)
	if err := Validate(got); err != nil {
		t.Fatalf("invalid intersection span: %v", err)
	}
	if len(got) != 2 || got[0].Distance != 3 || got[1].Distance != 5 {
		t.Fatalf("expected overlap [3,5], got %+v", got)
	}
}
