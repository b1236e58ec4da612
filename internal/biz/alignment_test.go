package biz

import (
	"math"
	"testing"

	"prizewheel/internal/wheel"
)

func TestAlignmentLandsOnPointer(t *testing.T) {
	pointers := []float64{0, 90, 270, 33.3}
	priors := []float64{0, 17.3, 359.999, 1000.5, 123456.78}
	for n := 1; n <= 12; n++ {
		for winner := 0; winner < n; winner++ {
			center := wheel.SegmentCenter(winner, n)
			for _, pointer := range pointers {
				for _, prior := range priors {
					inc := Alignment(pointer, center, prior)
					if inc < 0 || inc >= 360 {
						t.Fatalf("increment out of range: %v", inc)
					}
					for turns := 4; turns <= 6; turns++ {
						total := prior + float64(turns)*360 + inc
						if d := AngularDistance(pointer, center+total); d > 1e-6 {
							t.Fatalf("n=%d winner=%d pointer=%v prior=%v turns=%d: off by %v",
								n, winner, pointer, prior, turns, d)
						}
						if got := PointerSegment(pointer, total, n); got != winner {
							t.Fatalf("n=%d winner=%d pointer=%v prior=%v: segment under pointer = %d",
								n, winner, pointer, prior, got)
						}
					}
				}
			}
		}
	}
}

func TestAlignmentIndependentOfWholeTurns(t *testing.T) {
	a := Alignment(0, 180, 45)
	for k := 1; k <= 10; k++ {
		if b := Alignment(0, 180, 45+float64(k)*360); math.Abs(a-b) > 1e-9 {
			t.Fatalf("alignment changed with %d extra turns: %v vs %v", k, a, b)
		}
	}
}

func TestAngularDistance(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{0, 0, 0},
		{0, 359, 1},
		{10, 350, 20},
		{90, 270, 180},
		{720, 0, 0},
	}
	for _, c := range cases {
		if got := AngularDistance(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AngularDistance(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
