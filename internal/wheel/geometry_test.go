package wheel

import (
	"math"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
)

const eps = 1e-9

func TestSegmentsCoverFullCircle(t *testing.T) {
	for n := 1; n <= 24; n++ {
		w := SegmentWidth(n)
		if math.Abs(w*float64(n)-FullTurn) > eps {
			t.Fatalf("n=%d: width %v does not tile 360", n, w)
		}
		prevEnd := 0.0
		for i := 0; i < n; i++ {
			start, end := SegmentBounds(i, n)
			if math.Abs(start-prevEnd) > eps {
				t.Fatalf("n=%d i=%d: gap/overlap, start=%v prevEnd=%v", n, i, start, prevEnd)
			}
			if math.Abs(end-start-w) > eps {
				t.Fatalf("n=%d i=%d: width=%v want %v", n, i, end-start, w)
			}
			prevEnd = end
		}
		if math.Abs(prevEnd-FullTurn) > eps {
			t.Fatalf("n=%d: last end=%v", n, prevEnd)
		}
	}
}

func TestSegmentAt(t *testing.T) {
	n := 7
	for i := 0; i < n; i++ {
		if got := SegmentAt(SegmentCenter(i, n), n); got != i {
			t.Errorf("SegmentAt(center(%d)) = %d", i, got)
		}
	}
	if got := SegmentAt(-1, n); got != n-1 {
		t.Errorf("SegmentAt(-1) = %d, want %d", got, n-1)
	}
	if got := SegmentAt(720, n); got != 0 {
		t.Errorf("SegmentAt(720) = %d, want 0", got)
	}
	if got := SegmentAt(10, 0); got != -1 {
		t.Errorf("SegmentAt with n=0 = %d", got)
	}
}

func TestPolarToCartesianReference(t *testing.T) {
	c := Point{X: 200, Y: 200}
	cases := []struct {
		angle float64
		want  Point
	}{
		{0, Point{200, 0}},     // 正上
		{90, Point{400, 200}},  // 正右
		{180, Point{200, 400}}, // 正下
		{270, Point{0, 200}},   // 正左
	}
	for _, tc := range cases {
		got := PolarToCartesian(c, 200, tc.angle)
		if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
			t.Errorf("angle %v: got %+v want %+v", tc.angle, got, tc.want)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	c := Point{X: 200, Y: 200}
	for _, r := range []float64{1, 50, 130, 200} {
		for a := 0.0; a < 360; a += 7.3 {
			p := PolarToCartesian(c, r, a)
			gotA, gotR := CartesianToPolar(c, p)
			if math.Abs(gotR-r) > 1e-9 {
				t.Fatalf("radius round trip: r=%v a=%v got %v", r, a, gotR)
			}
			d := math.Abs(gotA - a)
			if d > 180 {
				d = 360 - d
			}
			if d > 1e-9 {
				t.Fatalf("angle round trip: r=%v a=%v got %v", r, a, gotA)
			}
		}
	}
	if a, r := CartesianToPolar(c, c); a != 0 || r != 0 {
		t.Errorf("center should map to (0,0), got (%v,%v)", a, r)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[float64]float64{0: 0, 360: 0, 361: 1, -1: 359, 1980: 180, -720: 0}
	for in, want := range cases {
		if got := Normalize(in); math.Abs(got-want) > eps {
			t.Errorf("Normalize(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDescribeArc(t *testing.T) {
	c := Point{X: 200, Y: 200}
	small := DescribeArc(c, 200, 0, 90)
	if small != "M 200 200 L 200 0 A 200 200 0 0 1 400 200 Z" {
		t.Errorf("quarter arc = %q", small)
	}
	large := DescribeArc(c, 200, 0, 240)
	if !strings.Contains(large, " 0 1 1 ") {
		t.Errorf("arc over 180° should set large flag: %q", large)
	}
	if LargeArc(0, 180) {
		t.Errorf("exactly 180° is not a large arc")
	}
	full := DescribeArc(c, 200, 0, 360)
	if strings.Count(full, "A ") != 2 {
		t.Errorf("full circle should be two arcs: %q", full)
	}
}

func TestLayout(t *testing.T) {
	w, err := Layout(DefaultParticipants, Options{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if w.Len() != 7 || w.Radius != DefaultRadius || w.Center != (Point{200, 200}) {
		t.Fatalf("unexpected wheel: len=%d radius=%v center=%+v", w.Len(), w.Radius, w.Center)
	}
	for i, s := range w.Segments {
		wantFill := DefaultEvenFill
		if i%2 == 1 {
			wantFill = DefaultOddFill
		}
		if s.Fill != wantFill {
			t.Errorf("segment %d fill = %s", i, s.Fill)
		}
		if math.Abs(s.Mid-SegmentCenter(i, 7)) > eps {
			t.Errorf("segment %d mid = %v", i, s.Mid)
		}
		if math.Abs(s.Face.Rotation-(s.Mid+90)) > eps {
			t.Errorf("segment %d face rotation = %v", i, s.Face.Rotation)
		}
		a, r := CartesianToPolar(w.Center, s.Face.Center)
		if math.Abs(r-200*DefaultFaceRadiusRatio) > 1e-9 || math.Abs(a-s.Mid) > 1e-9 {
			t.Errorf("segment %d face at (%v,%v), want (%v,%v)", i, a, r, s.Mid, 130.0)
		}
		if s.Face.ClipID == "" || s.Face.Size != DefaultFaceSize {
			t.Errorf("segment %d face = %+v", i, s.Face)
		}
		if s.LargeArc {
			t.Errorf("segment %d of 7 must not be a large arc", i)
		}
	}

	one, err := Layout(DefaultParticipants[:1], Options{Radius: 100})
	if err != nil {
		t.Fatalf("Layout single: %v", err)
	}
	if !one.Segments[0].LargeArc || one.Segments[0].End != 360 {
		t.Errorf("single segment should span the whole wheel: %+v", one.Segments[0])
	}
}

func TestLayoutExplicitCenter(t *testing.T) {
	origin := Point{}
	w, err := Layout(DefaultParticipants, Options{Radius: 50, Center: &origin})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if w.Center != origin {
		t.Fatalf("explicit origin center replaced: %+v", w.Center)
	}
	if !strings.HasPrefix(w.Segments[0].Path, "M 0 0 L 0 -50 ") {
		t.Errorf("path not drawn around origin: %q", w.Segments[0].Path)
	}

	w, err = Layout(DefaultParticipants, Options{Radius: 50})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if w.Center != (Point{50, 50}) {
		t.Errorf("default center = %+v, want (50,50)", w.Center)
	}
}

func TestLayoutErrors(t *testing.T) {
	if _, err := Layout(nil, Options{}); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("empty list: err = %v", err)
	}
	if _, err := Layout(DefaultParticipants, Options{Radius: -1}); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("negative radius: err = %v", err)
	}
}
