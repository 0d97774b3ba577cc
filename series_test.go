package heat

import (
	"errors"
	"image/color"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// recorder is a ViewProvider remembering all draw calls.
type recorder struct {
	created int
	calls   []drawCall
}

type drawCall struct {
	current, previous *Point
	vm                ViewModel
}

type recordingView struct{ r *recorder }

func (v recordingView) Draw(current, previous *Point) {
	v.r.calls = append(v.r.calls, drawCall{current, previous, current.ViewModel})
}

func (r *recorder) NewView(p *Point) Drawable {
	r.created++
	return recordingView{r}
}

var (
	_ GradientColored = (*Series)(nil)
	_ plotter.XYZer   = (*Series)(nil)
)

func testPass(views ViewProvider) Pass {
	return Pass{
		Axes:    [2]Scalable{fixedAxis{-0.5, 2.5}, fixedAxis{-0.5, 1.5}},
		Area:    vg.Rectangle{Max: vg.Point{X: 120, Y: 60}},
		Weights: Interval{0, 100},
		Views:   views,
	}
}

func testSeries() *Series {
	log, _ := test.NewNullLogger()
	s := NewSeries("test", plotter.XYZs{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 50},
		{X: 2, Y: 1, Z: 100},
	})
	s.SetGradient(Gradient{{0, transparent}, {1, red}})
	s.Log = log
	return s
}

func TestSeriesUpdateFirstPass(t *testing.T) {
	s := testSeries()
	rec := &recorder{}
	if err := s.Update(testPass(rec)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if rec.created != 3 {
		t.Errorf("created %d views, want 3", rec.created)
	}
	if len(rec.calls) != 3 {
		t.Fatalf("got %d draw calls, want 3", len(rec.calls))
	}

	wantTo := []color.NRGBA{transparent, {R: 128, A: 128}, red}
	for i, call := range rec.calls {
		p := s.Points[i]
		if call.current != p {
			t.Errorf("call %d: drew wrong point", i)
		}
		if i == 0 && call.previous != nil {
			t.Errorf("call 0: previous = %v, want nil", call.previous)
		}
		if i > 0 && call.previous != s.Points[i-1] {
			t.Errorf("call %d: previous is not point %d", i, i-1)
		}
		if call.vm.From != transparent {
			t.Errorf("point %d: From = %v, want transparent", i, call.vm.From)
		}
		if call.vm.To != wantTo[i] {
			t.Errorf("point %d: To = %v, want %v", i, call.vm.To, wantTo[i])
		}
		if p.Area != p.ViewModel.Rect {
			t.Errorf("point %d: area %v differs from cell %v", i, p.Area, p.ViewModel.Rect)
		}
	}

	// Cells are 30x20; point 1 sits at (60,15).
	want := vg.Rectangle{Min: vg.Point{X: 60, Y: 5}, Max: vg.Point{X: 90, Y: 25}}
	if got := s.Points[1].ViewModel.Rect; got != want {
		t.Errorf("point 1: cell = %v, want %v", got, want)
	}
}

func TestSeriesUpdateTransitionChaining(t *testing.T) {
	s := testSeries()
	rec := &recorder{}
	if err := s.Update(testPass(rec)); err != nil {
		t.Fatalf("first pass: unexpected error %v", err)
	}
	first := make([]color.NRGBA, len(s.Points))
	views := make([]Drawable, len(s.Points))
	for i, p := range s.Points {
		first[i] = p.ViewModel.To
		views[i] = p.View
	}

	s.SetGradient(Gradient{{0, blue}, {1, black}})
	if err := s.Update(testPass(rec)); err != nil {
		t.Fatalf("second pass: unexpected error %v", err)
	}

	if rec.created != 3 {
		t.Errorf("second pass created views: %d in total, want 3", rec.created)
	}
	for i, p := range s.Points {
		if p.ViewModel.From != first[i] {
			t.Errorf("point %d: From = %v, want first pass To %v", i, p.ViewModel.From, first[i])
		}
		if p.View != views[i] {
			t.Errorf("point %d: view was replaced", i)
		}
	}
	if got := s.Points[0].ViewModel.To; got != blue {
		t.Errorf("point 0: To = %v, want %v", got, blue)
	}
}

func TestSeriesUpdateInverted(t *testing.T) {
	s := testSeries()
	pass := testPass(&recorder{})
	pass.Invert = true
	if err := s.Update(pass); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	// X (3 values) is vertical now: 120/(2+1) wide, 60/(3+1) high.
	r := s.Points[0].ViewModel.Rect
	if w, h := r.Max.X-r.Min.X, r.Max.Y-r.Min.Y; w != 40 || h != 15 {
		t.Errorf("inverted cell = %gx%g, want 40x15", w, h)
	}
	// Point 2 (x=2, y=1) sits right of point 0 (x=0, y=0) and above it.
	p0, p2 := s.Points[0].ViewModel.Rect.Min, s.Points[2].ViewModel.Rect.Min
	if !(p2.X > p0.X && p2.Y > p0.Y) {
		t.Errorf("inverted positions: point 0 at %v, point 2 at %v", p0, p2)
	}
}

func TestSeriesUpdateConfigurationError(t *testing.T) {
	s := testSeries()
	s.SetGradient(Gradient{{0.2, blue}, {0.8, red}})
	rec := &recorder{}

	err := s.Update(testPass(rec))
	if !errors.Is(err, ErrUncovered) {
		t.Fatalf("error = %v, want %v", err, ErrUncovered)
	}
	var ce *ConfigurationError
	if !errors.As(err, &ce) || ce.Series != "test" {
		t.Errorf("error %v does not name the series", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("got %d draw calls before the failing point, want 0", len(rec.calls))
	}

	s.SetGradient(nil)
	if err := s.Update(testPass(rec)); !errors.Is(err, ErrTooFewStops) {
		t.Errorf("error = %v, want %v", err, ErrTooFewStops)
	}
}

func TestSeriesSetData(t *testing.T) {
	s := testSeries()
	if err := s.Update(testPass(&recorder{})); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	kept := s.Points[1]

	s.SetData(plotter.XYZs{{X: 0, Y: 1, Z: 10}, {X: 2, Y: 0, Z: 20}})
	if len(s.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(s.Points))
	}
	if s.Points[1] != kept || kept.View == nil {
		t.Errorf("point 1 lost its identity or view")
	}
	if got, want := kept.Coordinate, (WeightedCoordinate{2, 0, 20}); got != want {
		t.Errorf("point 1 coordinate = %v, want %v", got, want)
	}

	s.SetData(plotter.XYZs{{}, {}, {}, {}})
	if len(s.Points) != 4 || s.Points[3].Model != 3 || s.Points[3].View != nil {
		t.Errorf("appended point = %+v, want fresh point with model 3", s.Points[3])
	}
}

func TestSeriesSetGradientCopies(t *testing.T) {
	g := Gradient{{0, blue}, {1, red}}
	s := &Series{}
	s.SetGradient(g)
	g[0].Color = black
	if s.Gradient()[0].Color != blue {
		t.Errorf("SetGradient did not copy the stops")
	}
}

func TestSeriesUpdateLogging(t *testing.T) {
	s := testSeries()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.TraceLevel)
	s.Log = log

	if err := s.Update(testPass(&recorder{})); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	entries := hook.AllEntries()
	if len(entries) != 4 {
		t.Fatalf("got %d log entries, want 4 (one per pass and point)", len(entries))
	}
	if entries[0].Level != logrus.DebugLevel || entries[0].Data["series"] != "test" {
		t.Errorf("pass entry = %v %v, want debug entry for series test", entries[0].Level, entries[0].Data)
	}
}

func TestSeriesUpdateWithoutViews(t *testing.T) {
	s := testSeries()
	pass := testPass(nil)
	if err := s.Update(pass); !errors.Is(err, ErrNoViews) {
		t.Fatalf("error = %v, want %v", err, ErrNoViews)
	}
	for i, p := range s.Points {
		if p.View != nil || p.ViewModel != (ViewModel{}) {
			t.Errorf("point %d changed by failed pass: %+v", i, p)
		}
	}

	// Once every point has a view no provider is needed.
	if err := s.Update(testPass(&recorder{})); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := s.Update(pass); err != nil {
		t.Errorf("pass without provider on known points: %v", err)
	}
}

func TestSeriesXYZRange(t *testing.T) {
	x, y, w := testSeries().XYZRange()
	for _, tc := range []struct {
		name      string
		got, want Interval
	}{
		{"x", x, Interval{0, 2}},
		{"y", y, Interval{0, 1}},
		{"weight", w, Interval{0, 100}},
	} {
		if tc.got != tc.want {
			t.Errorf("%s range = %v, want %v", tc.name, tc.got, tc.want)
		}
	}

	empty := NewSeries("empty", plotter.XYZs{})
	x, y, w = empty.XYZRange()
	for _, r := range []Interval{x, y, w} {
		if !r.Equal(unsetInterval()) {
			t.Errorf("range of empty series = %v, want unset", r)
		}
	}
}
