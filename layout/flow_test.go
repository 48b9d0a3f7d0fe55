package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/vitae/markup"
	"github.com/tsawler/vitae/model"
)

type point struct{ x, y float64 }

// fixedBlock reports a constant height and counts calls.
type fixedBlock struct {
	height   float64
	measured int
	drawnAt  []point
}

func (b *fixedBlock) Measure(maxWidth float64) (float64, error) {
	b.measured++
	return b.height, nil
}

func (b *fixedBlock) Draw(s Surface, x, y, maxWidth float64) error {
	b.drawnAt = append(b.drawnAt, point{x, y})
	return nil
}

// failingBlock fails to measure.
type failingBlock struct{}

var errBroken = errors.New("broken block")

func (failingBlock) Measure(maxWidth float64) (float64, error) { return 0, errBroken }
func (failingBlock) Draw(s Surface, x, y, maxWidth float64) error {
	panic("draw must not be called after a failed measure")
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestPlace(t *testing.T) {
	b := &fixedBlock{height: 20}
	rec := &Recorder{}

	y, err := Place(rec, 50, 700, 200, b)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if y != 680 {
		t.Errorf("Place() = %v, want 680", y)
	}
	if len(b.drawnAt) != 1 || b.drawnAt[0] != (point{50, 680}) {
		t.Errorf("block drawn at %v, want [{50 680}]", b.drawnAt)
	}
}

func TestPlaceInvalidWidth(t *testing.T) {
	for _, w := range []float64{0, -10, math.NaN(), math.Inf(-1)} {
		b := &fixedBlock{height: 20}
		y, err := Place(&Recorder{}, 0, 500, w, b)
		if !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("Place(width=%v) error = %v, want ErrInvalidWidth", w, err)
		}
		if y != 500 {
			t.Errorf("Place(width=%v) cursor = %v, want unchanged 500", w, y)
		}
		if b.measured != 0 || len(b.drawnAt) != 0 {
			t.Errorf("Place(width=%v) measured %d times and drew %d times, want 0", w, b.measured, len(b.drawnAt))
		}
	}
}

func TestPlaceMeasureError(t *testing.T) {
	_, err := Place(&Recorder{}, 0, 500, 100, failingBlock{})
	if !errors.Is(err, errBroken) {
		t.Errorf("Place() error = %v, want errBroken", err)
	}

	p := NewParagraph("<b>never closed", model.DefaultTextStyle)
	rec := &Recorder{}
	_, err = Place(rec, 0, 500, 100, p)
	if !errors.Is(err, markup.ErrMalformed) {
		t.Errorf("Place() error = %v, want ErrMalformed", err)
	}
	if len(rec.Texts) != 0 {
		t.Errorf("expected nothing drawn, got %d text ops", len(rec.Texts))
	}
}

func TestFlowCursorLaw(t *testing.T) {
	tests := []struct {
		name    string
		y0      float64
		heights []float64
		gaps    []float64
	}{
		{"empty", 700, nil, nil},
		{"single", 700, []float64{12}, []float64{0}},
		{"mixed", 731, []float64{20, 14, 14, 30.5}, []float64{0, 2, 10, 4}},
		{"runs below zero", 50, []float64{40, 40}, []float64{5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []Entry
			want := tt.y0
			for i, h := range tt.heights {
				entries = append(entries, Entry{Block: &fixedBlock{height: h}, Gap: tt.gaps[i]})
				want -= h + tt.gaps[i]
			}

			got, err := Flow(&Recorder{}, Column{X: 10, Width: 100}, tt.y0, entries)
			if err != nil {
				t.Fatalf("Flow() error: %v", err)
			}
			if !almostEqual(got, want) {
				t.Errorf("Flow() = %v, want %v", got, want)
			}

			total, err := Height(Column{X: 10, Width: 100}, entries)
			if err != nil {
				t.Fatalf("Height() error: %v", err)
			}
			if !almostEqual(tt.y0-total, want) {
				t.Errorf("Height() = %v, want %v", total, tt.y0-want)
			}
		})
	}
}

func TestFlowDrawsAtCursor(t *testing.T) {
	a := &fixedBlock{height: 20}
	b := &fixedBlock{height: 10}
	_, err := Flow(&Recorder{}, Column{X: 30, Width: 100}, 500, []Entry{{a, 5}, {b, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if a.drawnAt[0] != (point{30, 480}) {
		t.Errorf("first block at %v, want {30 480}", a.drawnAt[0])
	}
	if b.drawnAt[0] != (point{30, 465}) {
		t.Errorf("second block at %v, want {30 465}", b.drawnAt[0])
	}
}

func TestFlowStopsOnError(t *testing.T) {
	after := &fixedBlock{height: 10}
	y, err := Flow(&Recorder{}, Column{Width: 100}, 500, []Entry{
		{&fixedBlock{height: 20}, 0},
		{failingBlock{}, 0},
		{after, 0},
	})
	if !errors.Is(err, errBroken) {
		t.Fatalf("Flow() error = %v, want errBroken", err)
	}
	if y != 480 {
		t.Errorf("Flow() cursor = %v, want 480", y)
	}
	if after.measured != 0 {
		t.Error("entries after a failure must not be placed")
	}
}

func TestFlowColumnsIndependent(t *testing.T) {
	const y0 = 731.0
	left := Column{X: 56, Width: 170}
	right := Column{X: 244, Width: 295}
	rec := &Recorder{}

	// Different totals give different cursors.
	l1, err := Flow(rec, left, y0, []Entry{{&fixedBlock{height: 20}, 0}, {&fixedBlock{height: 14}, 10}})
	if err != nil {
		t.Fatal(err)
	}
	r1, err := Flow(rec, right, y0, []Entry{{&fixedBlock{height: 100}, 6}})
	if err != nil {
		t.Fatal(err)
	}
	if l1 == r1 {
		t.Errorf("expected different cursors, both %v", l1)
	}

	// Equal totals give equal cursors regardless of how they are split.
	l2, _ := Flow(rec, left, y0, []Entry{{&fixedBlock{height: 30}, 4}, {&fixedBlock{height: 6}, 0}})
	r2, _ := Flow(rec, right, y0, []Entry{{&fixedBlock{height: 40}, 0}})
	if !almostEqual(l2, r2) {
		t.Errorf("expected equal cursors, got %v and %v", l2, r2)
	}
}

func TestHeaderThenLeftColumn(t *testing.T) {
	rec := &Recorder{}
	full := Column{X: 56, Width: 480}

	// Header of height 40, 24 down to the rule, 5 below the rule.
	y0, err := Flow(rec, full, 800, []Entry{
		{&fixedBlock{height: 40}, 24},
		{&Rule{Thickness: 1}, 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if y0 != 731 {
		t.Fatalf("header cursor = %v, want 731", y0)
	}
	if len(rec.Lines) != 1 || rec.Lines[0].Y1 != 736 {
		t.Errorf("rule drawn at %+v, want y=736", rec.Lines)
	}

	left := Column{X: 56, Width: 170}
	y, err := Flow(rec, left, y0, []Entry{
		{&fixedBlock{height: 20}, 0},
		{&fixedBlock{height: 14}, 0},
		{&fixedBlock{height: 14}, 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	if y != 673 {
		t.Errorf("left column cursor = %v, want 673", y)
	}
}

func TestSplitColumns(t *testing.T) {
	area := model.NewBBox(50, 50, 500, 700)

	left, right, err := SplitColumns(area, 0.4, 20)
	if err != nil {
		t.Fatalf("SplitColumns() error: %v", err)
	}
	if left.X != 50 || !almostEqual(left.Width, 192) {
		t.Errorf("left = %+v, want {50 192}", left)
	}
	if !almostEqual(right.X, 262) || !almostEqual(right.Width, 288) {
		t.Errorf("right = %+v, want {262 288}", right)
	}
	if !almostEqual(right.Right(), area.Right()) {
		t.Errorf("right edge = %v, want %v", right.Right(), area.Right())
	}
	if left.Width >= right.Width {
		t.Error("expected the left column to be narrower")
	}

	bad := []struct {
		ratio, gutter float64
	}{
		{0, 10}, {1, 10}, {0.5, -1}, {0.5, 600},
		{math.NaN(), 10}, {0.5, math.NaN()},
	}
	for _, b := range bad {
		if _, _, err := SplitColumns(area, b.ratio, b.gutter); err == nil {
			t.Errorf("SplitColumns(%v, %v) expected error", b.ratio, b.gutter)
		}
	}
}

func TestHeightInvalidWidth(t *testing.T) {
	_, err := Height(Column{Width: 0}, []Entry{{&fixedBlock{height: 1}, 0}})
	if !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("Height() error = %v, want ErrInvalidWidth", err)
	}
}

func TestStack(t *testing.T) {
	first := &fixedBlock{height: 20}
	second := &fixedBlock{height: 10}
	st := &Stack{Entries: []Entry{{first, 5}, {second, 0}}}
	rec := &Recorder{}

	y, err := Place(rec, 10, 500, 100, st)
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if y != 465 {
		t.Errorf("Place() = %v, want 465", y)
	}
	if len(first.drawnAt) != 1 || first.drawnAt[0] != (point{10, 480}) {
		t.Errorf("first drawn at %v, want [{10 480}]", first.drawnAt)
	}
	if len(second.drawnAt) != 1 || second.drawnAt[0] != (point{10, 465}) {
		t.Errorf("second drawn at %v, want [{10 465}]", second.drawnAt)
	}

	h1, _ := st.Measure(100)
	h2, _ := st.Measure(100)
	if h1 != 35 || h2 != 35 {
		t.Errorf("Measure() = %v, %v, want 35", h1, h2)
	}
}
