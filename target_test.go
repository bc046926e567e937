package toothgeom

import "fmt"

// call is one method invocation on a recorder.
type call struct {
	Op   string
	Args []float64
}

func (c call) String() string { return fmt.Sprintf("%s%v", c.Op, c.Args) }

// recorder is a Target that records every call and tracks the transform the
// way a canvas does.
type recorder struct {
	calls []call
	aff   Affine
	stack []Affine
	// device holds the path in device space.
	device BezPath
}

func newRecorder() *recorder { return &recorder{aff: Identity} }

func (r *recorder) rec(op string, args ...float64) {
	r.calls = append(r.calls, call{op, args})
}

func (r *recorder) MoveTo(x, y float64) {
	r.rec("MoveTo", x, y)
	r.device.MoveTo(Pt(x, y).Transform(r.aff))
}

func (r *recorder) LineTo(x, y float64) {
	r.rec("LineTo", x, y)
	r.device.LineTo(Pt(x, y).Transform(r.aff))
}

func (r *recorder) QuadraticTo(cx, cy, x, y float64) {
	r.rec("QuadraticTo", cx, cy, x, y)
	r.device.QuadTo(Pt(cx, cy).Transform(r.aff), Pt(x, y).Transform(r.aff))
}

func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.rec("CubicTo", c1x, c1y, c2x, c2y, x, y)
	r.device.CubicTo(Pt(c1x, c1y).Transform(r.aff), Pt(c2x, c2y).Transform(r.aff), Pt(x, y).Transform(r.aff))
}

func (r *recorder) ClosePath() {
	r.rec("ClosePath")
	r.device.ClosePath()
}

func (r *recorder) Push() {
	r.rec("Push")
	r.stack = append(r.stack, r.aff)
}

func (r *recorder) Pop() {
	r.rec("Pop")
	r.aff = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recorder) Translate(x, y float64) {
	r.rec("Translate", x, y)
	r.aff = r.aff.PreTranslate(Vec(x, y))
}

func (r *recorder) Scale(x, y float64) {
	r.rec("Scale", x, y)
	r.aff = r.aff.PreScale(x, y)
}

// pathCalls returns only the path construction calls.
func (r *recorder) pathCalls() []call {
	var out []call
	for _, c := range r.calls {
		switch c.Op {
		case "MoveTo", "LineTo", "QuadraticTo", "CubicTo", "ClosePath":
			out = append(out, c)
		}
	}
	return out
}

// sizedRecorder additionally reports a pixel size and supports ClearPath.
type sizedRecorder struct {
	recorder
	w, h int
}

func newSizedRecorder(w, h int) *sizedRecorder {
	return &sizedRecorder{recorder: recorder{aff: Identity}, w: w, h: h}
}

func (r *sizedRecorder) Width() int  { return r.w }
func (r *sizedRecorder) Height() int { return r.h }

func (r *sizedRecorder) ClearPath() {
	r.rec("ClearPath")
	r.device = nil
}

var (
	_ Target      = (*recorder)(nil)
	_ Sizer       = (*sizedRecorder)(nil)
	_ PathClearer = (*sizedRecorder)(nil)
)
