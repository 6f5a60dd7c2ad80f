package recording

import (
	"sync"

	"github.com/gogpu/rounded"
)

// Recorder is a rounded.RadiiCanvas that stores every call instead of
// drawing it. It is safe for concurrent use.
type Recorder struct {
	mu  sync.Mutex
	ops []Op
}

var _ rounded.RadiiCanvas = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(op Op, p *rounded.Paint) {
	if p == nil {
		p = rounded.NewPaint()
	}
	op.Paint = snapshot(p)
	op.shader = p.Shader

	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// DrawRect records a rectangle.
func (r *Recorder) DrawRect(rect rounded.Rect, p *rounded.Paint) {
	r.record(Op{Type: OpRect, Rect: rect}, p)
}

// DrawRoundRect records a rounded rectangle with a single radius.
func (r *Recorder) DrawRoundRect(rect rounded.Rect, rx, ry float64, p *rounded.Paint) {
	r.record(Op{Type: OpRoundRect, Rect: rect, RX: rx, RY: ry}, p)
}

// DrawRoundRectRadii records a rounded rectangle with per-corner radii.
func (r *Recorder) DrawRoundRectRadii(rect rounded.Rect, radii rounded.CornerRadii, p *rounded.Paint) {
	r.record(Op{Type: OpRoundRectRadii, Rect: rect, Radii: radii}, p)
}

// DrawOval records an oval.
func (r *Recorder) DrawOval(rect rounded.Rect, p *rounded.Paint) {
	r.record(Op{Type: OpOval, Rect: rect}, p)
}

// DrawLine records a line segment.
func (r *Recorder) DrawLine(x0, y0, x1, y1 float64, p *rounded.Paint) {
	r.record(Op{Type: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1}, p)
}

// Ops returns a copy of the recorded ops in call order.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Types returns the type of each recorded op in call order.
func (r *Recorder) Types() []OpType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]OpType, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.Type
	}
	return out
}

// Len returns the number of recorded ops.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ops)
}

// Reset discards the recorded ops.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.ops = r.ops[:0]
	r.mu.Unlock()
}

// Playback replays the recorded ops onto c in order.
//
// Per-corner rounded rectangles are replayed with DrawRoundRectRadii when
// c supports it, and as a single-radius rounded rectangle using the
// largest radius otherwise.
func (r *Recorder) Playback(c rounded.Canvas) {
	rc, perCorner := c.(rounded.RadiiCanvas)
	for _, op := range r.Ops() {
		p := op.paint()
		switch op.Type {
		case OpRect:
			c.DrawRect(op.Rect, p)
		case OpRoundRect:
			c.DrawRoundRect(op.Rect, op.RX, op.RY, p)
		case OpRoundRectRadii:
			if perCorner {
				rc.DrawRoundRectRadii(op.Rect, op.Radii, p)
			} else {
				m := op.Radii.Max()
				c.DrawRoundRect(op.Rect, m, m, p)
			}
		case OpOval:
			c.DrawOval(op.Rect, p)
		case OpLine:
			c.DrawLine(op.X0, op.Y0, op.X1, op.Y1, p)
		}
	}
}
