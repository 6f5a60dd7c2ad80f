package recording

import (
	"fmt"

	"github.com/gogpu/rounded"
)

// OpType identifies the canvas call an Op records.
type OpType uint8

const (
	OpRect           OpType = iota // DrawRect
	OpRoundRect                    // DrawRoundRect
	OpRoundRectRadii               // DrawRoundRectRadii
	OpOval                         // DrawOval
	OpLine                         // DrawLine
)

// opTypeNames maps OpType values to their string representation.
var opTypeNames = [...]string{
	OpRect:           "Rect",
	OpRoundRect:      "RoundRect",
	OpRoundRectRadii: "RoundRectRadii",
	OpOval:           "Oval",
	OpLine:           "Line",
}

// String returns the name of the op type.
func (t OpType) String() string {
	if int(t) < len(opTypeNames) {
		return opTypeNames[t]
	}
	return "Unknown"
}

// PaintSnapshot is the comparable part of a rounded.Paint at the time of a
// call. The shader itself is kept by the Op for playback.
type PaintSnapshot struct {
	Style       rounded.PaintStyle
	Color       rounded.RGBA
	StrokeWidth float64
	Alpha       uint8
	AntiAlias   bool

	// Shaded reports whether the paint carried a shader, and ShaderMatrix
	// holds its local matrix at the time of the call.
	Shaded       bool
	ShaderMatrix rounded.Matrix
}

func snapshot(p *rounded.Paint) PaintSnapshot {
	s := PaintSnapshot{
		Style:       p.Style,
		Color:       p.Color,
		StrokeWidth: p.StrokeWidth,
		Alpha:       p.Alpha,
		AntiAlias:   p.AntiAlias,
	}
	if p.Shader != nil {
		s.Shaded = true
		s.ShaderMatrix = p.Shader.LocalMatrix()
	}
	return s
}

// Op is one recorded canvas call. Only the fields relevant to Type are
// set: Rect for the shape calls, RX and RY for OpRoundRect, Radii for
// OpRoundRectRadii, and the endpoints for OpLine.
type Op struct {
	Type  OpType
	Rect  rounded.Rect
	RX    float64
	RY    float64
	Radii rounded.CornerRadii

	X0, Y0, X1, Y1 float64

	Paint PaintSnapshot

	shader *rounded.BitmapShader
}

// paint rebuilds a paint equivalent to the one the op was recorded with.
func (op Op) paint() *rounded.Paint {
	p := &rounded.Paint{
		Style:       op.Paint.Style,
		Color:       op.Paint.Color,
		StrokeWidth: op.Paint.StrokeWidth,
		Alpha:       op.Paint.Alpha,
		AntiAlias:   op.Paint.AntiAlias,
	}
	if op.shader != nil {
		// The drawable may have moved the shader since; replay with the
		// matrix that was current at record time.
		sh := *op.shader
		sh.SetLocalMatrix(op.Paint.ShaderMatrix)
		p.Shader = &sh
	}
	return p
}

// String returns a compact description such as
// "Oval Rect(0, 0 - 10, 10) fill #000000ff".
func (op Op) String() string {
	var shape string
	switch op.Type {
	case OpRoundRect:
		shape = fmt.Sprintf("%v r=%g,%g", op.Rect, op.RX, op.RY)
	case OpRoundRectRadii:
		shape = fmt.Sprintf("%v r=%v", op.Rect, op.Radii)
	case OpLine:
		shape = fmt.Sprintf("%g,%g-%g,%g", op.X0, op.Y0, op.X1, op.Y1)
	default:
		shape = op.Rect.String()
	}
	s := fmt.Sprintf("%s %s %s", op.Type, shape, op.Paint.Style)
	if op.Paint.Style == rounded.StyleStroke {
		s += fmt.Sprintf(" w=%g", op.Paint.StrokeWidth)
	}
	if op.Paint.Shaded {
		s += " shader"
	} else {
		s += " " + op.Paint.Color.HexString()
	}
	return s
}
