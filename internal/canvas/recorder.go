package canvas

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpFillCircle
	OpStrokeCircle
	OpText
)

// Op is one recorded drawing call. Lines use X1..Y2; circles use X1, Y1
// and Radius; text uses X1, Y1, Size and Text.
type Op struct {
	Kind   OpKind
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Radius float64
	Size   float64
	Cap    LineCap
	Text   string
	Color  color.Color
}

// Recorder is a Canvas that keeps every call in order instead of drawing.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	r.StrokeCappedLine(x1, y1, x2, y2, width, CapButt, c)
}

func (r *Recorder) StrokeCappedLine(x1, y1, x2, y2, width float64, lineCap LineCap, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Cap: lineCap, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X1: cx, Y1: cy, Radius: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, X1: cx, Y1: cy, Radius: radius, Width: width, Color: c})
}

func (r *Recorder) FillText(s string, x, y, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X1: x, Y1: y, Size: size, Text: s, Color: c})
}

// Count returns how many recorded calls are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of kind k, in order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
