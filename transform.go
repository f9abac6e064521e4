package joy

import (
	"fmt"
	"math"
	"strings"
)

// Transformation describes a geometric remap that can be attached to a shape
// and serialized into the SVG transform syntax. The set of variants is
// closed: Translate, Rotate, Scale, sequential compositions of those, and
// the higher-order Repeat and Cycle which generate groups of shapes.
type Transformation interface {
	// Join returns the sequential composition of this transformation
	// followed by next. Composition is not commutative.
	Join(next Transformation) Transformation

	transformation()
}

type translate struct{ x, y float64 }

type rotate struct {
	angle  float64
	anchor Point
}

type scale struct{ sx, sy float64 }

type sequence struct{ parts []Transformation }

type repeat struct {
	n int
	t Transformation
}

type cycle struct {
	n      int
	angle  float64
	anchor Point
	s      float64
}

func (translate) transformation() {}
func (rotate) transformation()    {}
func (scale) transformation()     {}
func (sequence) transformation()  {}
func (repeat) transformation()    {}
func (cycle) transformation()     {}

func (t translate) Join(next Transformation) Transformation { return JoinTransforms(t, next) }
func (t rotate) Join(next Transformation) Transformation    { return JoinTransforms(t, next) }
func (t scale) Join(next Transformation) Transformation     { return JoinTransforms(t, next) }
func (t sequence) Join(next Transformation) Transformation  { return JoinTransforms(t, next) }
func (t repeat) Join(next Transformation) Transformation    { return JoinTransforms(t, next) }
func (t cycle) Join(next Transformation) Transformation     { return JoinTransforms(t, next) }

// Translate returns a transformation that moves a shape by x and y.
func Translate(x, y float64) Transformation {
	return translate{x, y}
}

// Rotate returns a transformation that rotates a shape clockwise by angle
// degrees around the origin.
func Rotate(angle float64) Transformation {
	return rotate{angle: angle}
}

// RotateAround returns a transformation that rotates a shape clockwise by
// angle degrees around the anchor point.
func RotateAround(angle float64, anchor Point) Transformation {
	return rotate{angle, anchor}
}

// Scale returns a transformation that scales a shape by sx horizontally and
// sy vertically. When sy is omitted the scale is uniform: Scale(2) is the
// same transformation as Scale(2, 2).
func Scale(sx float64, sy ...float64) Transformation {
	if 1 < len(sy) {
		valuePanic("scale: at most one vertical scale factor, got %d", len(sy))
	}
	t := scale{sx, sx}
	if len(sy) == 1 {
		t.sy = sy[0]
	}
	return t
}

// Repeat returns a higher-order transformation that applies t to a shape
// n-1 times successively and groups the original together with every
// intermediate result, n shapes in total, in generation order. A count
// below one is a construction error.
func Repeat(n int, t Transformation) Transformation {
	if n < 1 {
		valuePanic("repeat: count must be at least 1, got %d", n)
	}
	return repeat{n, t}
}

// CycleOptions holds the parameters of a Cycle transformation. The zero
// value of each field selects its default.
type CycleOptions struct {
	N      int     // number of copies, default 18
	Anchor Point   // rotation anchor, default origin
	Angle  float64 // rotation step in degrees, default 360/N
	Scale  float64 // compounding per-copy scale factor, 0 disables scaling
}

// DefaultCycleOptions generates a full revolution of 18 rotated copies
// around the origin.
var DefaultCycleOptions = CycleOptions{N: 18}

// Cycle returns a higher-order transformation that generates n rotated
// copies of a shape and groups them: the i-th copy is rotated by i times the
// angle step around the anchor, so the first copy is unrotated and the
// default angle of 360/n spreads the copies over a full revolution. When a
// scale factor s is set, the i-th copy is additionally scaled by s^i so that
// consecutive copies shrink or grow geometrically.
//
// A nil opts uses DefaultCycleOptions. A negative count is a construction
// error; N == 1 yields a single-member group.
func Cycle(opts *CycleOptions) Transformation {
	if opts == nil {
		defaultOptions := DefaultCycleOptions
		opts = &defaultOptions
	}
	n := opts.N
	if n == 0 {
		n = DefaultCycleOptions.N
	} else if n < 1 {
		valuePanic("cycle: count must be at least 1, got %d", n)
	}
	angle := opts.Angle
	if angle == 0.0 {
		angle = 360.0 / float64(n)
	}
	return cycle{n: n, angle: angle, anchor: opts.Anchor, s: opts.Scale}
}

// JoinTransforms composes t1 followed by t2 into a single transformation.
// Applying the result to a shape is observably identical to applying t1 and
// then t2. Joining onto an existing sequence appends, preserving order.
// Repeat and Cycle have no transform attribute form and cannot be joined.
func JoinTransforms(t1, t2 Transformation) Transformation {
	requirePlain(t1)
	requirePlain(t2)
	if seq, ok := t1.(sequence); ok {
		parts := make([]Transformation, len(seq.parts), len(seq.parts)+1)
		copy(parts, seq.parts)
		return sequence{append(parts, t2)}
	}
	return sequence{[]Transformation{t1, t2}}
}

func requirePlain(t Transformation) {
	switch t.(type) {
	case translate, rotate, scale, sequence:
	case repeat, cycle:
		compositionPanic("cannot join higher-order transformation %T", t)
	default:
		panic(fmt.Sprintf("unhandled transformation %T", t))
	}
}

// ApplyTransform applies a transformation to a shape, returning a new shape
// and leaving the original untouched. Plain transformations accumulate onto
// any transform the shape already carries; Repeat and Cycle return the group
// of generated shapes.
func ApplyTransform(shape *Shape, t Transformation) *Shape {
	switch t := t.(type) {
	case translate, rotate, scale, sequence:
		d := shape.derive()
		if shape.transform != nil {
			d.transform = JoinTransforms(shape.transform, t)
		} else {
			d.transform = t
		}
		return d
	case repeat:
		shapes := make([]*Shape, 0, t.n)
		shapes = append(shapes, shape)
		for i := 1; i < t.n; i++ {
			shape = ApplyTransform(shape, t.t)
			shapes = append(shapes, shape)
		}
		return Group(shapes)
	case cycle:
		shapes := make([]*Shape, t.n)
		for i := 0; i < t.n; i++ {
			shapes[i] = ApplyTransform(shape, RotateAround(float64(i)*t.angle, t.anchor))
			if t.s != 0.0 {
				shapes[i] = ApplyTransform(shapes[i], Scale(math.Pow(t.s, float64(i))))
			}
		}
		return Group(shapes)
	default:
		panic(fmt.Sprintf("unhandled transformation %T", t))
	}
}

// transformString serializes a transformation into the SVG transform
// attribute syntax. Sequences join their parts with a single space in
// composition order, earlier parts being the outer transforms per the SVG
// transform list semantics.
func transformString(t Transformation) string {
	switch t := t.(type) {
	case translate:
		return fmt.Sprintf("translate(%v %v)", num(t.x), num(t.y))
	case rotate:
		if t.anchor.IsZero() {
			return fmt.Sprintf("rotate(%v)", num(t.angle))
		}
		return fmt.Sprintf("rotate(%v %v %v)", num(t.angle), num(t.anchor.X), num(t.anchor.Y))
	case scale:
		return fmt.Sprintf("scale(%v %v)", num(t.sx), num(t.sy))
	case sequence:
		parts := make([]string, len(t.parts))
		for i, part := range t.parts {
			parts[i] = transformString(part)
		}
		return strings.Join(parts, " ")
	default:
		panic(fmt.Sprintf("cannot serialize transformation %T", t))
	}
}
