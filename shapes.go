package joy

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

type optionField int

const (
	optCenter optionField = 1 << iota
	optRadius
	optWidth
	optHeight
	optStart
	optEnd
)

var optionNames = map[optionField]string{
	optCenter: "Center",
	optRadius: "Radius",
	optWidth:  "Width",
	optHeight: "Height",
	optStart:  "Start",
	optEnd:    "End",
}

func (f optionField) String() string {
	names := []string{}
	for opt := optCenter; opt <= optEnd; opt <<= 1 {
		if f&opt != 0 {
			names = append(names, optionNames[opt])
		}
	}
	return strings.Join(names, ",")
}

type params struct {
	set    optionField
	center Point
	radius float64
	width  float64
	height float64
	start  Point
	end    Point
	attrs  []Attribute
}

// Option configures a shape constructor. Each constructor documents the
// options it understands; passing any other semantic option is a
// construction error. Attr options are accepted by every constructor.
type Option func(*params)

// Center sets the center point of a circle, ellipse or rectangle.
func Center(p Point) Option {
	return func(ps *params) { ps.center = p; ps.set |= optCenter }
}

// Radius sets the radius of a circle.
func Radius(r float64) Option {
	return func(ps *params) { ps.radius = r; ps.set |= optRadius }
}

// Width sets the width of an ellipse or rectangle.
func Width(w float64) Option {
	return func(ps *params) { ps.width = w; ps.set |= optWidth }
}

// Height sets the height of an ellipse or rectangle.
func Height(h float64) Option {
	return func(ps *params) { ps.height = h; ps.set |= optHeight }
}

// Start sets the starting point of a line.
func Start(p Point) Option {
	return func(ps *params) { ps.start = p; ps.set |= optStart }
}

// End sets the ending point of a line.
func End(p Point) Option {
	return func(ps *params) { ps.end = p; ps.set |= optEnd }
}

// Attr sets an extra attribute on the emitted SVG node, giving access to
// everything SVG can express without dedicated API surface. The value may be
// a string, any integer or float type, a bool, a color.Color (rendered as a
// CSS color), a fmt.Stringer, or nil to declare a null attribute that is
// omitted from the output. Any other type is a construction error.
func Attr(key string, value interface{}) Option {
	v := formatValue(key, value)
	return func(ps *params) { ps.attrs = append(ps.attrs, Attribute{key, v}) }
}

func formatValue(key string, value interface{}) *string {
	if value == nil {
		return nil
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case float64:
		s = num(v).String()
	case float32:
		s = num(v).String()
	case int:
		s = strconv.FormatInt(int64(v), 10)
	case int8:
		s = strconv.FormatInt(int64(v), 10)
	case int16:
		s = strconv.FormatInt(int64(v), 10)
	case int32:
		s = strconv.FormatInt(int64(v), 10)
	case int64:
		s = strconv.FormatInt(v, 10)
	case uint:
		s = strconv.FormatUint(uint64(v), 10)
	case uint8:
		s = strconv.FormatUint(uint64(v), 10)
	case uint16:
		s = strconv.FormatUint(uint64(v), 10)
	case uint32:
		s = strconv.FormatUint(uint64(v), 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case bool:
		s = strconv.FormatBool(v)
	case color.Color:
		s = toCSSColor(v)
	case fmt.Stringer:
		s = v.String()
	default:
		valuePanic("attribute %q: unsupported value type %T", key, value)
	}
	return &s
}

func gather(tag string, allowed optionField, opts []Option) params {
	var p params
	for _, opt := range opts {
		opt(&p)
	}
	if extra := p.set &^ allowed; extra != 0 {
		valuePanic("%s: unsupported option %v", tag, extra)
	}
	return p
}

func numValue(f float64) *string {
	s := num(f).String()
	return &s
}

// Circle returns a circle shape. The center defaults to the origin and the
// radius to 100.
//
//	c := joy.Circle(joy.Center(joy.Point{100, 100}), joy.Radius(50))
func Circle(opts ...Option) *Shape {
	p := gather("circle", optCenter|optRadius, opts)
	radius := 100.0
	if p.set&optRadius != 0 {
		radius = p.radius
	}
	attrs := []Attribute{
		{"cx", numValue(p.center.X)},
		{"cy", numValue(p.center.Y)},
		{"r", numValue(radius)},
	}
	return &Shape{tag: "circle", attrs: append(attrs, p.attrs...)}
}

// Ellipse returns an ellipse shape. The center defaults to the origin, the
// width to 200 and the height to 100.
func Ellipse(opts ...Option) *Shape {
	p := gather("ellipse", optCenter|optWidth|optHeight, opts)
	width, height := 200.0, 100.0
	if p.set&optWidth != 0 {
		width = p.width
	}
	if p.set&optHeight != 0 {
		height = p.height
	}
	attrs := []Attribute{
		{"cx", numValue(p.center.X)},
		{"cy", numValue(p.center.Y)},
		{"rx", numValue(width / 2.0)},
		{"ry", numValue(height / 2.0)},
	}
	return &Shape{tag: "ellipse", attrs: append(attrs, p.attrs...)}
}

// Rectangle returns a rectangle shape. The center defaults to the origin and
// the width and height to 200.
func Rectangle(opts ...Option) *Shape {
	p := gather("rect", optCenter|optWidth|optHeight, opts)
	width, height := 200.0, 200.0
	if p.set&optWidth != 0 {
		width = p.width
	}
	if p.set&optHeight != 0 {
		height = p.height
	}
	attrs := []Attribute{
		{"x", numValue(p.center.X - width/2.0)},
		{"y", numValue(p.center.Y - height/2.0)},
		{"width", numValue(width)},
		{"height", numValue(height)},
	}
	return &Shape{tag: "rect", attrs: append(attrs, p.attrs...)}
}

// Line returns a line shape connecting two points. The start defaults to
// (-100,0) and the end to (100,0).
func Line(opts ...Option) *Shape {
	p := gather("line", optStart|optEnd, opts)
	start, end := Point{-100.0, 0.0}, Point{100.0, 0.0}
	if p.set&optStart != 0 {
		start = p.start
	}
	if p.set&optEnd != 0 {
		end = p.end
	}
	attrs := []Attribute{
		{"x1", numValue(start.X)},
		{"y1", numValue(start.Y)},
		{"x2", numValue(end.X)},
		{"y2", numValue(end.Y)},
	}
	return &Shape{tag: "line", attrs: append(attrs, p.attrs...)}
}

// Group returns a container shape holding the given shapes as its children,
// drawn in order so that later shapes paint over earlier ones. Nested groups
// are preserved, not flattened.
func Group(shapes []*Shape, opts ...Option) *Shape {
	p := gather("g", 0, opts)
	return &Shape{
		tag:      "g",
		attrs:    p.attrs,
		children: append([]*Shape(nil), shapes...),
	}
}

// Combine combines multiple shapes into a single shape by overlaying them in
// order.
func Combine(shapes ...*Shape) *Shape {
	return Group(shapes)
}
