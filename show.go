package joy

import (
	"io"
	"strings"
)

// frame returns the reference markers drawn by Show: the canvas border and
// the two axes through the origin, in a light color.
func frame() []*Shape {
	w, h := DefaultOptions.Width, DefaultOptions.Height
	return []*Shape{
		Rectangle(Width(w), Height(h), Attr("stroke", "#ddd")),
		Line(Start(Point{-w / 2.0, 0.0}), End(Point{w / 2.0, 0.0}), Attr("stroke", "#ddd")),
		Line(Start(Point{0.0, -h / 2.0}), End(Point{0.0, h / 2.0}), Attr("stroke", "#ddd")),
	}
}

// Show renders the given shapes on the default canvas together with a
// reference frame: the canvas border and the axes at the origin in a light
// color. The returned string is a complete SVG image ready to be handed to
// any display sink.
func Show(shapes ...*Shape) string {
	sb := &strings.Builder{}
	WriteShow(sb, shapes...)
	return sb.String()
}

// WriteShow is the writer form of Show.
func WriteShow(w io.Writer, shapes ...*Shape) error {
	return WriteSVG(w, nil, append(frame(), shapes...)...)
}
