package joy

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits at which numbers are
// truncated in the SVG output.
var Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// Options holds the canvas size for rendering. The origin (0,0) sits at the
// center of the canvas.
type Options struct {
	Width  float64
	Height float64
}

// DefaultOptions is the default canvas of 300 by 300 units.
var DefaultOptions = Options{300.0, 300.0}

type svgWriter struct {
	w   io.Writer
	err error
}

func (w *svgWriter) printf(format string, args ...interface{}) {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, format, args...)
	}
}

func (w *svgWriter) escape(s string) {
	if w.err == nil {
		w.err = xml.EscapeText(w.w, []byte(s))
	}
}

// WriteSVG renders the given shapes as an SVG image to w. A nil opts uses
// DefaultOptions; a zero width or height falls back to its default. The
// viewBox is centered at the origin so that (0,0) is the middle of the
// canvas.
func WriteSVG(w io.Writer, opts *Options, shapes ...*Shape) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	width, height := opts.Width, opts.Height
	if width == 0.0 {
		width = DefaultOptions.Width
	}
	if height == 0.0 {
		height = DefaultOptions.Height
	}

	sw := &svgWriter{w: w}
	sw.printf("<svg width=\"%v\" height=\"%v\" viewBox=\"%v %v %v %v\" fill=\"none\" stroke=\"black\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		num(width), num(height), num(-width/2.0), num(-height/2.0), num(width), num(height))
	for _, shape := range shapes {
		sw.writeShape(shape, 1)
	}
	sw.printf("</svg>\n")
	return sw.err
}

// RenderSVG renders the given shapes as an SVG image and returns it as a
// string. A nil opts uses DefaultOptions.
func RenderSVG(opts *Options, shapes ...*Shape) string {
	sb := &strings.Builder{}
	WriteSVG(sb, opts, shapes...)
	return sb.String()
}

// writeShape emits a shape and its children depth-first in pre-order, one
// element per line, indented two spaces per nesting level.
func (w *svgWriter) writeShape(s *Shape, indent int) {
	w.printf("%s", strings.Repeat("  ", indent))
	w.writeTag(s, len(s.children) == 0)
	w.printf("\n")
	if 0 < len(s.children) {
		for _, child := range s.children {
			w.writeShape(child, indent+1)
		}
		w.printf("%s</%s>\n", strings.Repeat("  ", indent), s.tag)
	}
}

func (w *svgWriter) writeTag(s *Shape, selfClose bool) {
	w.printf("<%s", s.tag)
	attrs := s.attrs
	if s.transform != nil {
		ts := transformString(s.transform)
		attrs = append(append([]Attribute(nil), attrs...), Attribute{"transform", &ts})
	}
	for _, attr := range attrs {
		if attr.Value == nil {
			continue
		}
		w.printf(" %s=\"", strings.ReplaceAll(attr.Key, "_", "-"))
		w.escape(*attr.Value)
		w.printf("\"")
	}
	if selfClose {
		w.printf(" />")
	} else {
		w.printf(">")
	}
}
