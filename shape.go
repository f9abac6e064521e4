package joy

import (
	"fmt"
	"io"
	"strings"
)

// Attribute is a single named attribute of a Shape. A nil Value declares the
// attribute as null: it stays in the attribute list but is omitted from the
// rendered output. Underscores in the key are rendered as hyphens.
type Attribute struct {
	Key   string
	Value *string
}

// Shape is an immutable node in the shape tree: an SVG tag with an ordered
// list of attributes, optionally a list of child shapes, and optionally an
// attached transformation. A shape with children is a container and carries
// no geometry of its own; a shape without children is a leaf.
//
// Shapes are never modified after construction. Combining or transforming a
// shape returns a new shape and leaves the original untouched.
type Shape struct {
	tag       string
	attrs     []Attribute
	children  []*Shape
	transform Transformation
}

// derive returns a copy of the shape with its own attribute and children
// lists, so that the copy can take a new transform without sharing mutable
// state with the original.
func (s *Shape) derive() *Shape {
	d := *s
	d.attrs = append([]Attribute(nil), s.attrs...)
	d.children = append([]*Shape(nil), s.children...)
	return &d
}

// Tag returns the SVG tag name of the shape.
func (s *Shape) Tag() string {
	return s.tag
}

// Attributes returns the shape's attributes in insertion order.
func (s *Shape) Attributes() []Attribute {
	return append([]Attribute(nil), s.attrs...)
}

// Children returns the child shapes of a container shape in drawing order,
// or nil for a leaf.
func (s *Shape) Children() []*Shape {
	if s.children == nil {
		return nil
	}
	return append([]*Shape(nil), s.children...)
}

// Transform returns the transformation attached to the shape, or nil.
func (s *Shape) Transform() Transformation {
	return s.transform
}

// HasAttribute returns true if the attribute was declared on the shape,
// including attributes declared with a null value.
func (s *Shape) HasAttribute(key string) bool {
	for _, attr := range s.attrs {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// GetAttribute returns the textual value of the attribute. It returns a
// *NoAttributeError if the attribute was never declared, and an empty string
// without error if the attribute was declared with a null value.
func (s *Shape) GetAttribute(key string) (string, error) {
	for _, attr := range s.attrs {
		if attr.Key == key {
			if attr.Value == nil {
				return "", nil
			}
			return *attr.Value, nil
		}
	}
	return "", &NoAttributeError{s.tag, key}
}

// fieldKeys maps semantic field names to the underlying attribute keys per
// shape tag, for fields whose name differs from the attribute that stores
// them.
var fieldKeys = map[string]map[string]string{
	"circle": {"radius": "r"},
}

// Field returns the value of a semantic field of the shape, such as "radius"
// of a circle. Fields that are stored under their own name, including extra
// attributes passed to the constructor, resolve directly.
func (s *Shape) Field(name string) (string, error) {
	key := name
	if keys, ok := fieldKeys[s.tag]; ok {
		if k, ok := keys[name]; ok {
			key = k
		}
	}
	return s.GetAttribute(key)
}

// Add combines s with other into a new group, with other drawn on top of s.
func (s *Shape) Add(other *Shape) *Shape {
	return Combine(s, other)
}

// Apply applies a transformation to the shape and returns the result. It is
// the chainable form of ApplyTransform.
func (s *Shape) Apply(t Transformation) *Shape {
	return ApplyTransform(s, t)
}

// SVG renders the shape as an SVG image on the default canvas.
func (s *Shape) SVG() string {
	return RenderSVG(nil, s)
}

// WriteSVG renders the shape as an SVG image on the default canvas to w.
func (s *Shape) WriteSVG(w io.Writer) error {
	return WriteSVG(w, nil, s)
}

func (s *Shape) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "<%s", s.tag)
	for _, attr := range s.attrs {
		if attr.Value == nil {
			fmt.Fprintf(&sb, " %s=null", attr.Key)
		} else {
			fmt.Fprintf(&sb, " %s=%q", attr.Key, *attr.Value)
		}
	}
	sb.WriteByte('>')
	return sb.String()
}
