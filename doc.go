// Package joy is a tiny creative coding library for building SVG images
// declaratively.
//
// Shapes are immutable values constructed by Circle, Ellipse, Rectangle and
// Line, combined with Combine or Add, and transformed by applying Translate,
// Rotate and Scale transformations. Every operation returns a new shape and
// never modifies its inputs, so shape values can be shared and reused freely.
//
//	c := joy.Circle(joy.Radius(50))
//	c2 := c.Apply(joy.Translate(100, 0))
//	fmt.Println(joy.RenderSVG(nil, c, c2))
//
// Shapes are thin wrappers over SVG nodes. Attributes not covered by the
// constructor options can be set with Attr, which gives access to the full
// expressive power of SVG:
//
//	r := joy.Rectangle(joy.Attr("stroke", "red"), joy.Attr("stroke_width", 2))
//
// The higher-order Repeat and Cycle transformations apply a transformation
// repeatedly and collect all intermediate shapes into a group:
//
//	flower := joy.Rectangle().Apply(joy.Cycle(nil))
//	spiral := joy.Line().Apply(joy.Repeat(18, joy.Rotate(10).Join(joy.Scale(0.9))))
//
// The canvas has its origin (0,0) at the center and is 300 by 300 units by
// default. The y axis points down, following the SVG convention.
package joy
