package joy

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestNum(t *testing.T) {
	test.String(t, num(300).String(), "300")
	test.String(t, num(-150).String(), "-150")
	test.String(t, num(0).String(), "0")
	test.String(t, num(0.5).String(), ".5")
	test.String(t, num(1.0/3.0).String(), ".33333333")
}

func TestRenderHeader(t *testing.T) {
	out := RenderSVG(nil, Circle())
	test.That(t, strings.HasPrefix(out, "<svg width=\"300\" height=\"300\" viewBox=\"-150 -150 300 300\" fill=\"none\" stroke=\"black\" xmlns=\"http://www.w3.org/2000/svg\">\n"))
	test.That(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestRenderSize(t *testing.T) {
	out := RenderSVG(&Options{Width: 500, Height: 400}, Circle())
	test.That(t, strings.Contains(out, "width=\"500\" height=\"400\" viewBox=\"-250 -200 500 400\""))
}

// The canvas height carries into the viewBox verbatim; a 300x300 canvas
// yields "-150 -150 300 300".
func TestViewBoxFormula(t *testing.T) {
	out := RenderSVG(&Options{Width: 300, Height: 350}, Circle())
	test.That(t, strings.Contains(out, "viewBox=\"-150 -175 300 350\""))
	out = RenderSVG(nil, Circle())
	test.That(t, strings.Contains(out, "viewBox=\"-150 -150 300 300\""))
}

func TestRenderSizeDefaults(t *testing.T) {
	out := RenderSVG(&Options{Width: 500}, Circle())
	test.That(t, strings.Contains(out, "width=\"500\" height=\"300\" viewBox=\"-250 -150 500 300\""))
}

func TestNullAttributeOmitted(t *testing.T) {
	out := RenderSVG(nil, Circle(Attr("data_extra", nil)))
	test.That(t, !strings.Contains(out, "data-extra"))
	test.That(t, !strings.Contains(out, "data_extra"))
}

func TestEscapeRoundTrip(t *testing.T) {
	value := "a<b&\"c\">"
	out := RenderSVG(nil, Circle(Attr("data_label", value)))
	test.That(t, strings.Contains(out, "data-label=\"a&lt;b&amp;&#34;c&#34;&gt;\""))

	var doc struct {
		XMLName xml.Name `xml:"svg"`
		Circle  struct {
			Label string `xml:"data-label,attr"`
		} `xml:"circle"`
	}
	test.Error(t, xml.Unmarshal([]byte(out), &doc))
	test.String(t, doc.Circle.Label, value)
}

func TestRenderMultipleShapes(t *testing.T) {
	out := RenderSVG(nil, Circle(), Line())
	test.String(t, out, header+
		"  <circle cx=\"0\" cy=\"0\" r=\"100\" />\n"+
		"  <line x1=\"-100\" y1=\"0\" x2=\"100\" y2=\"0\" />\n"+
		"</svg>\n")
}

func TestRenderTransformAttributeLast(t *testing.T) {
	out := RenderSVG(nil, Circle(Attr("stroke", "red")).Apply(Rotate(45)))
	test.That(t, strings.Contains(out, "<circle cx=\"0\" cy=\"0\" r=\"100\" stroke=\"red\" transform=\"rotate(45)\" />"))
}

func TestShow(t *testing.T) {
	out := Show(Circle())
	test.String(t, out, header+
		"  <rect x=\"-150\" y=\"-150\" width=\"300\" height=\"300\" stroke=\"#ddd\" />\n"+
		"  <line x1=\"-150\" y1=\"0\" x2=\"150\" y2=\"0\" stroke=\"#ddd\" />\n"+
		"  <line x1=\"0\" y1=\"-150\" x2=\"0\" y2=\"150\" stroke=\"#ddd\" />\n"+
		"  <circle cx=\"0\" cy=\"0\" r=\"100\" />\n"+
		"</svg>\n")
}
