package joy

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.That(t, p.Equals(Point{3, 4}))
	test.That(t, !p.Equals(Point{3, 5}))
	test.That(t, !p.IsZero())
	test.That(t, Point{}.IsZero())
	test.T(t, p.Add(Point{1, 2}), Point{4, 6})
	test.T(t, p.Sub(Point{1, 2}), Point{2, 2})
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.T(t, p.Neg(), Point{-3, -4})
	test.String(t, p.String(), "(3,4)")
}
