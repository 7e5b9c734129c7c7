package blit

// Area is an axis-aligned rectangle in pixel coordinates. Both corners
// are inclusive, so a single pixel is {x, y, x, y}.
type Area struct {
	X1, Y1, X2, Y2 int
}

// MakeArea builds an area from a top-left corner and dimensions.
func MakeArea(x, y, w, h int) Area {
	return Area{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// W returns the width of the area in pixels.
func (a Area) W() int { return a.X2 - a.X1 + 1 }

// H returns the height of the area in pixels.
func (a Area) H() int { return a.Y2 - a.Y1 + 1 }

// Size returns the pixel count of the area.
func (a Area) Size() int { return a.W() * a.H() }

// Intersect returns the common part of a and b. The second result is
// false when the areas do not overlap; the returned area is then
// meaningless.
func (a Area) Intersect(b Area) (Area, bool) {
	r := Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	return r, r.X1 <= r.X2 && r.Y1 <= r.Y2
}

// Contains reports whether the point (x, y) lies inside the area.
func (a Area) Contains(x, y int) bool {
	return x >= a.X1 && x <= a.X2 && y >= a.Y1 && y <= a.Y2
}
