package world

// HasLineOfSight returns true if nothing occludes the straight line from
// (x0, y0) to (x1, y1). The walk is a standard integer Bresenham along
// the longer axis; walls, closed doors and closed hidden doors strictly
// between the endpoints block, the endpoints themselves are never
// checked. The walk does not wrap around the torus.
func HasLineOfSight(f *Floor, x0, y0, x1, y1 int) bool {
	dx := x1 - x0
	dy := y1 - y0

	if dx == 0 && dy == 0 {
		return true
	}

	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	var stepX, stepY int
	if dx > 0 {
		stepX = 1
	} else if dx < 0 {
		stepX = -1
	}
	if dy > 0 {
		stepY = 1
	} else if dy < 0 {
		stepY = -1
	}

	x, y := x0, y0

	if absDx >= absDy {
		err := 2*absDy - absDx
		for {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy

			if x == x1 && y == y1 {
				return true
			}
			if !f.InBounds(x, y) {
				return false
			}
			if f.Tile(x, y).BlocksSight() {
				return false
			}
		}
	}

	err := 2*absDx - absDy
	for {
		y += stepY
		if err > 0 {
			x += stepX
			err -= 2 * absDy
		}
		err += 2 * absDx

		if x == x1 && y == y1 {
			return true
		}
		if !f.InBounds(x, y) {
			return false
		}
		if f.Tile(x, y).BlocksSight() {
			return false
		}
	}
}
