package render

// FillCircle draws a filled disc at (x, y). Center and radius truncate to
// whole pixels; a zero radius still marks the center pixel.
func FillCircle(f *Frame, x, y, radius float64, c RGB) {
	cx, cy, r := int(x), int(y), int(radius)
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				f.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// BlendLine draws a one-pixel line from (x0, y0) to (x1, y1), blending c
// over the canvas with the given alpha. Endpoints may lie off the frame.
func BlendLine(f *Frame, x0, y0, x1, y1 float64, c RGB, alpha int) {
	ax, ay := int(x0), int(y0)
	bx, by := int(x1), int(y1)

	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	err := dx + dy
	for {
		f.Blend(ax, ay, c, alpha)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ax += sx
		}
		if e2 <= dx {
			err += dx
			ay += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
