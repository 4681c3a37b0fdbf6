package imaging

// Brighten adds delta to every channel of every pixel, saturating at 0 and
// 255. A negative delta darkens the image.
func Brighten(img *Image, delta int) *Image {
	return mapColors(img, func(c Color) Color {
		return clampColor(int(c.R)+delta, int(c.G)+delta, int(c.B)+delta)
	})
}

// Darken subtracts delta from every channel; it is Brighten(img, -delta).
func Darken(img *Image, delta int) *Image {
	return Brighten(img, -delta)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
