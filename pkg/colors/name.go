package colors

// Name maps an HSL color to a human color name. It is a pure function:
// grayscale bands apply below the saturation floor, otherwise fixed
// hue-degree bands pick the base name and lightness/saturation thresholds
// add a Light/Dark/Bright prefix.
func Name(c HSL) string {
	if c.S < 0.15 {
		switch {
		case c.L > 0.9:
			return "White"
		case c.L > 0.7:
			return "Light Gray"
		case c.L > 0.3:
			return "Gray"
		case c.L > 0.12:
			return "Dark Gray"
		default:
			return "Black"
		}
	}

	var base string
	switch {
	case c.H < 15:
		base = "Red"
	case c.H < 45:
		base = "Orange"
	case c.H < 75:
		base = "Yellow"
	case c.H < 165:
		base = "Green"
	case c.H < 200:
		base = "Cyan"
	case c.H < 260:
		base = "Blue"
	case c.H < 320:
		base = "Purple"
	case c.H < 345:
		base = "Pink"
	default:
		base = "Red"
	}

	switch {
	case c.L > 0.8:
		return "Light " + base
	case c.L < 0.3:
		return "Dark " + base
	case c.S > 0.8:
		return "Bright " + base
	default:
		return base
	}
}
