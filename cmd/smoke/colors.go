package main

// sciColor maps val within [minVal, maxVal] onto a four-segment
// blue→cyan→green→yellow ramp. A degenerate range renders black.
func sciColor(val, minVal, maxVal float32) (r, g, b uint8) {
	d := maxVal - minVal
	if d <= 0 {
		return 0, 0, 0
	}
	t := min(max((val-minVal)/d, 0), 0.9999)

	seg := int(t * 4)
	s := t*4 - float32(seg)

	var fr, fg, fb float32
	switch seg {
	case 0:
		fr, fg, fb = 0, s, 1
	case 1:
		fr, fg, fb = 0, 1, 1-s
	case 2:
		fr, fg, fb = s, 1, 0
	case 3:
		fr, fg, fb = 1, 1-s, 0
	}
	return uint8(255 * fr), uint8(255 * fg), uint8(255 * fb)
}
