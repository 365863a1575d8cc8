package geom

// Color is an RGBA color with 8 bits per channel.
type Color [4]uint8

// Over composites c over base using source-over alpha blending.
func (c Color) Over(base Color) Color {
	sr, sg, sb, sa := uint32(c[0]), uint32(c[1]), uint32(c[2]), uint32(c[3])
	br, bg, bb, ba := uint32(base[0]), uint32(base[1]), uint32(base[2]), uint32(base[3])

	a := sa + ba*(255-sa)/255
	if a == 0 {
		return Color{}
	}
	r := (sr*sa + br*ba*(255-sa)/255) / a
	g := (sg*sa + bg*ba*(255-sa)/255) / a
	b := (sb*sa + bb*ba*(255-sa)/255) / a
	return Color{uint8(r), uint8(g), uint8(b), uint8(a)}
}
