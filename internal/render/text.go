package render

import "strings"

// Text renders cells as a glyph-ramp text frame, one grid row per
// line. Cell values past the last glyph clamp to it. An empty ramp or
// a width below 1 yields an empty string.
func Text(cells []uint8, w int, glyphs string) string {
	if w < 1 || len(glyphs) == 0 {
		return ""
	}
	last := len(glyphs) - 1
	var b strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			b.WriteByte('\n')
		}
		idx := int(c)
		if idx > last {
			idx = last
		}
		b.WriteByte(glyphs[idx])
	}
	return b.String()
}
