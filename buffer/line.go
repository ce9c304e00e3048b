package buffer

// Line is one line of text without its terminator
type Line struct {
	raw    []byte
	render []byte
}

// Raw returns the line content. Callers must not modify it
func (l *Line) Raw() []byte {
	return l.raw
}

// Render returns the tab-expanded display form. Callers must not modify it
func (l *Line) Render() []byte {
	return l.render
}

// Len returns the raw length in bytes
func (l *Line) Len() int {
	return len(l.raw)
}

// RenderLen returns the display width in columns
func (l *Line) RenderLen() int {
	return len(l.render)
}

// update recomputes the render form from raw content
func (l *Line) update(tabStop int) {
	tabs := 0
	for _, c := range l.raw {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(l.raw)+tabs*(tabStop-1))
	for _, c := range l.raw {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
			continue
		}
		render = append(render, c)
	}
	l.render = render
}

// CharToRender maps a raw byte index to its render column.
// A tab advances to the next multiple of tabStop, always by at least one column.
func CharToRender(raw []byte, cx, tabStop int) int {
	if cx > len(raw) {
		cx = len(raw)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		if raw[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RenderToChar maps a render column back to the raw byte index whose span contains it,
// or the line length when rx is past the end.
func RenderToChar(raw []byte, rx, tabStop int) int {
	cur := 0
	for cx := 0; cx < len(raw); cx++ {
		if raw[cx] == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(raw)
}
