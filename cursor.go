package resumark

// lineCursor walks lines top to bottom with a single line of lookahead.
type lineCursor struct {
	lines []Line
	pos   int
}

func newLineCursor(lines []Line) *lineCursor {
	return &lineCursor{lines: lines}
}

func (c *lineCursor) next() (Line, bool) {
	if c.pos >= len(c.lines) {
		return Line{}, false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// pushBack returns the most recently consumed line to the front of the input.
func (c *lineCursor) pushBack() {
	if c.pos > 0 {
		c.pos--
	}
}
