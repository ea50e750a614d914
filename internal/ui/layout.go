package ui

import "github.com/five82/bookshelf/internal/editor"

// Screen rows, counted from the top of the alt screen.
const (
	headerRow    = 0
	formRow      = 2
	tableHeadRow = 4
	tableSepRow  = 5
	firstBookRow = 6
	footerRows   = 2
)

const (
	marginX       = 1
	colGap        = 2
	yearColWidth  = 12
	minTitleWidth = 10
	maxFormTitle  = 40
	formYearWidth = 8

	formTitleLabel = "Title: "
	formYearLabel  = "Year: "
	addLabel       = "[ Add Book ]"
	deleteLabel    = "[Delete]"

	defaultWidth  = 80
	defaultHeight = 24
)

// layout places every clickable region of the screen. View and mouse hit
// testing share it so what is drawn is what gets clicked.
type layout struct {
	width, height int

	formTitle editor.Rect
	formYear  editor.Rect
	addButton editor.Rect

	titleX, titleW int
	yearX, yearW   int
	deleteX        int

	visible int
	offset  int
}

func computeLayout(width, height, offset int) layout {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	l := layout{width: width, height: height, offset: max(offset, 0)}

	fixed := marginX + len(formTitleLabel) + colGap + len(formYearLabel) + formYearWidth + colGap + len(addLabel) + marginX
	formTitleW := min(max(width-fixed, minTitleWidth), maxFormTitle)
	x := marginX + len(formTitleLabel)
	l.formTitle = editor.Rect{X: x, Y: formRow, W: formTitleW, H: 1}
	x += formTitleW + colGap + len(formYearLabel)
	l.formYear = editor.Rect{X: x, Y: formRow, W: formYearWidth, H: 1}
	x += formYearWidth + colGap
	l.addButton = editor.Rect{X: x, Y: formRow, W: len(addLabel), H: 1}

	l.titleX = marginX
	l.titleW = max(width-2*marginX-2*colGap-yearColWidth-len(deleteLabel), minTitleWidth)
	l.yearX = l.titleX + l.titleW + colGap
	l.yearW = yearColWidth
	l.deleteX = l.yearX + l.yearW + colGap

	l.visible = max(height-firstBookRow-footerRows, 0)
	return l
}

// rowY returns the screen row of book index i, or -1 when it is scrolled out.
func (l layout) rowY(i int) int {
	if i < l.offset || i >= l.offset+l.visible {
		return -1
	}
	return firstBookRow + i - l.offset
}

// cellRect returns the region of field f of book index i.
func (l layout) cellRect(i int, f editor.Field) editor.Rect {
	y := l.rowY(i)
	if y < 0 {
		return editor.Rect{}
	}
	if f == editor.FieldYear {
		return editor.Rect{X: l.yearX, Y: y, W: l.yearW, H: 1}
	}
	return editor.Rect{X: l.titleX, Y: y, W: l.titleW, H: 1}
}

// deleteRect returns the region of the delete button of book index i.
func (l layout) deleteRect(i int) editor.Rect {
	y := l.rowY(i)
	if y < 0 {
		return editor.Rect{}
	}
	return editor.Rect{X: l.deleteX, Y: y, W: len(deleteLabel), H: 1}
}

type hitKind int

const (
	hitNone hitKind = iota
	hitFormTitle
	hitFormYear
	hitAdd
	hitTitle
	hitYear
	hitDelete
)

type hit struct {
	kind hitKind
	row  int
}

// hitTest resolves a press at (x, y) against a list of n books.
func (l layout) hitTest(x, y, n int) hit {
	switch {
	case l.formTitle.Contains(x, y):
		return hit{kind: hitFormTitle}
	case l.formYear.Contains(x, y):
		return hit{kind: hitFormYear}
	case l.addButton.Contains(x, y):
		return hit{kind: hitAdd}
	}
	if y < firstBookRow {
		return hit{}
	}
	i := l.offset + y - firstBookRow
	if i >= n || l.rowY(i) < 0 {
		return hit{}
	}
	switch {
	case l.cellRect(i, editor.FieldTitle).Contains(x, y):
		return hit{kind: hitTitle, row: i}
	case l.cellRect(i, editor.FieldYear).Contains(x, y):
		return hit{kind: hitYear, row: i}
	case l.deleteRect(i).Contains(x, y):
		return hit{kind: hitDelete, row: i}
	}
	return hit{}
}

// scrollTo returns the offset that keeps cursor on screen.
func (l layout) scrollTo(cursor, n int) int {
	off := l.offset
	if l.visible <= 0 {
		return 0
	}
	if cursor < off {
		off = cursor
	}
	if cursor >= off+l.visible {
		off = cursor - l.visible + 1
	}
	return max(min(off, n-l.visible), 0)
}
