package views

// Paginator keeps a cursor and the window of list rows that is visible
// around it. The window scrolls one row at a time as the cursor moves.
type Paginator struct {
	pageSize   int
	offset     int
	cursor     int
	totalItems int
}

// NewPaginator creates a new paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetPageSize changes how many rows are visible at once
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		size = 1
	}
	p.pageSize = size
	p.scrollToCursor()
}

// SetTotal sets the total number of items, clamping the cursor
func (p *Paginator) SetTotal(total int) {
	p.totalItems = max(total, 0)
	p.SetCursor(p.cursor)
}

// Total returns the number of items
func (p *Paginator) Total() int {
	return p.totalItems
}

// Cursor returns the current cursor position (absolute index)
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to the item range
func (p *Paginator) SetCursor(pos int) {
	p.cursor = min(max(pos, 0), max(p.totalItems-1, 0))
	p.scrollToCursor()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.SetCursor(p.cursor - 1)
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.totalItems-1 {
		return false
	}
	p.SetCursor(p.cursor + 1)
	return true
}

// PageDown moves the cursor one page forward
func (p *Paginator) PageDown() {
	p.SetCursor(p.cursor + p.pageSize)
}

// PageUp moves the cursor one page back
func (p *Paginator) PageUp() {
	p.SetCursor(p.cursor - p.pageSize)
}

// VisibleRange returns the start and end indices of the visible rows
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.offset
	end = min(p.offset+p.pageSize, p.totalItems)
	return
}

// HasMore reports whether rows exist below or above the visible window
func (p *Paginator) HasMore() (above, below bool) {
	start, end := p.VisibleRange()
	return start > 0, end < p.totalItems
}

// Reset moves the cursor back to the first item
func (p *Paginator) Reset() {
	p.cursor = 0
	p.offset = 0
}

func (p *Paginator) scrollToCursor() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	} else if p.cursor >= p.offset+p.pageSize {
		p.offset = p.cursor - p.pageSize + 1
	}
	if maxOffset := max(p.totalItems-p.pageSize, 0); p.offset > maxOffset {
		p.offset = maxOffset
	}
}
