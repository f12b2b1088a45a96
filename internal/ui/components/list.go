package components

// List is a scroll cursor over n rows. It holds no row data; callers index
// their own slices with Selected and Range.
type List struct {
	Len      int
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List{PageSize: pageSize}
}

// SetLen replaces the row count and resets the cursor.
func (l *List) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	l.Len = n
	l.Cursor = 0
	l.Offset = 0
}

// SetPageSize changes the page size and keeps the cursor on screen.
func (l *List) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	l.PageSize = size
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < l.Len-1 {
		l.Cursor++
		if l.Cursor >= l.Offset+l.PageSize {
			l.Offset++
		}
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		if l.Cursor < l.Offset {
			l.Offset--
		}
	}
}

// Range returns the half-open range of visible rows.
func (l *List) Range() (int, int) {
	if l.Len == 0 {
		return 0, 0
	}
	end := l.Offset + l.PageSize
	if end > l.Len {
		end = l.Len
	}
	return l.Offset, end
}

// Selected returns the index of the selected row.
func (l *List) Selected() int {
	return l.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return absIdx == l.Cursor
}
