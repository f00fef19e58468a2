package ux3270

// Paginator splits an ordered item list into fixed-size pages. It is
// recomputed once per dialog visit (the terminal may have been resized
// between panels) and stable within one.
type Paginator struct {
	Total    int
	PageSize int
	Page     int
}

// Pages returns the page count, at least 1.
func (p Paginator) Pages() int {
	if p.Total <= 0 || p.PageSize <= 0 {
		return 1
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// Bounds returns the half-open item range [start, end) of the current page.
func (p Paginator) Bounds() (start, end int) {
	start = p.Page * p.PageSize
	if start > p.Total {
		start = p.Total
	}
	end = start + p.PageSize
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

// Multi reports whether the items span more than one page. Single-page
// dialogs omit the F7/F8 hints entirely.
func (p Paginator) Multi() bool {
	return p.Total > p.PageSize
}

// CanBack reports whether an earlier page exists.
func (p Paginator) CanBack() bool {
	return p.Page > 0
}

// CanFwd reports whether a later page exists.
func (p Paginator) CanFwd() bool {
	return p.Page < p.Pages()-1
}

// Back moves one page backward if possible.
func (p *Paginator) Back() bool {
	if !p.CanBack() {
		return false
	}
	p.Page--
	return true
}

// Fwd moves one page forward if possible.
func (p *Paginator) Fwd() bool {
	if !p.CanFwd() {
		return false
	}
	p.Page++
	return true
}

// PageOf returns the page containing item index i.
func (p Paginator) PageOf(i int) int {
	if p.PageSize <= 0 || i < 0 {
		return 0
	}
	return i / p.PageSize
}

// formPageSize is the Form chrome budget: title, instruction and blank rows
// on top, message/separator/function-key rows at the bottom, two rows per
// field pair. A 24-row terminal holds 9 pairs.
func formPageSize(height int) int {
	n := (height - 5) / 2
	if n < 1 {
		n = 1
	}
	return n
}

// listPageSize is the data-row budget for grid dialogs given their header
// and footer chrome line counts.
func listPageSize(height, header, footer int) int {
	n := height - header - footer
	if n < 1 {
		n = 1
	}
	return n
}
