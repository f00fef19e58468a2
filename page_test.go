package ux3270

import "testing"

func TestPaginatorBounds(t *testing.T) {
	p := Paginator{Total: 20, PageSize: 9}
	if p.Pages() != 3 {
		t.Fatalf("pages: got %d, want 3", p.Pages())
	}

	start, end := p.Bounds()
	if start != 0 || end != 9 {
		t.Errorf("page 0: got [%d,%d), want [0,9)", start, end)
	}

	p.Page = 2
	start, end = p.Bounds()
	if start != 18 || end != 20 {
		t.Errorf("page 2: got [%d,%d), want [18,20)", start, end)
	}
}

func TestPaginatorNavigation(t *testing.T) {
	p := Paginator{Total: 20, PageSize: 9}
	if p.Back() {
		t.Error("Back succeeded on first page")
	}
	if !p.Fwd() || p.Page != 1 {
		t.Errorf("Fwd: page %d, want 1", p.Page)
	}
	p.Page = 2
	if p.Fwd() {
		t.Error("Fwd succeeded on last page")
	}
	if !p.CanBack() || p.CanFwd() {
		t.Error("last page: want CanBack and not CanFwd")
	}
}

func TestPaginatorSinglePage(t *testing.T) {
	p := Paginator{Total: 5, PageSize: 9}
	if p.Multi() {
		t.Error("5 items in a 9-slot page reported as multi-page")
	}
	if p.Pages() != 1 {
		t.Errorf("pages: got %d, want 1", p.Pages())
	}
}

func TestPaginatorPageOf(t *testing.T) {
	p := Paginator{Total: 20, PageSize: 9}
	for i, want := range map[int]int{0: 0, 8: 0, 9: 1, 17: 1, 18: 2, 19: 2} {
		if got := p.PageOf(i); got != want {
			t.Errorf("PageOf(%d): got %d, want %d", i, got, want)
		}
	}
}

func TestFormPageSize(t *testing.T) {
	if got := formPageSize(24); got != 9 {
		t.Errorf("24 rows: got %d field pairs, want 9", got)
	}
	if got := formPageSize(6); got < 1 {
		t.Errorf("tiny terminal: got %d, want at least 1", got)
	}
}

func TestListPageSize(t *testing.T) {
	if got := listPageSize(24, tableHeaderLines, tableFooterLines); got != 16 {
		t.Errorf("table on 24 rows: got %d, want 16", got)
	}
	if got := listPageSize(24, workWithHeaderLines, workWithFooterLines); got != 14 {
		t.Errorf("work-with on 24 rows: got %d, want 14", got)
	}
	if got := listPageSize(24, tabularHeaderLines, tabularFooterLines); got != 15 {
		t.Errorf("tabular on 24 rows: got %d, want 15", got)
	}
	if got := listPageSize(5, 7, 3); got != 1 {
		t.Errorf("tiny terminal: got %d, want 1", got)
	}
}
