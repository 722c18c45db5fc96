package feed

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		count      int64
		perPage    int
		requested  string
		wantNumber int
		wantPages  int
	}{
		{"first page", 13, 10, "1", 1, 2},
		{"last page", 13, 10, "2", 2, 2},
		{"overflow clamps to last", 13, 10, "99", 2, 2},
		{"zero clamps to first", 13, 10, "0", 1, 2},
		{"negative clamps to first", 13, 10, "-3", 1, 2},
		{"garbage means first", 13, 10, "abc", 1, 2},
		{"missing means first", 13, 10, "", 1, 2},
		{"empty set still has one page", 0, 10, "5", 1, 1},
		{"exact multiple", 20, 10, "3", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := Paginate(tt.count, tt.perPage, tt.requested)
			if pg.Number != tt.wantNumber {
				t.Errorf("Number = %d, want %d", pg.Number, tt.wantNumber)
			}
			if pg.NumPages != tt.wantPages {
				t.Errorf("NumPages = %d, want %d", pg.NumPages, tt.wantPages)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	pg := Paginate(25, 10, "3")
	if got := pg.Offset(); got != 20 {
		t.Errorf("Offset = %d, want 20", got)
	}
	if !pg.HasPrev() || pg.HasNext() {
		t.Errorf("HasPrev = %v, HasNext = %v on the last page", pg.HasPrev(), pg.HasNext())
	}
}
