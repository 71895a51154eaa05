package paging

import "testing"

func docs(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginateTwelveItems(t *testing.T) {
	items := docs(12)
	tests := []struct {
		number    int
		wantNum   int
		wantItems []int
		prev      bool
		next      bool
		indicator string
	}{
		{1, 1, []int{1, 2, 3, 4, 5}, false, true, "1/3"},
		{2, 2, []int{6, 7, 8, 9, 10}, true, true, "2/3"},
		{3, 3, []int{11, 12}, true, false, "3/3"},
		{99, 3, []int{11, 12}, true, false, "3/3"},
		{0, 1, []int{1, 2, 3, 4, 5}, false, true, "1/3"},
		{-4, 1, []int{1, 2, 3, 4, 5}, false, true, "1/3"},
	}
	for _, tt := range tests {
		p := Paginate(items, 5, tt.number)
		if p.Number != tt.wantNum || p.Total != 3 {
			t.Errorf("page %d: Number/Total = %d/%d, want %d/3", tt.number, p.Number, p.Total, tt.wantNum)
		}
		if len(p.Items) != len(tt.wantItems) {
			t.Errorf("page %d: %d items, want %d", tt.number, len(p.Items), len(tt.wantItems))
			continue
		}
		for i := range p.Items {
			if p.Items[i] != tt.wantItems[i] {
				t.Errorf("page %d: item %d = %d, want %d", tt.number, i, p.Items[i], tt.wantItems[i])
			}
		}
		if p.HasPrev() != tt.prev || p.HasNext() != tt.next {
			t.Errorf("page %d: prev/next = %v/%v, want %v/%v", tt.number, p.HasPrev(), p.HasNext(), tt.prev, tt.next)
		}
		if p.Indicator() != tt.indicator {
			t.Errorf("page %d: indicator = %q, want %q", tt.number, p.Indicator(), tt.indicator)
		}
		if !p.Paged() {
			t.Errorf("page %d: expected controls for a multi-page list", tt.number)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]int{}, 5, 3)
	if p.Number != 1 || p.Total != 1 || len(p.Items) != 0 {
		t.Errorf("empty list: got %+v", p)
	}
	if p.Paged() || p.HasPrev() || p.HasNext() {
		t.Error("empty list should have no page controls")
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	p := Paginate(docs(10), 5, 2)
	if p.Total != 2 || len(p.Items) != 5 || p.HasNext() {
		t.Errorf("got %+v", p)
	}
}

func TestPaginateDefaultSize(t *testing.T) {
	p := Paginate(docs(7), 0, 1)
	if len(p.Items) != DefaultPageSize || p.Total != 2 {
		t.Errorf("got %d items over %d pages", len(p.Items), p.Total)
	}
}

func TestPaginateDoesNotAliasAppend(t *testing.T) {
	items := docs(12)
	p := Paginate(items, 5, 1)
	_ = append(p.Items, 100)
	if items[5] != 6 {
		t.Errorf("append through a page modified the source list: %v", items)
	}
}
