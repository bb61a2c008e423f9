package query

import "testing"

func TestApplyPaginationBounds(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page, pg := Apply(items, nil, func(a, b int) bool { return a < b }, false, 2, 10)
	if len(page) != 10 {
		t.Fatalf("expected 10 items, got %d", len(page))
	}
	if page[0] != 10 {
		t.Fatalf("expected page to start at 10, got %d", page[0])
	}
	if pg.Total != 25 || pg.TotalPages != 3 {
		t.Fatalf("expected total=25 totalPages=3, got %+v", pg)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("expected both next and prev on page 2, got %+v", pg)
	}
}

func TestApplyOutOfRangePage(t *testing.T) {
	items := []int{1, 2, 3}
	page, pg := Apply(items, nil, nil, false, 9, 10)
	if len(page) != 0 {
		t.Fatalf("expected empty slice for out-of-range page, got %v", page)
	}
	if pg.Total != 3 {
		t.Fatalf("expected total=3, got %d", pg.Total)
	}
	if pg.HasNext {
		t.Fatalf("expected no next page, got %+v", pg)
	}
}

func TestApplyFilterMonotonic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	even := func(v int) bool { return v%2 == 0 }
	big := func(v int) bool { return v > 4 }

	_, one := Apply(items, []func(int) bool{even}, nil, false, 1, 100)
	_, both := Apply(items, []func(int) bool{even, big}, nil, false, 1, 100)
	if both.Total > one.Total {
		t.Fatalf("adding a filter increased count: %d > %d", both.Total, one.Total)
	}
	if one.Total != 4 || both.Total != 2 {
		t.Fatalf("unexpected counts: one=%d both=%d", one.Total, both.Total)
	}
}

func TestApplyDescendingSort(t *testing.T) {
	items := []int{3, 1, 2}
	page, _ := Apply(items, nil, func(a, b int) bool { return a < b }, true, 1, 10)
	if page[0] != 3 || page[2] != 1 {
		t.Fatalf("expected descending order, got %v", page)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := []int{3, 1, 2}
	Apply(items, nil, func(a, b int) bool { return a < b }, false, 1, 10)
	if items[0] != 3 || items[1] != 1 || items[2] != 2 {
		t.Fatalf("input slice mutated: %v", items)
	}
}

func TestMatchAnyField(t *testing.T) {
	if !MatchAnyField("GAS", "Gas Leak Repair", "refill") {
		t.Fatalf("expected case-insensitive substring match")
	}
	if MatchAnyField("pcb", "Gas Leak Repair") {
		t.Fatalf("expected no match")
	}
	if !MatchAnyField("", "anything") {
		t.Fatalf("empty needle must match")
	}
}

func TestContainsFold(t *testing.T) {
	areas := []string{"Boring Road", "Kankarbagh"}
	if !ContainsFold(areas, "kankarbagh") {
		t.Fatalf("expected case-insensitive membership")
	}
	if ContainsFold(areas, "Danapur") {
		t.Fatalf("expected Danapur absent")
	}
}
