package devtools

import "testing"

func TestHistoryAssignsSequence(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		r := h.Add(Report{Pass: i})
		if r.Seq != uint64(i+1) {
			t.Fatalf("Add() seq = %d, want %d", r.Seq, i+1)
		}
	}

	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}

	all := h.Since(0)
	if len(all) != 3 || all[0].Seq != 3 || all[2].Seq != 5 {
		t.Errorf("Since(0) = %+v, want seqs 3..5", all)
	}

	latest, ok := h.Latest()
	if !ok || latest.Pass != 4 {
		t.Errorf("Latest() = %+v, %v", latest, ok)
	}
}

func TestHistorySince(t *testing.T) {
	h := NewHistory(10)
	for i := 0; i < 4; i++ {
		h.Add(Report{Pass: i})
	}

	tests := []struct {
		since uint64
		want  int
	}{
		{0, 4},
		{2, 2},
		{4, 0},
		{99, 0},
	}
	for _, tt := range tests {
		if got := h.Since(tt.since); len(got) != tt.want {
			t.Errorf("Since(%d) returned %d reports, want %d", tt.since, len(got), tt.want)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(0)
	if _, ok := h.Latest(); ok {
		t.Error("Latest() ok on empty history")
	}
	if got := h.Since(0); len(got) != 0 {
		t.Errorf("Since(0) = %v", got)
	}
}
