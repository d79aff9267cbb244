package stats

import "testing"

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4, 5})
	if s.Mean != 3 {
		t.Fatalf("mean = %v, want 3", s.Mean)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Fatalf("min/max = %v/%v, want 1/5", s.Min, s.Max)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (EdgeSummary{}) {
		t.Fatalf("expected zero value for empty input, got %+v", s)
	}
}

func TestVisitShare(t *testing.T) {
	shares := VisitShare([]int{1, 3})
	if len(shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(shares))
	}
	if shares[0] != 0.25 || shares[1] != 0.75 {
		t.Fatalf("got shares %v, want [0.25 0.75]", shares)
	}
}

func TestVisitShareAllZero(t *testing.T) {
	if shares := VisitShare([]int{0, 0}); shares != nil {
		t.Fatalf("expected nil for an all-zero visit count, got %v", shares)
	}
}

func TestEntropyBitsUniformPair(t *testing.T) {
	e := EntropyBits([]int{5, 5})
	if e < 0.99 || e > 1.01 {
		t.Fatalf("uniform two-way split should carry 1 bit of entropy, got %v", e)
	}
}

func TestEntropyBitsDegenerate(t *testing.T) {
	if e := EntropyBits([]int{10, 0}); e != 0 {
		t.Fatalf("a fully concentrated distribution should carry 0 entropy, got %v", e)
	}
}
