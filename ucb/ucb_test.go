package ucb

import (
	"errors"
	"math"
	"testing"

	"github.com/sw965/mdplan"
)

func TestScoreFavorsLessVisitedChild(t *testing.T) {
	lo, err := Score(0, 1.0, 100, 50)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	hi, err := Score(0, 1.0, 100, 1)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if !(hi > lo) {
		t.Fatalf("a less-visited child should score higher: hi=%v lo=%v", hi, lo)
	}
}

func TestScoreZeroExplorationIsJustQ(t *testing.T) {
	s, err := Score(3.5, 0, 10, 2)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(s-3.5) > 1e-9 {
		t.Fatalf("c=0 should return q unchanged, got %v", s)
	}
}

func TestScoreRejectsZeroN(t *testing.T) {
	_, err := Score(0, 1.0, 10, 0)
	if !errors.Is(err, mdplan.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestScoreRejectsZeroTotalN(t *testing.T) {
	_, err := Score(0, 1.0, 0, 1)
	if !errors.Is(err, mdplan.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestScoreRejectsNegativeC(t *testing.T) {
	_, err := Score(0, -1.0, 10, 1)
	if !errors.Is(err, mdplan.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
