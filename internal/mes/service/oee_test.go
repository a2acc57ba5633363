package service

import (
	"math"
	"testing"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
)

// TestComputeOEENoLogs tests that an equipment without logs gets 0, not an error
func TestComputeOEENoLogs(t *testing.T) {
	result := ComputeOEE(nil)

	if result.Availability != 0 || result.Performance != 0 || result.Quality != 0 || result.OEE != 0 {
		t.Fatalf("expected all-zero OEE for empty window, got %+v", result)
	}
	if result.WindowSize != 0 {
		t.Fatalf("expected window size 0, got %d", result.WindowSize)
	}
}

// TestComputeOEESingleShift tests the component formulas on one shift of data
func TestComputeOEESingleShift(t *testing.T) {
	logs := []entity.EquipmentLog{
		{
			PlannedTimeMin: 480,
			BreakdownMin:   0,
			SetupMin:       5,
			PlannedQty:     1100,
			ActualQty:      1105,
			GoodQty:        1100,
		},
	}

	result := ComputeOEE(logs)

	// availability = (480-5)/480 = 98.958... → 99.0
	if result.Availability != 99.0 {
		t.Fatalf("expected availability 99.0, got %v", result.Availability)
	}
	// actual exceeds planned: performance is capped at 100
	if result.Performance != 100.0 {
		t.Fatalf("expected performance capped at 100.0, got %v", result.Performance)
	}
	// quality = 1100/1105 = 99.547... → 99.5
	if result.Quality != 99.5 {
		t.Fatalf("expected quality 99.5, got %v", result.Quality)
	}
	// oee = 99.0 * 100.0 * 99.5 / 10000 = 98.505 → 98.5
	if result.OEE != 98.5 {
		t.Fatalf("expected OEE 98.5, got %v", result.OEE)
	}
	if result.WindowSize != 1 {
		t.Fatalf("expected window size 1, got %d", result.WindowSize)
	}
}

// TestComputeOEEAggregatesWindow tests that the window is summed, not averaged per log
func TestComputeOEEAggregatesWindow(t *testing.T) {
	logs := []entity.EquipmentLog{
		{PlannedTimeMin: 480, BreakdownMin: 30, PlannedQty: 500, ActualQty: 450, GoodQty: 440},
		{PlannedTimeMin: 480, BreakdownMin: 0, SetupMin: 10, PlannedQty: 500, ActualQty: 490, GoodQty: 485},
	}

	result := ComputeOEE(logs)

	// availability = (960-40)/960 = 95.833... → 95.8
	if result.Availability != 95.8 {
		t.Fatalf("expected availability 95.8, got %v", result.Availability)
	}
	// performance = 940/1000 = 94.0
	if result.Performance != 94.0 {
		t.Fatalf("expected performance 94.0, got %v", result.Performance)
	}
	// quality = 925/940 = 98.404... → 98.4
	if result.Quality != 98.4 {
		t.Fatalf("expected quality 98.4, got %v", result.Quality)
	}
	if result.WindowSize != 2 {
		t.Fatalf("expected window size 2, got %d", result.WindowSize)
	}

	for name, v := range map[string]float64{
		"availability": result.Availability,
		"performance":  result.Performance,
		"quality":      result.Quality,
		"oee":          result.OEE,
	} {
		if v < 0 || v > 100 {
			t.Fatalf("expected %s within [0,100], got %v", name, v)
		}
	}
}

// TestComputeOEEZeroDenominators tests that zero planned time/qty yields 0 components
func TestComputeOEEZeroDenominators(t *testing.T) {
	logs := []entity.EquipmentLog{
		{PlannedTimeMin: 0, PlannedQty: 0, ActualQty: 0, GoodQty: 0},
	}

	result := ComputeOEE(logs)

	if result.Availability != 0 || result.Performance != 0 || result.Quality != 0 || result.OEE != 0 {
		t.Fatalf("expected all-zero OEE for zero denominators, got %+v", result)
	}
}

// TestRound1HalfUp tests that .05 boundaries round up
func TestRound1HalfUp(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{98.45, 98.5},
		{98.44, 98.4},
		{99.95, 100.0},
		{0, 0},
	}
	for _, c := range cases {
		got := round1(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("round1(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
