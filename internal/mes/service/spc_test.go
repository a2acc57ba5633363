package service

import (
	"math"
	"testing"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
)

func measurement(subgroup int, value float64) entity.SpcMeasurement {
	return entity.SpcMeasurement{
		SubgroupNo: subgroup,
		Value:      value,
		USL:        2.10,
		LSL:        1.90,
	}
}

// TestControlChartXbarR tests the Xbar-R path with subgroup size 5
func TestControlChartXbarR(t *testing.T) {
	var measurements []entity.SpcMeasurement
	// 4 subgroups of 5 around 2.0
	for g := 1; g <= 4; g++ {
		base := 2.0 + float64(g%2)*0.02
		for i := 0; i < 5; i++ {
			measurements = append(measurements, measurement(g, base+float64(i)*0.01))
		}
	}

	chart := BuildControlChart("thickness", measurements)

	if chart.SubgroupSize != 5 {
		t.Fatalf("expected subgroup size 5, got %d", chart.SubgroupSize)
	}
	if len(chart.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(chart.Points))
	}

	// UCL = xbar + A2(5)*Rbar, symmetric around the grand mean
	wantUCL := chart.GrandMean + 0.577*chart.MeanRange
	if math.Abs(chart.UCL-wantUCL) > 1e-9 {
		t.Fatalf("expected UCL %v, got %v", wantUCL, chart.UCL)
	}
	upper := chart.UCL - chart.GrandMean
	lower := chart.GrandMean - chart.LCL
	if math.Abs(upper-lower) > 1e-9 {
		t.Fatalf("expected limits symmetric around grand mean: +%v vs -%v", upper, lower)
	}

	// spec limits pass through untouched, independent of control limits
	if chart.USL != 2.10 || chart.LSL != 1.90 {
		t.Fatalf("expected USL/LSL 2.10/1.90, got %v/%v", chart.USL, chart.LSL)
	}
}

// TestControlChartIndividuals tests the I-MR degeneration at subgroup size 1
func TestControlChartIndividuals(t *testing.T) {
	measurements := []entity.SpcMeasurement{
		measurement(1, 10.0),
		measurement(2, 12.0),
		measurement(3, 11.0),
	}

	chart := BuildControlChart("width", measurements)

	if chart.SubgroupSize != 1 {
		t.Fatalf("expected subgroup size 1, got %d", chart.SubgroupSize)
	}
	if math.Abs(chart.GrandMean-11.0) > 1e-9 {
		t.Fatalf("expected grand mean 11.0, got %v", chart.GrandMean)
	}
	// moving ranges |12-10|=2, |11-12|=1 → mean 1.5
	if math.Abs(chart.MeanRange-1.5) > 1e-9 {
		t.Fatalf("expected mean moving range 1.5, got %v", chart.MeanRange)
	}
	wantUCL := 11.0 + 2.660*1.5
	if math.Abs(chart.UCL-wantUCL) > 1e-9 {
		t.Fatalf("expected UCL %v, got %v", wantUCL, chart.UCL)
	}
	wantLCL := 11.0 - 2.660*1.5
	if math.Abs(chart.LCL-wantLCL) > 1e-9 {
		t.Fatalf("expected LCL %v, got %v", wantLCL, chart.LCL)
	}
}

// TestControlChartEmpty tests that no measurements yields an empty chart, not nil
func TestControlChartEmpty(t *testing.T) {
	chart := BuildControlChart("thickness", nil)

	if chart == nil {
		t.Fatal("expected non-nil chart")
	}
	if len(chart.Points) != 0 {
		t.Fatalf("expected no points, got %d", len(chart.Points))
	}
	if chart.UCL != 0 || chart.LCL != 0 {
		t.Fatalf("expected zero limits, got %v/%v", chart.UCL, chart.LCL)
	}
}

// TestControlChartSubgroupSizeOutOfTable tests sizes beyond the A2 table (2~10)
func TestControlChartSubgroupSizeOutOfTable(t *testing.T) {
	var measurements []entity.SpcMeasurement
	for g := 1; g <= 3; g++ {
		for i := 0; i < 12; i++ {
			measurements = append(measurements, measurement(g, 5.0+float64(i)*0.1))
		}
	}

	chart := BuildControlChart("thickness", measurements)

	if len(chart.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(chart.Points))
	}
	// points are still usable but no control limits are drawn
	if chart.UCL != 0 || chart.LCL != 0 {
		t.Fatalf("expected no control limits for subgroup size 12, got %v/%v", chart.UCL, chart.LCL)
	}
}

// TestControlChartDeterministic tests that repeated builds over the same input agree
func TestControlChartDeterministic(t *testing.T) {
	measurements := []entity.SpcMeasurement{
		measurement(2, 1.98), measurement(2, 2.02),
		measurement(1, 2.00), measurement(1, 2.04),
	}

	a := BuildControlChart("thickness", measurements)
	b := BuildControlChart("thickness", measurements)

	if a.UCL != b.UCL || a.LCL != b.LCL || a.GrandMean != b.GrandMean {
		t.Fatalf("expected identical charts, got %+v vs %+v", a, b)
	}
	// subgroups come back ordered by subgroup number regardless of input order
	if a.Points[0].SubgroupNo != 1 || a.Points[1].SubgroupNo != 2 {
		t.Fatalf("expected points ordered by subgroup, got %+v", a.Points)
	}
}
