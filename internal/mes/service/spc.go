package service

import (
	"sort"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
)

// a2Table Xbar-R 관리도 A2 상수 (군 크기 2~10)
var a2Table = map[int]float64{
	2:  1.880,
	3:  1.023,
	4:  0.729,
	5:  0.577,
	6:  0.483,
	7:  0.419,
	8:  0.373,
	9:  0.337,
	10: 0.308,
}

// e2Individuals 군 크기 1 (I-MR 관리도) 계수
const e2Individuals = 2.660

// SpcPoint 관리도 상의 한 점 (군 단위)
type SpcPoint struct {
	SubgroupNo int     `json:"subgroup_no"`
	Mean       float64 `json:"mean"`
	Range      float64 `json:"range"`
	Size       int     `json:"size"`
}

// ControlChart SPC 관리도 계산 결과.
// UCL/LCL 은 통계적 관리한계, USL/LSL 은 측정값에 실려온 규격한계로
// 서로 독립적으로 산출/반환되며 혼동하지 않는다.
type ControlChart struct {
	Characteristic string     `json:"characteristic"`
	Points         []SpcPoint `json:"points"`
	GrandMean      float64    `json:"xbar"`
	MeanRange      float64    `json:"range"`
	UCL            float64    `json:"ucl"`
	LCL            float64    `json:"lcl"`
	USL            float64    `json:"usl"`
	LSL            float64    `json:"lsl"`
	SubgroupSize   int        `json:"subgroup_size"`
}

// BuildControlChart 측정값 집합으로 Xbar-R 관리도 계산.
// 군 크기 1이면 개별치-이동범위(I-MR) 관리도로 퇴화한다.
// 순수 함수이며 측정값이 추가 적재되기 전까지 같은 입력에 같은 결과를 낸다.
func BuildControlChart(characteristic string, measurements []entity.SpcMeasurement) *ControlChart {
	chart := &ControlChart{Characteristic: characteristic, Points: []SpcPoint{}}
	if len(measurements) == 0 {
		return chart
	}

	// 규격한계는 측정값마다 실려오지만 특성 단위로 동일하다고 본다
	chart.USL = measurements[0].USL
	chart.LSL = measurements[0].LSL

	groups := map[int][]float64{}
	for _, m := range measurements {
		groups[m.SubgroupNo] = append(groups[m.SubgroupNo], m.Value)
	}

	nos := make([]int, 0, len(groups))
	for no := range groups {
		nos = append(nos, no)
	}
	sort.Ints(nos)

	size := len(groups[nos[0]])
	var sumMeans, sumRanges float64
	for _, no := range nos {
		values := groups[no]
		var sum, min, max float64
		min, max = values[0], values[0]
		for _, v := range values {
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		p := SpcPoint{
			SubgroupNo: no,
			Mean:       sum / float64(len(values)),
			Range:      max - min,
			Size:       len(values),
		}
		chart.Points = append(chart.Points, p)
		sumMeans += p.Mean
	}
	chart.GrandMean = sumMeans / float64(len(chart.Points))
	chart.SubgroupSize = size

	if size == 1 {
		// I-MR: 이동범위 평균에 E2 계수 적용
		var sumMR float64
		for i := 1; i < len(chart.Points); i++ {
			mr := chart.Points[i].Mean - chart.Points[i-1].Mean
			if mr < 0 {
				mr = -mr
			}
			sumMR += mr
		}
		if len(chart.Points) > 1 {
			chart.MeanRange = sumMR / float64(len(chart.Points)-1)
		}
		chart.UCL = chart.GrandMean + e2Individuals*chart.MeanRange
		chart.LCL = chart.GrandMean - e2Individuals*chart.MeanRange
		return chart
	}

	for _, p := range chart.Points {
		sumRanges += p.Range
	}
	chart.MeanRange = sumRanges / float64(len(chart.Points))

	a2, ok := a2Table[size]
	if !ok {
		// 표 범위(2~10) 밖의 군 크기는 한계선 없이 점만 반환
		return chart
	}
	chart.UCL = chart.GrandMean + a2*chart.MeanRange
	chart.LCL = chart.GrandMean - a2*chart.MeanRange
	return chart
}
