package service

import (
	"math"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
)

// OEEResult 설비종합효율 계산 결과. 네 값 모두 퍼센트 스케일 소수 1자리.
type OEEResult struct {
	Availability float64 `json:"availability"`
	Performance  float64 `json:"performance"`
	Quality      float64 `json:"quality"`
	OEE          float64 `json:"oee"`
	WindowSize   int     `json:"window_size"` // 계산에 실제 사용된 실적 수
}

// ComputeOEE 가동 실적 윈도우에 대한 OEE 계산.
// 저장소와 무관한 순수 함수라서 DB 없이 단위 테스트한다.
// 분모가 0이면 해당 구성요소는 에러가 아니라 0 — 실적이 없는 설비의
// OEE 는 미정의가 아니라 0 이다.
func ComputeOEE(logs []entity.EquipmentLog) OEEResult {
	var planned, available, plannedQty, actualQty, goodQty float64
	for _, l := range logs {
		planned += l.PlannedTimeMin
		available += l.PlannedTimeMin - l.BreakdownMin - l.SetupMin
		plannedQty += l.PlannedQty
		actualQty += l.ActualQty
		goodQty += l.GoodQty
	}

	var availability, performance, quality float64
	if planned > 0 {
		availability = available / planned * 100
	}
	if plannedQty > 0 {
		performance = math.Min(actualQty/plannedQty, 1) * 100
	}
	if actualQty > 0 {
		quality = goodQty / actualQty * 100
	}

	availability = round1(availability)
	performance = round1(performance)
	quality = round1(quality)

	return OEEResult{
		Availability: availability,
		Performance:  performance,
		Quality:      quality,
		OEE:          round1(availability * performance * quality / 10000),
		WindowSize:   len(logs),
	}
}

// round1 소수 1자리 반올림 (round-half-up)
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
