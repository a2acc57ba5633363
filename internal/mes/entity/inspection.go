package entity

import (
	"time"
)

// InspectionType 검사 구분
const (
	InspectionTypeIncoming  = "incoming"
	InspectionTypeInProcess = "in_process"
	InspectionTypeOutgoing  = "outgoing"
)

// InspectionResult 검사 결과
const (
	InspectionResultPass = "pass"
	InspectionResultFail = "fail"
)

// Inspection 품질 검사 기록
type Inspection struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	WorkOrderID string    `json:"work_order_id" gorm:"size:36;not null;index"`
	LotNo       string    `json:"lot_no" gorm:"size:50;index"`
	Type        string    `json:"type" gorm:"size:20;not null"` // incoming/in_process/outgoing
	SampleQty   int       `json:"sample_qty" gorm:"not null"`
	PassQty     int       `json:"pass_qty" gorm:"default:0"`
	FailQty     int       `json:"fail_qty" gorm:"default:0"`
	Result      string    `json:"result" gorm:"size:10;not null;index"`
	InspectorID string    `json:"inspector_id" gorm:"size:64;not null"`
	InspectedAt time.Time `json:"inspected_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Inspection) TableName() string {
	return "mes_inspections"
}
