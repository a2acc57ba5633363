package entity

import (
	"time"
)

// SpcMeasurement 공정 특성치 측정값.
// (work_order_id, characteristic) 단위로 군집되며 추가 전용.
type SpcMeasurement struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	WorkOrderID    string    `json:"work_order_id" gorm:"size:36;not null;index:idx_spc_wo_char"`
	ProcessID      string    `json:"process_id" gorm:"size:36"`
	Characteristic string    `json:"characteristic" gorm:"size:64;not null;index:idx_spc_wo_char"` // 예: thickness, width
	SubgroupNo     int       `json:"subgroup_no" gorm:"not null"`
	Value          float64   `json:"value" gorm:"type:decimal(14,6);not null"`
	USL            float64   `json:"usl" gorm:"type:decimal(14,6)"`
	LSL            float64   `json:"lsl" gorm:"type:decimal(14,6)"`
	Nominal        float64   `json:"nominal" gorm:"type:decimal(14,6)"`
	MeasuredAt     time.Time `json:"measured_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func (SpcMeasurement) TableName() string {
	return "mes_spc_measurements"
}
