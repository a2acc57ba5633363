package entity

import (
	"time"
)

// ProductionLog 생산실적 (로트 단위 산출 배치).
// 생성 후 불변이며 수정 경로가 없다. 수량은 같은 트랜잭션 안에서
// 작업지시의 누적 수량으로 반영된다.
type ProductionLog struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	WorkOrderID string    `json:"work_order_id" gorm:"size:36;not null;index"`
	ProcessID   string    `json:"process_id" gorm:"size:36;not null"`
	ProcessSeq  int       `json:"process_seq" gorm:"not null;default:0"` // 공정 순번
	EquipmentID string    `json:"equipment_id" gorm:"size:36;not null;index"`
	OperatorID  string    `json:"operator_id" gorm:"size:64;not null"`
	LotNo       string    `json:"lot_no" gorm:"size:50;not null;uniqueIndex"`
	PlannedQty  float64   `json:"planned_qty" gorm:"type:decimal(12,4);default:0"`
	GoodQty     float64   `json:"good_qty" gorm:"type:decimal(12,4);not null"`
	DefectQty   float64   `json:"defect_qty" gorm:"type:decimal(12,4);not null"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ProductionLog) TableName() string {
	return "mes_production_logs"
}
