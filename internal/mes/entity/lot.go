package entity

import (
	"time"
)

// LotStatus 로트 상태
const (
	LotStatusWIP      = "wip"
	LotStatusShipped  = "shipped"
	LotStatusScrapped = "scrapped"
)

// Lot 로트 계보 노드. 생산실적과 동시에 생성되며
// 이력추적(trace)의 순회 단위가 된다.
type Lot struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	LotNo         string    `json:"lot_no" gorm:"size:50;not null;uniqueIndex"`
	MaterialLotNo string    `json:"material_lot_no" gorm:"size:50;index"` // 상위 원자재 로트 (0..1)
	WorkOrderID   string    `json:"work_order_id" gorm:"size:36;not null;index"`
	ProductID     string    `json:"product_id" gorm:"size:36;not null"`
	Qty           float64   `json:"qty" gorm:"type:decimal(12,4);not null"`
	Status        string    `json:"status" gorm:"size:20;not null;default:wip"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Lot) TableName() string {
	return "mes_lots"
}

// MaterialLotAssignment 작업지시별 투입 원자재 로트 배정.
// active 인 배정이 생산실적 등록시 신규 로트의 상위 로트로 복사된다.
type MaterialLotAssignment struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	WorkOrderID   string    `json:"work_order_id" gorm:"size:36;not null;index"`
	MaterialLotNo string    `json:"material_lot_no" gorm:"size:50;not null"`
	Active        bool      `json:"active" gorm:"default:true"`
	AssignedBy    string    `json:"assigned_by" gorm:"size:64"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MaterialLotAssignment) TableName() string {
	return "mes_material_lot_assignments"
}
