package entity

import (
	"time"
)

// ShipmentStatus 출하 상태
const (
	ShipmentStatusReady   = "ready"
	ShipmentStatusShipped = "shipped"
)

// Shipment 출하 기록. 하나의 로트를 여러 출하가 분할 소비할 수 있으며
// 로트별 출하 수량 합계는 로트 생산 수량을 넘을 수 없다.
type Shipment struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	ShipCode    string    `json:"ship_code" gorm:"size:50;not null;uniqueIndex"`
	WorkOrderID string    `json:"work_order_id" gorm:"size:36;not null;index"`
	ProductID   string    `json:"product_id" gorm:"size:36;not null"`
	LotNo       string    `json:"lot_no" gorm:"size:50;not null;index"`
	Qty         float64   `json:"qty" gorm:"type:decimal(12,4);not null"`
	Status      string    `json:"status" gorm:"size:20;not null;default:shipped"`
	CreatedBy   string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Shipment) TableName() string {
	return "mes_shipments"
}
