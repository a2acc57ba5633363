package entity

import (
	"time"
)

// WorkOrderStatus 작업지시 상태
const (
	WOStatusDraft      = "draft"
	WOStatusIssued     = "issued"
	WOStatusInProgress = "in_progress"
	WOStatusCompleted  = "completed"
	WOStatusCancelled  = "cancelled"
)

// ValidWorkOrderTransitions 합법적인 작업지시 상태 전이.
// completed 는 종결 상태로 출구 전이가 없다.
var ValidWorkOrderTransitions = map[string][]string{
	WOStatusDraft:      {WOStatusIssued},
	WOStatusIssued:     {WOStatusInProgress, WOStatusCancelled},
	WOStatusInProgress: {WOStatusCompleted, WOStatusIssued},
	WOStatusCancelled:  {WOStatusDraft},
}

// WorkOrder 생산 작업지시.
// ProducedQty/DefectQty 는 생산실적 등록시에만 서버측 증분으로 갱신되며
// 직접 대입 경로가 없다.
type WorkOrder struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	WOCode       string     `json:"wo_code" gorm:"size:50;not null;uniqueIndex"`
	ProductID    string     `json:"product_id" gorm:"size:36;not null;index"`
	CustomerID   string     `json:"customer_id" gorm:"size:36;index"`
	PlannedQty   float64    `json:"planned_qty" gorm:"type:decimal(12,4);not null"`
	ProducedQty  float64    `json:"produced_qty" gorm:"type:decimal(12,4);default:0"`
	DefectQty    float64    `json:"defect_qty" gorm:"type:decimal(12,4);default:0"`
	Status       string     `json:"status" gorm:"size:20;not null;default:draft;index"`
	Priority     int        `json:"priority" gorm:"default:0"` // 0=보통, 1=긴급, 2=특급
	PlannedStart *time.Time `json:"planned_start"`
	PlannedEnd   *time.Time `json:"planned_end"`
	ActualStart  *time.Time `json:"actual_start"`
	ActualEnd    *time.Time `json:"actual_end"`
	DueDate      *time.Time `json:"due_date"`
	CreatedBy    string     `json:"created_by" gorm:"size:64;not null"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (WorkOrder) TableName() string {
	return "mes_work_orders"
}

// CanTransition 전이 테이블 조회
func CanTransition(table map[string][]string, from, to string) bool {
	for _, s := range table[from] {
		if s == to {
			return true
		}
	}
	return false
}
