package entity

import (
	"time"
)

// EquipmentStatus 설비 상태
const (
	EquipStatusRunning     = "running"
	EquipStatusStopped     = "stopped"
	EquipStatusMaintenance = "maintenance"
	EquipStatusBreakdown   = "breakdown"
)

// ValidEquipmentTransitions 합법적인 설비 상태 전이
var ValidEquipmentTransitions = map[string][]string{
	EquipStatusRunning:     {EquipStatusStopped, EquipStatusMaintenance},
	EquipStatusStopped:     {EquipStatusRunning, EquipStatusMaintenance},
	EquipStatusMaintenance: {EquipStatusRunning, EquipStatusBreakdown},
	EquipStatusBreakdown:   {EquipStatusMaintenance},
}

// Equipment 설비 마스터.
// 작업지시와 독립적으로 관리되며 여러 작업지시가 동시에 같은 설비를 참조할 수 있다.
type Equipment struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	EquipCode   string     `json:"equip_code" gorm:"size:50;not null;uniqueIndex"`
	Name        string     `json:"name" gorm:"size:128;not null"`
	Status      string     `json:"status" gorm:"size:20;not null;default:stopped;index"`
	PMCycleDays int        `json:"pm_cycle_days" gorm:"default:0"` // 예방보전 주기(일)
	LastPMDate  *time.Time `json:"last_pm_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Equipment) TableName() string {
	return "mes_equipment"
}

// EquipmentLog 설비 가동 실적. 설비/일자/교대당 1행, 추가 전용.
type EquipmentLog struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	EquipmentID    string    `json:"equipment_id" gorm:"size:36;not null;index;uniqueIndex:uq_equip_date_shift"`
	LogDate        string    `json:"log_date" gorm:"size:10;not null;uniqueIndex:uq_equip_date_shift"` // YYYY-MM-DD
	Shift          string    `json:"shift" gorm:"size:10;not null;uniqueIndex:uq_equip_date_shift"`    // day/night
	PlannedTimeMin float64   `json:"planned_time_min" gorm:"type:decimal(10,2);not null"`
	ActualTimeMin  float64   `json:"actual_time_min" gorm:"type:decimal(10,2);default:0"`
	BreakdownMin   float64   `json:"breakdown_min" gorm:"type:decimal(10,2);default:0"`
	SetupMin       float64   `json:"setup_min" gorm:"type:decimal(10,2);default:0"`
	PlannedQty     float64   `json:"planned_qty" gorm:"type:decimal(12,4);default:0"`
	ActualQty      float64   `json:"actual_qty" gorm:"type:decimal(12,4);default:0"`
	GoodQty        float64   `json:"good_qty" gorm:"type:decimal(12,4);default:0"`
	CreatedAt      time.Time `json:"created_at"`
}

func (EquipmentLog) TableName() string {
	return "mes_equipment_logs"
}
