package entity

import (
	"time"
)

// NCRStatus 부적합 보고서 상태
const (
	NCRStatusOpen        = "open"
	NCRStatusUnderReview = "under_review"
	NCRStatusApproved    = "approved"
	NCRStatusClosed      = "closed"
)

// ValidNCRTransitions 합법적인 NCR 상태 전이. closed 는 종결 상태.
var ValidNCRTransitions = map[string][]string{
	NCRStatusOpen:        {NCRStatusUnderReview},
	NCRStatusUnderReview: {NCRStatusApproved, NCRStatusOpen},
	NCRStatusApproved:    {NCRStatusClosed},
}

// Nonconformance 부적합 보고서(NCR).
// fail 결과의 검사 기록에 대해서만 생성할 수 있고,
// closed 도달시 승인자와 승인시각이 한 번만 기록된다.
type Nonconformance struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	NCRCode      string     `json:"ncr_code" gorm:"size:50;not null;uniqueIndex"`
	InspectionID string     `json:"inspection_id" gorm:"size:36;not null;index"`
	Disposition  string     `json:"disposition" gorm:"type:text"` // 처리 방침: rework/scrap/use-as-is 등
	Status       string     `json:"status" gorm:"size:20;not null;default:open;index"`
	CreatedBy    string     `json:"created_by" gorm:"size:64;not null"`
	ApprovedBy   string     `json:"approved_by" gorm:"size:64"`
	ApprovedAt   *time.Time `json:"approved_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Nonconformance) TableName() string {
	return "mes_nonconformances"
}
