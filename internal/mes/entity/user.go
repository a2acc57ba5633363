package entity

import (
	"time"
)

// User 시스템 사용자. 인증/세션 발급은 외부 시스템 담당이고
// 여기서는 표시용 최소 정보만 보관한다.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Username  string    `json:"username" gorm:"size:64;not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:64;not null"`
	Role      string    `json:"role" gorm:"size:20;not null;default:operator"` // operator/qc/supervisor/manager/admin
	Status    string    `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "mes_users"
}
